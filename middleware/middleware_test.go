package middleware

import (
	"mendel/api/contexts"
	"mendel/api/models/constants"
	quizTopic "mendel/api/models/constants/quiz-topic"
	viewMode "mendel/api/models/constants/view-mode"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
)

func newTestContext(target string) (*contexts.MendelContext, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return &contexts.MendelContext{Context: e.NewContext(req, rec)}, rec
}

func ok(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestValidatePotentialViewModeQueryParameter(t *testing.T) {
	cases := []struct {
		target   string
		code     int
		expected constants.ViewMode
	}{
		{"/crosses", http.StatusOK, viewMode.Both},
		{"/crosses?view=genotype", http.StatusOK, viewMode.Genotype},
		{"/crosses?view=PHENOTYPE", http.StatusOK, viewMode.Phenotype},
		{"/crosses?view=grid", http.StatusBadRequest, viewMode.Both},
	}

	for _, tc := range cases {
		gc, rec := newTestContext(tc.target)
		assert.Nil(t, ValidatePotentialViewModeQueryParameter(ok)(gc))
		assert.Equal(t, tc.code, rec.Code, tc.target)
		assert.Equal(t, tc.expected, gc.ViewMode, tc.target)
	}
}

func TestValidatePotentialDistinctQueryParameter(t *testing.T) {
	gc, rec := newTestContext("/crosses?distinct=true")
	assert.Nil(t, ValidatePotentialDistinctQueryParameter(ok)(gc))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gc.DistinctGametes)

	gc, rec = newTestContext("/crosses")
	assert.Nil(t, ValidatePotentialDistinctQueryParameter(ok)(gc))
	assert.False(t, gc.DistinctGametes)

	gc, rec = newTestContext("/crosses?distinct=maybe")
	assert.Nil(t, ValidatePotentialDistinctQueryParameter(ok)(gc))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidatePotentialQuizTopicQueryParameter(t *testing.T) {
	gc, rec := newTestContext("/quiz/generate")
	assert.Nil(t, ValidatePotentialQuizTopicQueryParameter(ok)(gc))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, quizTopic.Default, gc.QuizTopic)

	gc, _ = newTestContext("/quiz/generate?topic=DNA%20and%20RNA")
	assert.Nil(t, ValidatePotentialQuizTopicQueryParameter(ok)(gc))
	assert.Equal(t, quizTopic.DnaAndRna, gc.QuizTopic)

	gc, rec = newTestContext("/quiz/generate?topic=Astronomy")
	assert.Nil(t, ValidatePotentialQuizTopicQueryParameter(ok)(gc))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
