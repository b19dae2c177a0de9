package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mendel/api/models/dtos"
	"mendel/api/models/presets"
	"mendel/api/services"
	"mendel/api/services/genetics"
	"mendel/api/tests/common"
	"mendel/api/utils"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	. "github.com/ahmetb/go-linq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testQuiz = `Here is your quiz:
[
	{"question": "Tt x Tt gives what fraction of tall offspring?", "options": ["1/4", "1/2", "3/4", "1"], "correctAnswer": 2, "explanation": "TT, Tt and Tt are tall."},
	{"question": "What is the genotype of a true-breeding recessive plant?", "options": ["TT", "Tt", "tt", "T"], "correctAnswer": 2, "explanation": "Both alleles are recessive."}
]`

func startTestServer(t *testing.T, generator services.TextGenerator) *httptest.Server {
	cfg := common.InitConfig()
	server := httptest.NewServer(newServer(cfg, presets.Defaults(), generator))
	t.Cleanup(server.Close)
	return server
}

func doJson(t *testing.T, method string, target string, body string, token string) (int, []byte) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request, err := http.NewRequest(method, target, reader)
	require.Nil(t, err)
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := http.DefaultClient.Do(request)
	require.Nil(t, err)
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	require.Nil(t, err)
	return response.StatusCode, raw
}

func geneJson(name string, dom string, rec string, p1 string, p2 string) string {
	return fmt.Sprintf(`{"name": %q, "domSymbol": %q, "recSymbol": %q, "domPheno": "Dominant", "recPheno": "Recessive", "p1Genotype": %q, "p2Genotype": %q}`,
		name, dom, rec, p1, p2)
}

func TestRootAndServiceInfo(t *testing.T) {
	server := startTestServer(t, &common.ScriptedGenerator{})

	welcome, status, err := utils.GetRequestReturnStuff[string](server.URL + "/")
	require.Nil(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, welcome, "Mendel")

	info, _, err := utils.GetRequestReturnStuff[map[string]interface{}](server.URL + "/service-info")
	require.Nil(t, err)
	assert.Equal(t, "Mendel Cross Service", info["name"])
}

func TestCrossesRoute(t *testing.T) {
	server := startTestServer(t, &common.ScriptedGenerator{})

	body := fmt.Sprintf(`{"genes": [%s]}`, geneJson("Height", "T", "t", "Tt", "Tt"))

	t.Run("should calculate a monohybrid cross", func(t *testing.T) {
		res, status, err := utils.PostRequestReturnStuff[dtos.CrossResponseDto](fmt.Sprintf(common.CrossesPath, server.URL, ""), body)
		require.Nil(t, err)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, [][]string{{"TT", "Tt"}, {"Tt", "tt"}}, res.Grid)
		assert.Equal(t, "3:1", res.PhenotypeRatio)
		assert.Equal(t, 4, res.TotalOffspring)
	})

	t.Run("should trim the genotype grid in phenotype view", func(t *testing.T) {
		res, status, err := utils.PostRequestReturnStuff[dtos.CrossResponseDto](fmt.Sprintf(common.CrossesPath, server.URL, "?view=phenotype"), body)
		require.Nil(t, err)
		assert.Equal(t, http.StatusOK, status)
		assert.Nil(t, res.Grid)
		assert.Equal(t, [][]string{{"Dominant", "Dominant"}, {"Dominant", "Recessive"}}, res.PhenotypeGrid)
	})

	t.Run("should collapse homozygous parents with distinct gametes", func(t *testing.T) {
		homozygous := fmt.Sprintf(`{"genes": [%s]}`, geneJson("Height", "T", "t", "TT", "tt"))
		res, _, err := utils.PostRequestReturnStuff[dtos.CrossResponseDto](fmt.Sprintf(common.CrossesPath, server.URL, "?distinct=true"), homozygous)
		require.Nil(t, err)
		assert.Equal(t, [][]string{{"Tt"}}, res.Grid)
	})

	t.Run("should reject bad input", func(t *testing.T) {
		cases := []struct {
			query string
			body  string
		}{
			{"?view=sideways", body},
			{"?distinct=perhaps", body},
			{"", fmt.Sprintf(`{"genes": [%s]}`, geneJson("Height", "T", "t", "Tx", "Tt"))},
			{"", fmt.Sprintf(`{"genes": [%s]}`, geneJson("Height", "T", "T", "TT", "TT"))},
			{"", `{"genes": [` + strings.Repeat(geneJson("G", "A", "a", "Aa", "Aa")+",", 4) + geneJson("G", "A", "a", "Aa", "Aa") + `]}`},
			{"", `{"genes": `},
		}

		for _, c := range cases {
			res, status, err := utils.PostRequestReturnStuff[dtos.GeneralErrorResponseDto](fmt.Sprintf(common.CrossesPath, server.URL, c.query), c.body)
			require.Nil(t, err)
			assert.Equal(t, http.StatusBadRequest, status, c.query+" "+c.body)
			assert.Equal(t, http.StatusBadRequest, res.Code)
			assert.NotEmpty(t, res.Errors)
		}
	})
}

func TestCrossesBatchRoute(t *testing.T) {
	server := startTestServer(t, &common.ScriptedGenerator{})

	body := fmt.Sprintf(`{"crosses": [{"genes": [%s]}, {"genes": [%s]}, {"genes": [%s, %s]}]}`,
		geneJson("A", "A", "a", "Aa", "Aa"),
		geneJson("B", "B", "b", "Bb", "bb"),
		geneJson("C", "C", "c", "Cc", "Cc"), geneJson("D", "D", "d", "Dd", "Dd"))

	res, status, err := utils.PostRequestReturnStuff[dtos.BatchCrossResponseDto](server.URL+"/crosses/batch?view=genotype", body)
	require.Nil(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 3, res.Count)

	var ratios []string
	From(res.Results).SelectT(func(r dtos.CrossResponseDto) string { return r.PhenotypeRatio }).ToSlice(&ratios)
	assert.Equal(t, []string{"3:1", "1:1", "9:3:3:1"}, ratios)

	From(res.Results).ForEachT(func(r dtos.CrossResponseDto) {
		assert.Nil(t, r.PhenotypeGrid)
	})

	status, _ = doJson(t, http.MethodPost, server.URL+"/crosses/batch", `{"crosses": []}`, "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestPresetsRoutes(t *testing.T) {
	server := startTestServer(t, &common.ScriptedGenerator{})

	list, status, err := utils.GetRequestReturnStuff[dtos.PresetsResponseDto](fmt.Sprintf(common.PresetsPath, server.URL))
	require.Nil(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, len(presets.Defaults()), list.Count)

	dihybrid, status, err := utils.GetRequestReturnStuff[dtos.CrossResponseDto](fmt.Sprintf(common.PresetCalculatePath, server.URL, "dihybrid", ""))
	require.Nil(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "9:3:3:1", dihybrid.PhenotypeRatio)
	assert.Equal(t, 16, dihybrid.TotalOffspring)

	trueBreeding, _, err := utils.GetRequestReturnStuff[dtos.CrossResponseDto](fmt.Sprintf(common.PresetCalculatePath, server.URL, "true-breeding", "?distinct=true"))
	require.Nil(t, err)
	assert.Equal(t, 1, trueBreeding.TotalOffspring)

	missing, status, err := utils.GetRequestReturnStuff[dtos.GeneralErrorResponseDto](fmt.Sprintf(common.PresetCalculatePath, server.URL, "pentahybrid", ""))
	require.Nil(t, err)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestGeneTemplateRoute(t *testing.T) {
	server := startTestServer(t, &common.ScriptedGenerator{})

	gene, status, err := utils.GetRequestReturnStuff[genetics.GeneDefinition](fmt.Sprintf(common.GeneTemplatePath, server.URL, "?index=3"))
	require.Nil(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, genetics.NewDefaultGene(3), gene)

	_, status, err = utils.GetRequestReturnStuff[dtos.GeneralErrorResponseDto](fmt.Sprintf(common.GeneTemplatePath, server.URL, "?index=zero"))
	require.Nil(t, err)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestLearnRoutes(t *testing.T) {
	generator := &common.ScriptedGenerator{Response: "## Segregation\nAllele pairs *separate*."}
	server := startTestServer(t, generator)
	explainUrl := fmt.Sprintf(common.LearnExplainPath, server.URL)

	t.Run("should require a token", func(t *testing.T) {
		status, _ := doJson(t, http.MethodPost, explainUrl, `{"query": "Law of Segregation"}`, "")
		assert.Equal(t, http.StatusForbidden, status)

		status, _ = doJson(t, http.MethodPost, explainUrl, `{"query": "Law of Segregation"}`, "wrong")
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Empty(t, generator.Prompts())
	})

	t.Run("should explain", func(t *testing.T) {
		status, raw := doJson(t, http.MethodPost, explainUrl, `{"query": "Law of Segregation"}`, "test-token")
		require.Equal(t, http.StatusOK, status, string(raw))

		var res dtos.ExplainResponseDto
		require.Nil(t, json.Unmarshal(raw, &res))
		assert.Equal(t, "Law of Segregation", res.Query)
		assert.Contains(t, res.Html, "<em>separate</em>")
	})

	t.Run("should reject an empty query", func(t *testing.T) {
		status, _ := doJson(t, http.MethodPost, explainUrl, `{"query": "  "}`, "test-token")
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("should list suggestions", func(t *testing.T) {
		suggestions, _, err := utils.GetRequestReturnStuff[[]string](fmt.Sprintf(common.LearnSuggestionsPath, server.URL))
		require.Nil(t, err)
		assert.Equal(t, services.Suggestions, suggestions)
	})
}

func TestTutorFailuresMapToStatusCodes(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		response string
		expected int
	}{
		{"missing credential", services.ErrMissingCredential, "", http.StatusServiceUnavailable},
		{"generation failed", fmt.Errorf("%w: status 500", services.ErrGenerationFailed), "", http.StatusBadGateway},
		{"malformed quiz", nil, "I would rather not.", http.StatusBadGateway},
		{"deadline", context.DeadlineExceeded, "", http.StatusGatewayTimeout},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := startTestServer(t, &common.ScriptedGenerator{Response: tc.response, Error: tc.err})

			status, raw := doJson(t, http.MethodPost, fmt.Sprintf(common.QuizGeneratePath, server.URL, ""), "", "test-token")
			assert.Equal(t, tc.expected, status)

			var res dtos.GeneralErrorResponseDto
			require.Nil(t, json.Unmarshal(raw, &res))
			assert.Equal(t, tc.expected, res.Code)
		})
	}
}

func TestQuizRoutes(t *testing.T) {
	generator := &common.ScriptedGenerator{Response: testQuiz}
	server := startTestServer(t, generator)

	topics, _, err := utils.GetRequestReturnStuff[dtos.TopicsResponseDto](fmt.Sprintf(common.QuizTopicsPath, server.URL))
	require.Nil(t, err)
	assert.Len(t, topics.Topics, 5)
	assert.Equal(t, "General Genetics", string(topics.Default))

	status, _ := doJson(t, http.MethodPost, fmt.Sprintf(common.QuizGeneratePath, server.URL, "?topic=Astrology"), "", "test-token")
	assert.Equal(t, http.StatusBadRequest, status)

	query := "?topic=" + url.QueryEscape("Punnett Squares")
	status, raw := doJson(t, http.MethodPost, fmt.Sprintf(common.QuizGeneratePath, server.URL, query), "", "test-token")
	require.Equal(t, http.StatusOK, status, string(raw))

	var quiz dtos.QuizDto
	require.Nil(t, json.Unmarshal(raw, &quiz))
	assert.Equal(t, "Punnett Squares", string(quiz.Topic))
	require.Len(t, quiz.Questions, 2)
	assert.Contains(t, generator.Prompts()[0], `"Punnett Squares"`)

	quizJson, err := json.Marshal(quiz)
	require.Nil(t, err)
	scoreUrl := fmt.Sprintf(common.QuizScorePath, server.URL)

	score, status, err := utils.PostRequestReturnStuff[dtos.QuizScoreResponseDto](scoreUrl,
		fmt.Sprintf(`{"quiz": %s, "answers": {"0": 2, "1": 0}}`, quizJson))
	require.Nil(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, quiz.Id, score.QuizId)
	assert.Equal(t, 1, score.Score)
	assert.Equal(t, 2, score.Total)

	_, status, err = utils.PostRequestReturnStuff[dtos.GeneralErrorResponseDto](scoreUrl,
		fmt.Sprintf(`{"quiz": %s, "answers": {"0": 2}}`, quizJson))
	require.Nil(t, err)
	assert.Equal(t, http.StatusBadRequest, status)
}
