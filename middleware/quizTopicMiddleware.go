package middleware

import (
	"fmt"
	"mendel/api/contexts"
	quizTopic "mendel/api/models/constants/quiz-topic"
	"mendel/api/models/dtos/errors"
	"net/http"

	"github.com/labstack/echo"
)

func ValidatePotentialQuizTopicQueryParameter(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.MendelContext)

		gc.QuizTopic = quizTopic.Default
		topicQP := c.QueryParam("topic")
		if len(topicQP) > 0 {
			if !quizTopic.IsKnownQuizTopic(topicQP) {
				return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest(fmt.Sprintf("Unknown quiz topic %q", topicQP)))
			}
			gc.QuizTopic = quizTopic.CastToQuizTopic(topicQP)
		}

		return next(gc)
	}
}
