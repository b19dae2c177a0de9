package tutor

import (
	"fmt"
	"mendel/api/contexts"
	quizTopic "mendel/api/models/constants/quiz-topic"
	"mendel/api/models/dtos"
	"mendel/api/mvc"
	"mendel/api/services"
	"net/http"
	"time"

	"github.com/labstack/echo"
)

func LearnExplain(c echo.Context) error {
	fmt.Printf("[%s] - LearnExplain hit!\n", time.Now())
	gc := c.(*contexts.MendelContext)

	var request dtos.ExplainRequestDto
	if bound, err := mvc.BindJson(c, &request); !bound {
		return err
	}

	response, err := gc.TutorService.Explain(c.Request().Context(), request.Query)
	if err != nil {
		return mvc.RespondWithError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

func LearnGetSuggestions(c echo.Context) error {
	return c.JSON(http.StatusOK, services.Suggestions)
}

func QuizGetTopics(c echo.Context) error {
	return c.JSON(http.StatusOK, dtos.TopicsResponseDto{
		Default: quizTopic.Default,
		Topics:  quizTopic.All,
	})
}

func QuizGenerate(c echo.Context) error {
	fmt.Printf("[%s] - QuizGenerate hit!\n", time.Now())
	gc := c.(*contexts.MendelContext)

	quiz, err := gc.TutorService.GenerateQuiz(c.Request().Context(), gc.QuizTopic)
	if err != nil {
		return mvc.RespondWithError(c, err)
	}

	return c.JSON(http.StatusOK, quiz)
}

func QuizScore(c echo.Context) error {
	fmt.Printf("[%s] - QuizScore hit!\n", time.Now())
	gc := c.(*contexts.MendelContext)

	var request dtos.QuizScoreRequestDto
	if bound, err := mvc.BindJson(c, &request); !bound {
		return err
	}

	response, err := gc.TutorService.ScoreQuiz(request.Quiz, request.Answers)
	if err != nil {
		return mvc.RespondWithError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}
