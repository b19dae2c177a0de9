package mvc

import (
	"context"
	"errors"
	"fmt"
	"mendel/api/contexts"
	"mendel/api/models/dtos"
	e "mendel/api/models/dtos/errors"
	"mendel/api/services"
	"mendel/api/services/genetics"
	"net/http"

	"github.com/labstack/echo"
)

func RetrieveCrossOptions(c echo.Context) services.CrossOptions {
	gc := c.(*contexts.MendelContext)

	return services.CrossOptions{
		ViewMode:        gc.ViewMode,
		DistinctGametes: gc.DistinctGametes,
	}
}

// BindJson decodes the request body into dto, answering 400 itself when the
// body cannot be bound. A false return means a response was already written.
func BindJson(c echo.Context, dto interface{}) (bool, error) {
	if err := c.Bind(dto); err != nil {
		message := err.Error()
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			message = fmt.Sprintf("%v", httpErr.Message)
		}
		return false, c.JSON(http.StatusBadRequest, e.CreateSimpleBadRequest(message))
	}
	return true, nil
}

// RespondWithError maps service and engine errors onto the error envelope.
func RespondWithError(c echo.Context, err error) error {
	var (
		code int
		body dtos.GeneralErrorResponseDto
	)

	switch {
	case errors.Is(err, genetics.ErrInvalidGene),
		errors.Is(err, genetics.ErrGameteLengthMismatch),
		errors.Is(err, services.ErrTooManyGenes),
		errors.Is(err, services.ErrEmptyQuery),
		errors.Is(err, services.ErrIncompleteAnswers),
		errors.Is(err, services.ErrInvalidQuiz):
		code, body = http.StatusBadRequest, e.CreateSimpleBadRequest(err.Error())
	case errors.Is(err, services.ErrMissingCredential):
		code, body = http.StatusServiceUnavailable, e.CreateSimpleServiceUnavailable(err.Error())
	case errors.Is(err, services.ErrGenerationFailed),
		errors.Is(err, services.ErrMalformedQuiz):
		code, body = http.StatusBadGateway, e.CreateSimpleBadGateway(err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		code, body = http.StatusGatewayTimeout, e.CreateSimpleGatewayTimeout(err.Error())
	default:
		fmt.Printf("Unexpected error: %s\n", err)
		code, body = http.StatusInternalServerError, e.CreateSimpleInternalServerError("Something went wrong")
	}

	return c.JSON(code, body)
}
