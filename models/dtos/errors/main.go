package errors

import (
	"mendel/api/models/dtos"
	"net/http"
	"time"
)

/*
	Utility functions to facillitate returning error responses to HTTP clients
*/

// -- Simplest: 1 error with message
func CreateSimpleBadRequest(message string) dtos.GeneralErrorResponseDto {
	return createSimple(http.StatusBadRequest, message)
}
func CreateSimpleUnauthorized(message string) dtos.GeneralErrorResponseDto {
	return createSimple(http.StatusUnauthorized, message)
}
func CreateSimpleForbidden(message string) dtos.GeneralErrorResponseDto {
	return createSimple(http.StatusForbidden, message)
}
func CreateSimpleNotFound(message string) dtos.GeneralErrorResponseDto {
	return createSimple(http.StatusNotFound, message)
}
func CreateSimpleInternalServerError(message string) dtos.GeneralErrorResponseDto {
	return createSimple(http.StatusInternalServerError, message)
}
func CreateSimpleBadGateway(message string) dtos.GeneralErrorResponseDto {
	return createSimple(http.StatusBadGateway, message)
}
func CreateSimpleServiceUnavailable(message string) dtos.GeneralErrorResponseDto {
	return createSimple(http.StatusServiceUnavailable, message)
}
func CreateSimpleGatewayTimeout(message string) dtos.GeneralErrorResponseDto {
	return createSimple(http.StatusGatewayTimeout, message)
}

func createSimple(code int, message string) dtos.GeneralErrorResponseDto {
	return dtos.GeneralErrorResponseDto{
		Code:      code,
		Message:   http.StatusText(code),
		Timestamp: time.Now(),
		Errors: []dtos.GeneralError{
			{
				Message: message,
			},
		},
	}
}

// --
