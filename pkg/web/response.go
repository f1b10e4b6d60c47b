// Package web defines common components for a web application.
package web

import (
	"errors"
	"net/http"

	"github.com/go-petr/ledger/pkg/errorspkg"
	"github.com/go-playground/validator/v10"
)

// Response holds the common response type for all APIs.
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Error wraps a given err into json friendly struct.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// Status maps an app error to the http status code reported to clients.
func Status(err error) int {
	switch {
	case errors.Is(err, errorspkg.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, errorspkg.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errorspkg.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse returns the status code and the body for err.
//
// Errors of unknown kind are reported as errorspkg.ErrInternal.
func ErrorResponse(err error) (int, Response) {
	code := Status(err)
	if code == http.StatusInternalServerError {
		return code, Error(errorspkg.ErrInternal)
	}

	return code, Error(err)
}

// GetErrorMsg returns a human readable message for a failed binding tag.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " is required"
	case "cpr":
		return " must be 10 digits"
	}

	return " is invalid"
}

// BindingError converts a gin binding error to a Response.
func BindingError(err error) Response {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		return Response{Error: field.Field() + GetErrorMsg(field)}
	}

	return Response{Error: err.Error()}
}
