// Package httperror maps errors to HTTP error responses.
package httperror

import (
	"errors"
	"net/http"

	"github.com/spendwise/backend/internal/models"
)

// Error is the response body for all error responses.
type Error struct {
	Message string `json:"error" example:"there is no category matching your query"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

// Status returns the appropriate HTTP status for an error.
//
// Business rule violations are client errors. Only errors the server cannot
// attribute to the request map to 500.
func Status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}
