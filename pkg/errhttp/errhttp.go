// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/grocerylist/pkg/httpx"
	grocerydomain "github.com/ghuser/grocerylist/services/grocery/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors; with
// isProduction set, 5xx messages are replaced by the status text.
func WriteError(w http.ResponseWriter, err error, isProduction bool) {
	status := StatusFor(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, isProduction))
}

// StatusFor returns the HTTP status code for err.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, grocerydomain.ErrItemNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, grocerydomain.ErrInvalidItemID):
		return http.StatusBadRequest // 400
	case errors.Is(err, grocerydomain.ErrInvalidItemName):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
