// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/linenlady/inventory/pkg/httpx"
	invdomain "github.com/linenlady/inventory/services/inventory/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, invdomain.ErrItemNotFound),
		errors.Is(err, invdomain.ErrImageNotFound),
		errors.Is(err, invdomain.ErrSessionNotFound),
		errors.Is(err, invdomain.ErrEmbeddingNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, invdomain.ErrSKUConflict),
		errors.Is(err, invdomain.ErrDuplicateSortOrder),
		errors.Is(err, invdomain.ErrImagePathConflict):
		return http.StatusConflict // 409
	case errors.Is(err, invdomain.ErrSessionNotOpen),
		errors.Is(err, invdomain.ErrSessionNotConsumable),
		errors.Is(err, invdomain.ErrNoPhotosAttached),
		errors.Is(err, invdomain.ErrItemDeleted):
		return http.StatusConflict // 409: entity exists but is in the wrong state
	case errors.Is(err, invdomain.ErrValidation),
		errors.Is(err, invdomain.ErrPathOutsideNamespace):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, invdomain.ErrUnavailable):
		return http.StatusServiceUnavailable // 503: retryable infrastructure failure
	case errors.Is(err, invdomain.ErrSessionCorrupted):
		return http.StatusInternalServerError // 500: internal consistency violation
	default:
		return http.StatusInternalServerError // 500
	}
}
