package http

import (
	"errors"
	"net/http"

	"rentbaaz/internal/httpx"
	"rentbaaz/internal/usecase"
)

func badRequest(w http.ResponseWriter, message string) {
	httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", message, nil)
}

func validationFailed(w http.ResponseWriter, details []httpx.ErrorDetail) {
	httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
}

func notFound(w http.ResponseWriter, message string) {
	httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", message, nil)
}

func unauthorized(w http.ResponseWriter, message string) {
	httpx.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", message, nil)
}

func conflict(w http.ResponseWriter, message string) {
	httpx.JSONError(w, http.StatusConflict, "CONFLICT", message, nil)
}

// serverError hides collaborator failure detail from the caller; the access
// log and recovery middleware carry the specifics.
func serverError(w http.ResponseWriter) {
	httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred", nil)
}

// storeError maps a repository failure onto the response taxonomy.
func storeError(w http.ResponseWriter, err error) {
	if errors.Is(err, usecase.ErrNotFound) {
		notFound(w, "not found")
		return
	}
	serverError(w)
}
