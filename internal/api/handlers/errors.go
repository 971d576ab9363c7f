package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/baharkarakas/pos-backend/internal/api/httpx"
	"github.com/baharkarakas/pos-backend/internal/api/validate"
	"github.com/baharkarakas/pos-backend/internal/middleware"
	"github.com/baharkarakas/pos-backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// writeServiceError maps service errors onto the JSON error envelope.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		fieldErrs validate.Errs
		dsErr     *services.DataSourceError
	)
	switch {
	case errors.As(err, &fieldErrs):
		httpx.WriteError(w, http.StatusUnprocessableEntity, "validation_failed", "validation failed", fieldErrs)
	case errors.Is(err, services.ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error(), nil)
	case errors.Is(err, services.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "not found", nil)
	case errors.Is(err, services.ErrConflict):
		httpx.WriteError(w, http.StatusConflict, "conflict", err.Error(), nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", nil)
	case errors.Is(err, services.ErrInactive):
		httpx.WriteError(w, http.StatusForbidden, "account_disabled", "account disabled", nil)
	case errors.As(err, &dsErr):
		slog.ErrorContext(r.Context(), "data source",
			"collection", dsErr.Collection, "err", dsErr.Err,
			"request_id", middleware.RequestIDFrom(r.Context()))
		httpx.WriteError(w, http.StatusBadGateway, "data_source_error", "could not read "+dsErr.Collection, nil)
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"err", err, "request_id", middleware.RequestIDFrom(r.Context()))
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}

// idParam returns the {id} path parameter. Ids that are not UUIDs cannot
// match a row, so they are answered with 404 without touching the store.
func idParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		httpx.WriteError(w, http.StatusNotFound, "not_found", "not found", nil)
		return "", false
	}
	return id, true
}

func badRequest(w http.ResponseWriter, err error) {
	httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", err.Error())
}
