package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"webuddhist/internal/domain"
	"webuddhist/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var httpErr domain.HTTPError

	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &httpErr):
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		logger.Warn("store unavailable", "error", err)
		httputil.RespondError(w, http.StatusServiceUnavailable, "service temporarily unavailable")
	case errors.Is(err, context.Canceled):
		// Client went away; nobody reads the body
		logger.Debug("request canceled", "error", err)
	default:
		logger.Error("unhandled error", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
