package handler

import (
	"errors"
	"log/slog"
	"net/http"

	models "webuddhist/internal/domain/models/recitation"
	recitationSvc "webuddhist/internal/domain/services/recitation"
	"webuddhist/internal/httputil"
)

// RecitationHandler handles recitation HTTP requests
type RecitationHandler struct {
	service recitationSvc.RecitationService
	logger  *slog.Logger
}

// NewRecitationHandler creates a new recitation handler
func NewRecitationHandler(service recitationSvc.RecitationService, logger *slog.Logger) *RecitationHandler {
	return &RecitationHandler{
		service: service,
		logger:  logger,
	}
}

// ListRecitations lists the texts of the recitation collection
// GET /api/v1/recitations?search=&language=
func (h *RecitationHandler) ListRecitations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	resp, err := h.service.ListRecitations(r.Context(), query.Get("search"), query.Get("language"))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, resp)
}

// GetRecitationDetails returns the per-segment variant mappings of a text
// POST /api/v1/recitations/{text_id}
func (h *RecitationHandler) GetRecitationDetails(w http.ResponseWriter, r *http.Request) {
	textID := r.PathValue("text_id")
	if textID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "text_id is required")
		return
	}

	var req models.RecitationDetailsRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		if errors.Is(err, httputil.ErrBodyTooLarge) {
			httputil.RespondError(w, http.StatusRequestEntityTooLarge, err.Error())
			return
		}
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.GetRecitationDetails(r.Context(), textID, &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	h.logger.Debug("recitation details served",
		"text_id", textID,
		"user_id", httputil.GetUserID(r),
		"segments", len(resp.Segments),
	)

	httputil.RespondJSON(w, http.StatusOK, resp)
}
