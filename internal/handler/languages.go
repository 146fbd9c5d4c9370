package handler

import (
	"net/http"

	"webuddhist/internal/httputil"
	"webuddhist/internal/languages"
)

// LanguagesHandler serves the language codes accepted by recitation requests
type LanguagesHandler struct {
	registry *languages.Registry
}

func NewLanguagesHandler(registry *languages.Registry) *LanguagesHandler {
	return &LanguagesHandler{registry: registry}
}

// ListLanguages returns the language catalog
// GET /api/v1/languages
func (h *LanguagesHandler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"languages": h.registry.List(),
	})
}
