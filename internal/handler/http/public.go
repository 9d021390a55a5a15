package http

import (
	"net/http"

	"github.com/MKhiriev/wishkeeper/internal/logger"
	"github.com/go-chi/chi/v5"
)

// publicList serves the anonymous share-link view. A private list and an
// unknown share id produce the same 404.
func (h *Handler) publicList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	shareID := chi.URLParam(r, "shareID")
	if shareID == "" {
		h.sendError(w, r, "list was not found", http.StatusNotFound, nil)
		return
	}

	list, err := h.services.ListService.GetPublicList(ctx, shareID)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("share_id", shareID).Msg("resolving share link failed")
		h.handleServiceError(w, r, err)
		return
	}

	h.sendSuccess(w, r, list, http.StatusOK)
}
