package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/wishkeeper/internal/logger"
	"github.com/MKhiriev/wishkeeper/models"
)

// metadata fetches best-effort product metadata for a URL so the client can
// prefill an item form.
func (h *Handler) metadata(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if _, ok := h.authenticatedUserID(w, r); !ok {
		return
	}

	var request models.MetadataRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.sendError(w, r, "Invalid JSON was passed", http.StatusBadRequest, err)
		return
	}

	fetched, err := h.services.MetadataService.Fetch(ctx, request)
	if err != nil {
		log.Err(err).Str("url", request.URL).Msg("fetching metadata failed")
		h.handleServiceError(w, r, err)
		return
	}

	h.sendSuccess(w, r, fetched, http.StatusOK)
}
