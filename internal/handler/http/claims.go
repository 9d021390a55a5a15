package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/wishkeeper/internal/logger"
	"github.com/MKhiriev/wishkeeper/models"
)

// createClaim is anonymous: no session required, the visitor only needs the
// item id from a public share view. The response body is the one and only
// place the claim's secret token is ever revealed.
func (h *Handler) createClaim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.CreateClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.sendError(w, r, "Invalid JSON was passed", http.StatusBadRequest, err)
		return
	}

	created, err := h.services.ClaimService.CreateClaim(ctx, request)
	if err != nil {
		log.Err(err).Msg("creating claim failed")
		h.handleServiceError(w, r, err)
		return
	}

	log.Debug().Int64("claim_id", created.ClaimID).Int64("item_id", created.ItemID).Msg("claim created")

	h.sendSuccess(w, r, models.CreatedClaimResponse{Claim: created}, http.StatusCreated)
}

// retractClaim deletes a claim when the presented secret token matches the
// stored one. The token travels in the "token" query parameter.
func (h *Handler) retractClaim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	claimID, err := urlParamInt64(r, "claimID")
	if err != nil {
		h.sendError(w, r, "claim was not found", http.StatusNotFound, err)
		return
	}

	token := r.URL.Query().Get("token")
	if token == "" {
		h.sendError(w, r, "secret token is required", http.StatusBadRequest, nil)
		return
	}

	if err := h.services.ClaimService.RetractClaim(ctx, claimID, token); err != nil {
		log.Err(err).Msg("retracting claim failed")
		h.handleServiceError(w, r, err)
		return
	}

	log.Debug().Int64("claim_id", claimID).Msg("claim retracted")

	h.sendSuccess(w, r, nil, http.StatusOK)
}
