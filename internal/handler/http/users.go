package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/wishkeeper/internal/logger"
	"github.com/MKhiriev/wishkeeper/internal/utils"
	"github.com/MKhiriev/wishkeeper/models"
)

// authenticatedUserID pulls the user ID the auth middleware stored in the
// context. A miss means the route was wired outside the auth group.
func (h *Handler) authenticatedUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user id in request context")
		h.sendError(w, r, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized, nil)
		return 0, false
	}
	return userID, true
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.authenticatedUserID(w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.GetProfile(ctx, userID)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("getting profile failed")
		h.handleServiceError(w, r, err)
		return
	}

	h.sendSuccess(w, r, user, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.authenticatedUserID(w, r)
	if !ok {
		return
	}

	var request models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.sendError(w, r, "Invalid JSON was passed", http.StatusBadRequest, err)
		return
	}

	updated, err := h.services.UserService.UpdateProfile(ctx, userID, request)
	if err != nil {
		log.Err(err).Msg("updating profile failed")
		h.handleServiceError(w, r, err)
		return
	}

	h.sendSuccess(w, r, updated, http.StatusOK)
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.authenticatedUserID(w, r)
	if !ok {
		return
	}

	export, err := h.services.UserService.Export(ctx, userID)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("exporting user data failed")
		h.handleServiceError(w, r, err)
		return
	}

	h.sendSuccess(w, r, export, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.authenticatedUserID(w, r)
	if !ok {
		return
	}

	var request models.DeleteAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.sendError(w, r, "Invalid JSON was passed", http.StatusBadRequest, err)
		return
	}

	if err := h.services.UserService.DeleteAccount(ctx, userID, request); err != nil {
		log.Err(err).Msg("deleting account failed")
		h.handleServiceError(w, r, err)
		return
	}

	log.Info().Int64("id", userID).Msg("account deleted")

	// The account is gone, so the session is too.
	h.clearSessionCookie(w)
	h.sendSuccess(w, r, nil, http.StatusOK)
}
