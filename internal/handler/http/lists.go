package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/wishkeeper/internal/logger"
	"github.com/MKhiriev/wishkeeper/models"
)

func (h *Handler) lists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.authenticatedUserID(w, r)
	if !ok {
		return
	}

	lists, err := h.services.ListService.GetLists(ctx, userID)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("getting lists failed")
		h.handleServiceError(w, r, err)
		return
	}

	h.sendSuccess(w, r, lists, http.StatusOK)
}

func (h *Handler) createList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.authenticatedUserID(w, r)
	if !ok {
		return
	}

	var request models.CreateListRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.sendError(w, r, "Invalid JSON was passed", http.StatusBadRequest, err)
		return
	}

	created, err := h.services.ListService.CreateList(ctx, userID, request)
	if err != nil {
		log.Err(err).Msg("creating list failed")
		h.handleServiceError(w, r, err)
		return
	}

	log.Debug().Int64("list_id", created.ListID).Msg("list created")

	h.sendSuccess(w, r, created, http.StatusCreated)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.authenticatedUserID(w, r)
	if !ok {
		return
	}

	listID, err := urlParamInt64(r, "listID")
	if err != nil {
		h.sendError(w, r, "list was not found", http.StatusNotFound, err)
		return
	}

	list, err := h.services.ListService.GetList(ctx, listID, userID)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("getting list failed")
		h.handleServiceError(w, r, err)
		return
	}

	h.sendSuccess(w, r, list, http.StatusOK)
}

func (h *Handler) updateList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.authenticatedUserID(w, r)
	if !ok {
		return
	}

	listID, err := urlParamInt64(r, "listID")
	if err != nil {
		h.sendError(w, r, "list was not found", http.StatusNotFound, err)
		return
	}

	var request models.UpdateListRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.sendError(w, r, "Invalid JSON was passed", http.StatusBadRequest, err)
		return
	}

	updated, err := h.services.ListService.UpdateList(ctx, listID, userID, request)
	if err != nil {
		log.Err(err).Msg("updating list failed")
		h.handleServiceError(w, r, err)
		return
	}

	h.sendSuccess(w, r, updated, http.StatusOK)
}

func (h *Handler) deleteList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.authenticatedUserID(w, r)
	if !ok {
		return
	}

	listID, err := urlParamInt64(r, "listID")
	if err != nil {
		h.sendError(w, r, "list was not found", http.StatusNotFound, err)
		return
	}

	if err := h.services.ListService.DeleteList(ctx, listID, userID); err != nil {
		log.Err(err).Msg("deleting list failed")
		h.handleServiceError(w, r, err)
		return
	}

	log.Info().Int64("list_id", listID).Msg("list deleted")

	h.sendSuccess(w, r, nil, http.StatusOK)
}
