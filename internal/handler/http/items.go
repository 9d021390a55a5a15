package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/wishkeeper/internal/logger"
	"github.com/MKhiriev/wishkeeper/models"
)

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
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

	var request models.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.sendError(w, r, "Invalid JSON was passed", http.StatusBadRequest, err)
		return
	}

	created, err := h.services.ItemService.CreateItem(ctx, userID, listID, request)
	if err != nil {
		log.Err(err).Msg("creating item failed")
		h.handleServiceError(w, r, err)
		return
	}

	log.Debug().Int64("item_id", created.ItemID).Int64("list_id", listID).Msg("item created")

	h.sendSuccess(w, r, created, http.StatusCreated)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.authenticatedUserID(w, r)
	if !ok {
		return
	}

	itemID, err := urlParamInt64(r, "itemID")
	if err != nil {
		h.sendError(w, r, "item was not found", http.StatusNotFound, err)
		return
	}

	var request models.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.sendError(w, r, "Invalid JSON was passed", http.StatusBadRequest, err)
		return
	}

	updated, err := h.services.ItemService.UpdateItem(ctx, userID, itemID, request)
	if err != nil {
		log.Err(err).Msg("updating item failed")
		h.handleServiceError(w, r, err)
		return
	}

	h.sendSuccess(w, r, updated, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.authenticatedUserID(w, r)
	if !ok {
		return
	}

	itemID, err := urlParamInt64(r, "itemID")
	if err != nil {
		h.sendError(w, r, "item was not found", http.StatusNotFound, err)
		return
	}

	if err := h.services.ItemService.DeleteItem(ctx, userID, itemID); err != nil {
		log.Err(err).Msg("deleting item failed")
		h.handleServiceError(w, r, err)
		return
	}

	log.Info().Int64("item_id", itemID).Msg("item deleted")

	h.sendSuccess(w, r, nil, http.StatusOK)
}
