// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/wishkeeper/internal/logger"
	"github.com/MKhiriev/wishkeeper/internal/store"
	"github.com/MKhiriev/wishkeeper/internal/validators"
	"github.com/MKhiriev/wishkeeper/models"
)

// itemService is the concrete implementation of ItemService.
//
// Items carry no owner of their own. Every operation here re-derives the
// owning list for the acting user through FindOwnedList, so an item reached
// through someone else's list is reported as not found, never as forbidden.
type itemService struct {
	itemRepository  store.ItemRepository
	listRepository  store.ListRepository
	claimRepository store.ClaimRepository
	validator       validators.Validator
	logger          *logger.Logger
}

// NewItemService constructs an ItemService over the given repositories.
func NewItemService(storages *store.Storages, validator validators.Validator, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository:  storages.ItemRepository,
		listRepository:  storages.ListRepository,
		claimRepository: storages.ClaimRepository,
		validator:       validator,
		logger:          logger,
	}
}

// CreateItem adds an item to an owned list. Priority defaults to medium when
// the request omits it.
func (i *itemService) CreateItem(ctx context.Context, ownerID, listID int64, request models.CreateItemRequest) (models.Item, error) {
	log := logger.FromContext(ctx)

	if err := i.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Int64("list_id", listID).Msg("invalid item data provided")
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err := i.listRepository.FindOwnedList(ctx, listID, ownerID); err != nil {
		return models.Item{}, fmt.Errorf("owned list lookup failed: %w", err)
	}

	priority := request.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	created, err := i.itemRepository.CreateItem(ctx, models.Item{
		ListID:     listID,
		Title:      request.Title,
		URL:        request.URL,
		PriceCents: request.PriceCents,
		ImageURL:   request.ImageURL,
		Category:   request.Category,
		Priority:   priority,
		Notes:      request.Notes,
	})
	if err != nil {
		log.Err(err).Int64("list_id", listID).Msg("item creation ended with error")
		return models.Item{}, fmt.Errorf("item creation ended with error: %w", err)
	}

	return created, nil
}

// UpdateItem applies a partial mutation to an item on an owned list.
func (i *itemService) UpdateItem(ctx context.Context, ownerID, itemID int64, request models.UpdateItemRequest) (models.Item, error) {
	log := logger.FromContext(ctx)

	if err := i.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Int64("item_id", itemID).Msg("invalid item update provided")
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err := i.resolveOwnedItem(ctx, ownerID, itemID); err != nil {
		return models.Item{}, err
	}

	updated, err := i.itemRepository.UpdateItem(ctx, itemID, request)
	if err != nil {
		return models.Item{}, fmt.Errorf("item update failed: %w", err)
	}

	return updated, nil
}

// DeleteItem removes an item from an owned list, deleting its claim first so
// no claim ever outlives its item.
func (i *itemService) DeleteItem(ctx context.Context, ownerID, itemID int64) error {
	log := logger.FromContext(ctx)

	if _, err := i.resolveOwnedItem(ctx, ownerID, itemID); err != nil {
		return err
	}

	claimsDeleted, err := i.claimRepository.DeleteClaimsByItemIDs(ctx, []int64{itemID})
	if err != nil {
		log.Err(err).Int64("item_id", itemID).Msg("cascade step failed: claims")
		return fmt.Errorf("cascade claim deletion failed: %w", err)
	}

	if err := i.itemRepository.DeleteItem(ctx, itemID); err != nil {
		log.Err(err).Int64("item_id", itemID).Msg("cascade step failed: item")
		return fmt.Errorf("item deletion failed: %w", err)
	}

	log.Info().Int64("item_id", itemID).Int64("claims_deleted", claimsDeleted).Msg("item deleted")

	return nil
}

// resolveOwnedItem walks the ownership chain item → list → owner for the
// acting user. An item that exists but hangs off someone else's list yields
// store.ErrListNotFound, which the transport maps to the same 404 as a
// missing item.
func (i *itemService) resolveOwnedItem(ctx context.Context, ownerID, itemID int64) (models.Item, error) {
	item, err := i.itemRepository.FindItemByID(ctx, itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("item lookup failed: %w", err)
	}

	if _, err := i.listRepository.FindOwnedList(ctx, item.ListID, ownerID); err != nil {
		return models.Item{}, fmt.Errorf("owned list lookup failed: %w", err)
	}

	return item, nil
}
