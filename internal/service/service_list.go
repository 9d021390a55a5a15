// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/wishkeeper/internal/logger"
	"github.com/MKhiriev/wishkeeper/internal/store"
	"github.com/MKhiriev/wishkeeper/internal/utils"
	"github.com/MKhiriev/wishkeeper/internal/validators"
	"github.com/MKhiriev/wishkeeper/models"
)

// maxGenerateAttempts bounds the regenerate-and-retry loop for random public
// identifiers (share ids, claim tokens). The identifiers carry enough entropy
// that hitting the bound means the randomness source is broken, not that the
// namespace is crowded.
const maxGenerateAttempts = 5

// listService is the concrete implementation of ListService.
//
// It owns the list-scoped cascade delete, which is why it holds the item and
// claim repositories alongside its own: the cascade runs children first
// (claims → items → list) without relying on database-level ON DELETE rules.
type listService struct {
	listRepository  store.ListRepository
	itemRepository  store.ItemRepository
	claimRepository store.ClaimRepository
	userRepository  store.UserRepository
	validator       validators.Validator
	logger          *logger.Logger
}

// NewListService constructs a ListService over the given repositories.
func NewListService(storages *store.Storages, validator validators.Validator, logger *logger.Logger) ListService {
	return &listService{
		listRepository:  storages.ListRepository,
		itemRepository:  storages.ItemRepository,
		claimRepository: storages.ClaimRepository,
		userRepository:  storages.UserRepository,
		validator:       validator,
		logger:          logger,
	}
}

// CreateList creates a wishlist with a freshly generated share id.
//
// The share id's uniqueness is enforced by a unique index; on the (rare)
// collision the id is regenerated and the insert retried, up to
// maxGenerateAttempts times.
func (l *listService) CreateList(ctx context.Context, ownerID int64, request models.CreateListRequest) (models.List, error) {
	log := logger.FromContext(ctx)

	if err := l.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Msg("invalid list data provided")
		return models.List{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	for attempt := 1; attempt <= maxGenerateAttempts; attempt++ {
		shareID, err := utils.NewShareID()
		if err != nil {
			return models.List{}, fmt.Errorf("share id generation failed: %w", err)
		}

		created, err := l.listRepository.CreateList(ctx, models.List{
			OwnerID:  ownerID,
			Title:    request.Title,
			IsPublic: request.IsPublic,
			ShareID:  shareID,
		})
		if errors.Is(err, store.ErrShareIDTaken) {
			log.Warn().Int("attempt", attempt).Msg("share id collision, regenerating")
			continue
		}
		if err != nil {
			log.Err(err).Int64("owner_id", ownerID).Msg("list creation ended with error")
			return models.List{}, fmt.Errorf("list creation ended with error: %w", err)
		}

		return created, nil
	}

	return models.List{}, ErrIDGenerationExhausted
}

// GetLists returns every list the user owns, newest first.
func (l *listService) GetLists(ctx context.Context, ownerID int64) ([]models.List, error) {
	lists, err := l.listRepository.FindListsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list lookup by owner failed: %w", err)
	}

	return lists, nil
}

// GetList returns an owned list joined with its items. A list owned by
// someone else is reported as not found.
func (l *listService) GetList(ctx context.Context, listID, ownerID int64) (models.ListWithItems, error) {
	list, err := l.listRepository.FindOwnedList(ctx, listID, ownerID)
	if err != nil {
		return models.ListWithItems{}, fmt.Errorf("owned list lookup failed: %w", err)
	}

	items, err := l.itemRepository.FindItemsByListID(ctx, listID)
	if err != nil {
		return models.ListWithItems{}, fmt.Errorf("item lookup by list failed: %w", err)
	}

	return models.ListWithItems{List: list, Items: items}, nil
}

// UpdateList applies a partial mutation to an owned list.
func (l *listService) UpdateList(ctx context.Context, listID, ownerID int64, request models.UpdateListRequest) (models.List, error) {
	log := logger.FromContext(ctx)

	if err := l.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Int64("list_id", listID).Msg("invalid list update provided")
		return models.List{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := l.listRepository.UpdateList(ctx, listID, ownerID, request)
	if err != nil {
		return models.List{}, fmt.Errorf("list update failed: %w", err)
	}

	return updated, nil
}

// DeleteList removes an owned list and everything under it, children first:
// claims → items → list. Each step is idempotent, so a cascade that failed
// halfway can simply be re-run; a step that finds nothing to delete is a
// no-op.
func (l *listService) DeleteList(ctx context.Context, listID, ownerID int64) error {
	log := logger.FromContext(ctx)

	if _, err := l.listRepository.FindOwnedList(ctx, listID, ownerID); err != nil {
		return fmt.Errorf("owned list lookup failed: %w", err)
	}

	items, err := l.itemRepository.FindItemsByListID(ctx, listID)
	if err != nil {
		return fmt.Errorf("item lookup by list failed: %w", err)
	}

	itemIDs := make([]int64, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ItemID)
	}

	claimsDeleted, err := l.claimRepository.DeleteClaimsByItemIDs(ctx, itemIDs)
	if err != nil {
		log.Err(err).Int64("list_id", listID).Msg("cascade step failed: claims")
		return fmt.Errorf("cascade claim deletion failed: %w", err)
	}

	itemsDeleted, err := l.itemRepository.DeleteItemsByListIDs(ctx, []int64{listID})
	if err != nil {
		log.Err(err).Int64("list_id", listID).Msg("cascade step failed: items")
		return fmt.Errorf("cascade item deletion failed: %w", err)
	}

	if err := l.listRepository.DeleteList(ctx, listID); err != nil {
		log.Err(err).Int64("list_id", listID).Msg("cascade step failed: list")
		return fmt.Errorf("cascade list deletion failed: %w", err)
	}

	log.Info().
		Int64("list_id", listID).
		Int64("claims_deleted", claimsDeleted).
		Int64("items_deleted", itemsDeleted).
		Msg("list cascade delete completed")

	return nil
}

// GetPublicList resolves a share link into the visitor-facing projection:
// the list title, its items, and for each claimed item the claimer's name
// and note — never the claim's secret token.
//
// A private list is reported as store.ErrListNotFound, indistinguishable
// from an absent one, so the share-id namespace cannot be probed.
func (l *listService) GetPublicList(ctx context.Context, shareID string) (models.PublicList, error) {
	list, err := l.listRepository.FindListByShareID(ctx, shareID)
	if err != nil {
		return models.PublicList{}, fmt.Errorf("list lookup by share id failed: %w", err)
	}
	if !list.IsPublic {
		return models.PublicList{}, store.ErrListNotFound
	}

	owner, err := l.userRepository.FindUserByID(ctx, list.OwnerID)
	if err != nil {
		return models.PublicList{}, fmt.Errorf("owner lookup failed: %w", err)
	}

	items, err := l.itemRepository.FindItemsByListID(ctx, list.ListID)
	if err != nil {
		return models.PublicList{}, fmt.Errorf("item lookup by list failed: %w", err)
	}

	itemIDs := make([]int64, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ItemID)
	}

	claims, err := l.claimRepository.FindClaimsByItemIDs(ctx, itemIDs)
	if err != nil {
		return models.PublicList{}, fmt.Errorf("claim lookup by items failed: %w", err)
	}

	claimsByItem := make(map[int64]models.Claim, len(claims))
	for _, claim := range claims {
		claimsByItem[claim.ItemID] = claim
	}

	publicItems := make([]models.PublicItem, 0, len(items))
	for _, item := range items {
		publicItem := models.PublicItem{Item: item}
		if claim, ok := claimsByItem[item.ItemID]; ok {
			publicItem.Claimed = true
			publicItem.ClaimerName = claim.ClaimerName
			publicItem.ClaimerNote = claim.ClaimerNote
		}
		publicItems = append(publicItems, publicItem)
	}

	return models.PublicList{
		Title:     list.Title,
		ShareID:   list.ShareID,
		OwnerName: owner.Name,
		Items:     publicItems,
	}, nil
}
