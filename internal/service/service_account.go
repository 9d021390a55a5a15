// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/wishkeeper/internal/logger"
	"github.com/MKhiriev/wishkeeper/internal/store"
	"github.com/MKhiriev/wishkeeper/internal/validators"
	"github.com/MKhiriev/wishkeeper/models"
	"golang.org/x/crypto/bcrypt"
)

// userService is the concrete implementation of UserService.
//
// It owns the account-scoped cascade delete — the widest cascade in the
// system — and the data export, which is its read-side mirror: both walk
// user → lists → items → claims, one to destroy and one to serialize.
type userService struct {
	userRepository  store.UserRepository
	listRepository  store.ListRepository
	itemRepository  store.ItemRepository
	claimRepository store.ClaimRepository
	validator       validators.Validator
	logger          *logger.Logger
}

// NewUserService constructs a UserService over the given repositories.
func NewUserService(storages *store.Storages, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository:  storages.UserRepository,
		listRepository:  storages.ListRepository,
		itemRepository:  storages.ItemRepository,
		claimRepository: storages.ClaimRepository,
		validator:       validator,
		logger:          logger,
	}
}

// GetProfile returns the user's account record with preference defaults
// applied on read.
func (u *userService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	user.Preferences = user.Preferences.WithDefaults()
	return user, nil
}

// UpdateProfile applies a partial profile mutation (name, preferences).
func (u *userService) UpdateProfile(ctx context.Context, userID int64, request models.UpdateProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("invalid profile update provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if request.Name != nil {
		user.Name = *request.Name
	}
	if request.Preferences != nil {
		user.Preferences = request.Preferences.WithDefaults()
	}

	updated, err := u.userRepository.UpdateUser(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	updated.Preferences = updated.Preferences.WithDefaults()
	return updated, nil
}

// Export assembles the single nested document of everything the user owns:
// profile, lists, items, and the claims made against those items. Claim
// secret tokens never appear — ExportedClaim has no field for them.
func (u *userService) Export(ctx context.Context, userID int64) (models.Export, error) {
	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.Export{}, fmt.Errorf("user lookup failed: %w", err)
	}
	user.Preferences = user.Preferences.WithDefaults()

	lists, items, claims, err := u.collectOwnedGraph(ctx, userID)
	if err != nil {
		return models.Export{}, err
	}

	claimsByItem := make(map[int64][]models.ExportedClaim, len(claims))
	for _, claim := range claims {
		claimsByItem[claim.ItemID] = append(claimsByItem[claim.ItemID], models.ExportedClaim{
			ClaimID:     claim.ClaimID,
			ItemID:      claim.ItemID,
			ClaimerName: claim.ClaimerName,
			ClaimerNote: claim.ClaimerNote,
			ClaimedAt:   claim.ClaimedAt,
		})
	}

	itemsByList := make(map[int64][]models.ExportedItem, len(items))
	for _, item := range items {
		exported := models.ExportedItem{Item: item, Claims: claimsByItem[item.ItemID]}
		if exported.Claims == nil {
			exported.Claims = []models.ExportedClaim{}
		}
		itemsByList[item.ListID] = append(itemsByList[item.ListID], exported)
	}

	exportedLists := make([]models.ExportedList, 0, len(lists))
	for _, list := range lists {
		exported := models.ExportedList{List: list, Items: itemsByList[list.ListID]}
		if exported.Items == nil {
			exported.Items = []models.ExportedItem{}
		}
		exportedLists = append(exportedLists, exported)
	}

	return models.Export{
		ExportedAt: time.Now().UTC(),
		User:       user,
		Lists:      exportedLists,
	}, nil
}

// DeleteAccount destroys the account and everything under it.
//
// The caller re-authenticates with the current password and must supply the
// literal confirmation string "DELETE" (checked by the validator). The
// cascade then runs children first — claims → items → lists → user — with
// each step idempotent, so a cascade interrupted halfway can be re-run and
// will finish the remainder. Only the caller's own rows are touched: every
// step is scoped through the caller's list ids.
func (u *userService) DeleteAccount(ctx context.Context, userID int64, request models.DeleteAccountRequest) error {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("invalid account deletion request")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user lookup failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		log.Warn().Int64("user_id", userID).Msg("account deletion with wrong password")
		return ErrWrongPassword
	}

	lists, items, _, err := u.collectOwnedGraph(ctx, userID)
	if err != nil {
		return err
	}

	listIDs := make([]int64, 0, len(lists))
	for _, list := range lists {
		listIDs = append(listIDs, list.ListID)
	}
	itemIDs := make([]int64, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ItemID)
	}

	claimsDeleted, err := u.claimRepository.DeleteClaimsByItemIDs(ctx, itemIDs)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("cascade step failed: claims")
		return fmt.Errorf("cascade claim deletion failed: %w", err)
	}

	itemsDeleted, err := u.itemRepository.DeleteItemsByListIDs(ctx, listIDs)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("cascade step failed: items")
		return fmt.Errorf("cascade item deletion failed: %w", err)
	}

	listsDeleted, err := u.listRepository.DeleteListsByOwner(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("cascade step failed: lists")
		return fmt.Errorf("cascade list deletion failed: %w", err)
	}

	if err := u.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("cascade step failed: user")
		return fmt.Errorf("cascade user deletion failed: %w", err)
	}

	log.Info().
		Int64("user_id", userID).
		Int64("claims_deleted", claimsDeleted).
		Int64("items_deleted", itemsDeleted).
		Int64("lists_deleted", listsDeleted).
		Msg("account cascade delete completed")

	return nil
}

// TouchLastActive bumps the user's activity timestamp. Best effort: a
// failure is logged and swallowed, it must never fail the request that
// triggered it.
func (u *userService) TouchLastActive(ctx context.Context, userID int64) {
	if err := u.userRepository.TouchLastActive(ctx, userID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("user_id", userID).Msg("failed to bump last_active_at")
	}
}

// collectOwnedGraph loads the user's full ownership graph: lists, their
// items, and the claims on those items.
func (u *userService) collectOwnedGraph(ctx context.Context, userID int64) ([]models.List, []models.Item, []models.Claim, error) {
	lists, err := u.listRepository.FindListsByOwner(ctx, userID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("list lookup by owner failed: %w", err)
	}

	listIDs := make([]int64, 0, len(lists))
	for _, list := range lists {
		listIDs = append(listIDs, list.ListID)
	}

	items, err := u.itemRepository.FindItemsByListIDs(ctx, listIDs)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("item lookup by lists failed: %w", err)
	}

	itemIDs := make([]int64, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ItemID)
	}

	claims, err := u.claimRepository.FindClaimsByItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("claim lookup by items failed: %w", err)
	}

	return lists, items, claims, nil
}
