// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/MKhiriev/wishkeeper/internal/logger"
	"github.com/MKhiriev/wishkeeper/internal/store"
	"github.com/MKhiriev/wishkeeper/internal/utils"
	"github.com/MKhiriev/wishkeeper/internal/validators"
	"github.com/MKhiriev/wishkeeper/models"
)

// claimService is the concrete implementation of ClaimService.
//
// Claims are anonymous on both ends: creation needs no session, and the only
// credential for retraction is the secret token issued at creation time.
type claimService struct {
	claimRepository store.ClaimRepository
	itemRepository  store.ItemRepository
	listRepository  store.ListRepository
	validator       validators.Validator
	logger          *logger.Logger
}

// NewClaimService constructs a ClaimService over the given repositories.
func NewClaimService(storages *store.Storages, validator validators.Validator, logger *logger.Logger) ClaimService {
	return &claimService{
		claimRepository: storages.ClaimRepository,
		itemRepository:  storages.ItemRepository,
		listRepository:  storages.ListRepository,
		validator:       validator,
		logger:          logger,
	}
}

// CreateClaim claims an item on behalf of an anonymous visitor.
//
// Preconditions checked in order: the item must exist (otherwise
// store.ErrItemNotFound) and its owning list must be public (otherwise
// ErrListNotPublic). The at-most-one-claim invariant is NOT checked here —
// the unique index on claims.item_id decides the winner between concurrent
// claimers, surfacing as store.ErrItemAlreadyClaimed for the loser.
//
// The secret token is generated with maxGenerateAttempts retries on the
// (practically impossible) global token collision. The returned CreatedClaim
// is the only value that ever carries the token out of the service layer.
func (c *claimService) CreateClaim(ctx context.Context, request models.CreateClaimRequest) (models.CreatedClaim, error) {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Msg("invalid claim data provided")
		return models.CreatedClaim{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	item, err := c.itemRepository.FindItemByID(ctx, request.ItemID)
	if err != nil {
		return models.CreatedClaim{}, fmt.Errorf("item lookup failed: %w", err)
	}

	list, err := c.listRepository.FindListByID(ctx, item.ListID)
	if err != nil {
		return models.CreatedClaim{}, fmt.Errorf("list lookup failed: %w", err)
	}
	if !list.IsPublic {
		return models.CreatedClaim{}, ErrListNotPublic
	}

	for attempt := 1; attempt <= maxGenerateAttempts; attempt++ {
		token, err := utils.NewSecretToken()
		if err != nil {
			return models.CreatedClaim{}, fmt.Errorf("secret token generation failed: %w", err)
		}

		created, err := c.claimRepository.CreateClaim(ctx, models.Claim{
			ItemID:      request.ItemID,
			ClaimerName: request.ClaimerName,
			ClaimerNote: request.ClaimerNote,
			SecretToken: token,
		})
		if errors.Is(err, store.ErrTokenCollision) {
			log.Warn().Int("attempt", attempt).Msg("secret token collision, regenerating")
			continue
		}
		if err != nil {
			return models.CreatedClaim{}, fmt.Errorf("claim creation ended with error: %w", err)
		}

		return models.CreatedClaim{
			ClaimID:     created.ClaimID,
			ItemID:      created.ItemID,
			ClaimerName: created.ClaimerName,
			SecretToken: created.SecretToken,
			ClaimedAt:   created.ClaimedAt,
		}, nil
	}

	return models.CreatedClaim{}, ErrIDGenerationExhausted
}

// RetractClaim deletes a claim when the presented bearer token matches the
// stored one.
//
// Outcomes: absent claim → store.ErrClaimNotFound (so a repeat retraction
// reads as gone, not as success); token mismatch → ErrClaimTokenMismatch with
// the claim left intact.
func (c *claimService) RetractClaim(ctx context.Context, claimID int64, token string) error {
	log := logger.FromContext(ctx)

	claim, err := c.claimRepository.FindClaimByID(ctx, claimID)
	if err != nil {
		return fmt.Errorf("claim lookup failed: %w", err)
	}

	if !tokensEqual(claim.SecretToken, token) {
		log.Warn().Int64("claim_id", claimID).Msg("claim retraction with wrong token")
		return ErrClaimTokenMismatch
	}

	if err := c.claimRepository.DeleteClaim(ctx, claimID); err != nil {
		return fmt.Errorf("claim deletion failed: %w", err)
	}

	return nil
}

// tokensEqual compares two bearer tokens in constant time. Both sides are
// hashed first so the comparison cost is independent of length and content.
func tokensEqual(stored, presented string) bool {
	storedSum := sha256.Sum256([]byte(stored))
	presentedSum := sha256.Sum256([]byte(presented))
	return hmac.Equal(storedSum[:], presentedSum[:])
}
