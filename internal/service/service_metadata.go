// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/wishkeeper/internal/logger"
	"github.com/MKhiriev/wishkeeper/internal/scrape"
	"github.com/MKhiriev/wishkeeper/internal/validators"
	"github.com/MKhiriev/wishkeeper/models"
)

// metadataService is the concrete implementation of MetadataService. It
// validates the target URL (https only) and delegates the fetch-and-parse to
// the scraper, normalising its failure modes to service-level sentinels.
type metadataService struct {
	scraper   scrape.Scraper
	validator validators.Validator
	logger    *logger.Logger
}

// NewMetadataService constructs a MetadataService over the given scraper.
func NewMetadataService(scraper scrape.Scraper, validator validators.Validator, logger *logger.Logger) MetadataService {
	return &metadataService{
		scraper:   scraper,
		validator: validator,
		logger:    logger,
	}
}

// Fetch scrapes best-effort metadata for the requested URL.
//
// Failure mapping: invalid or non-https URL → ErrInvalidDataProvided;
// remote host too slow → ErrFetchTimeout; any other transport failure →
// ErrFetchFailed. A reachable page with none of the expected tags is not an
// error — the result simply has empty fields.
func (m *metadataService) Fetch(ctx context.Context, request models.MetadataRequest) (models.ItemMetadata, error) {
	log := logger.FromContext(ctx)

	if err := m.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Str("url", request.URL).Msg("invalid metadata request")
		return models.ItemMetadata{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	metadata, err := m.scraper.Scrape(ctx, request.URL)
	if err != nil {
		switch {
		case errors.Is(err, scrape.ErrTimeout):
			return models.ItemMetadata{}, ErrFetchTimeout
		default:
			return models.ItemMetadata{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
		}
	}

	return metadata, nil
}
