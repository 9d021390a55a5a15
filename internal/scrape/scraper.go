// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package scrape extracts best-effort product metadata (title, image, price,
// category, description) from a web page so the client can prefill an item
// form. Open Graph tags are preferred; <title> and the meta description are
// the fallback. Everything here is best effort: an absent field stays empty,
// only transport-level failures are errors.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/MKhiriev/wishkeeper/internal/config"
	"github.com/MKhiriev/wishkeeper/internal/logger"
	"github.com/MKhiriev/wishkeeper/models"
	"github.com/go-resty/resty/v2"
)

var (
	// ErrTimeout is returned when the remote host does not answer within the
	// configured fetch timeout.
	ErrTimeout = errors.New("fetch timed out")

	// ErrFetch is returned for any non-timeout transport or HTTP failure.
	ErrFetch = errors.New("fetch failed")
)

// Scraper fetches a page and extracts item metadata from it.
type Scraper interface {
	Scrape(ctx context.Context, url string) (models.ItemMetadata, error)
}

// ogScraper is the resty-backed Scraper. The response body is never parsed
// by resty itself; it is streamed through a size-capped reader so a hostile
// page cannot balloon memory.
type ogScraper struct {
	client       *resty.Client
	maxBodyBytes int64
	logger       *logger.Logger
}

// NewScraper constructs a Scraper with the given fetch limits.
func NewScraper(cfg config.Fetch, log *logger.Logger) Scraper {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	cli := resty.New().
		SetTimeout(timeout).
		SetDoNotParseResponse(true).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5)).
		SetHeader("User-Agent", "wishkeeper-metadata/1.0")

	return &ogScraper{
		client:       cli,
		maxBodyBytes: cfg.MaxBodyBytes,
		logger:       log,
	}
}

// Scrape fetches the page at url and extracts metadata from at most
// maxBodyBytes of its body.
func (s *ogScraper) Scrape(ctx context.Context, url string) (models.ItemMetadata, error) {
	log := logger.FromContext(ctx)

	resp, err := s.client.R().SetContext(ctx).Get(url)
	if err != nil {
		if isTimeout(err) {
			return models.ItemMetadata{}, fmt.Errorf("%w: %s", ErrTimeout, url)
		}
		log.Warn().Err(err).Str("url", url).Msg("metadata fetch failed")
		return models.ItemMetadata{}, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode()).Str("url", url).Msg("metadata fetch returned non-200")
		return models.ItemMetadata{}, fmt.Errorf("%w: status %d", ErrFetch, resp.StatusCode())
	}

	var reader io.Reader = body
	if s.maxBodyBytes > 0 {
		reader = io.LimitReader(body, s.maxBodyBytes)
	}

	metadata, err := parseMetadata(reader)
	if err != nil {
		log.Warn().Err(err).Str("url", url).Msg("metadata parsing failed")
		return models.ItemMetadata{}, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	return metadata, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return os.IsTimeout(err)
}
