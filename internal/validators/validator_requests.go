// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"net/url"

	"github.com/MKhiriev/wishkeeper/models"
)

const (
	minPasswordLength = 8
	maxTitleLength    = 200
)

// RequestValidator validates the API request payloads before they reach the
// service layer. It is stateless and safe for concurrent use.
type RequestValidator struct{}

// NewRequestValidator constructs a [RequestValidator].
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{}
}

// Validate implements [Validator]. It dispatches on the dynamic type of value
// and returns the first rule violation found. Field-level scoping is not used
// by request validation; the variadic parameter exists to satisfy the
// interface.
func (v *RequestValidator) Validate(ctx context.Context, value any, _ ...string) error {
	switch request := value.(type) {
	case models.RegisterRequest:
		return v.validateRegister(request)
	case models.LoginRequest:
		return v.validateLogin(request)
	case models.UpdateProfileRequest:
		return v.validateUpdateProfile(request)
	case models.DeleteAccountRequest:
		return v.validateDeleteAccount(request)
	case models.CreateListRequest:
		return v.validateCreateList(request)
	case models.UpdateListRequest:
		return v.validateUpdateList(request)
	case models.CreateItemRequest:
		return v.validateCreateItem(request)
	case models.UpdateItemRequest:
		return v.validateUpdateItem(request)
	case models.CreateClaimRequest:
		return v.validateCreateClaim(request)
	case models.MetadataRequest:
		return v.validateMetadata(request)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegister(request models.RegisterRequest) error {
	if _, err := mail.ParseAddress(request.Email); err != nil {
		return ErrInvalidEmail
	}
	if len(request.Password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if request.Name == "" {
		return ErrEmptyName
	}
	return nil
}

func (v *RequestValidator) validateLogin(request models.LoginRequest) error {
	if request.Email == "" {
		return ErrInvalidEmail
	}
	if request.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

func (v *RequestValidator) validateUpdateProfile(request models.UpdateProfileRequest) error {
	if request.Name == nil && request.Preferences == nil {
		return ErrNoFieldsToUpdate
	}
	if request.Name != nil && *request.Name == "" {
		return ErrEmptyName
	}
	return nil
}

func (v *RequestValidator) validateDeleteAccount(request models.DeleteAccountRequest) error {
	if request.Password == "" {
		return ErrEmptyPassword
	}
	if request.Confirmation != "DELETE" {
		return ErrWrongConfirmation
	}
	return nil
}

func (v *RequestValidator) validateCreateList(request models.CreateListRequest) error {
	return v.validateTitle(request.Title)
}

func (v *RequestValidator) validateUpdateList(request models.UpdateListRequest) error {
	if request.Title == nil && request.IsPublic == nil {
		return ErrNoFieldsToUpdate
	}
	if request.Title != nil {
		return v.validateTitle(*request.Title)
	}
	return nil
}

func (v *RequestValidator) validateCreateItem(request models.CreateItemRequest) error {
	if err := v.validateTitle(request.Title); err != nil {
		return err
	}
	if request.URL != "" {
		if err := v.validateHTTPSURL(request.URL); err != nil {
			return err
		}
	}
	if request.PriceCents != nil && *request.PriceCents < 0 {
		return ErrNegativePrice
	}
	if request.Priority != "" && !models.ValidPriority(request.Priority) {
		return ErrInvalidPriority
	}
	return nil
}

func (v *RequestValidator) validateUpdateItem(request models.UpdateItemRequest) error {
	if request.Title == nil && request.URL == nil && request.PriceCents == nil &&
		request.ImageURL == nil && request.Category == nil &&
		request.Priority == nil && request.Notes == nil {
		return ErrNoFieldsToUpdate
	}
	if request.Title != nil {
		if err := v.validateTitle(*request.Title); err != nil {
			return err
		}
	}
	if request.URL != nil && *request.URL != "" {
		if err := v.validateHTTPSURL(*request.URL); err != nil {
			return err
		}
	}
	if request.PriceCents != nil && *request.PriceCents < 0 {
		return ErrNegativePrice
	}
	if request.Priority != nil && !models.ValidPriority(*request.Priority) {
		return ErrInvalidPriority
	}
	return nil
}

func (v *RequestValidator) validateCreateClaim(request models.CreateClaimRequest) error {
	if request.ItemID <= 0 {
		return ErrInvalidItemID
	}
	if request.ClaimerName == "" {
		return ErrEmptyClaimerName
	}
	return nil
}

func (v *RequestValidator) validateMetadata(request models.MetadataRequest) error {
	return v.validateHTTPSURL(request.URL)
}

func (v *RequestValidator) validateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

// validateHTTPSURL enforces the https-only policy for every outbound or
// stored URL. Plain http is rejected to keep scraped and displayed links
// from downgrading visitors.
func (v *RequestValidator) validateHTTPSURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return ErrInvalidURL
	}
	if parsed.Scheme != "https" || parsed.Host == "" {
		return ErrInvalidURL
	}
	return nil
}
