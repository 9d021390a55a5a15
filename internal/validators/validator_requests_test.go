package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/wishkeeper/models"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestRequestValidator_Register(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		request models.RegisterRequest
		wantErr error
	}{
		{
			name:    "valid",
			request: models.RegisterRequest{Email: "john@example.com", Password: "longenough", Name: "John"},
			wantErr: nil,
		},
		{
			name:    "bad email",
			request: models.RegisterRequest{Email: "not-an-email", Password: "longenough", Name: "John"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "short password",
			request: models.RegisterRequest{Email: "john@example.com", Password: "short", Name: "John"},
			wantErr: ErrPasswordTooShort,
		},
		{
			name:    "empty name",
			request: models.RegisterRequest{Email: "john@example.com", Password: "longenough"},
			wantErr: ErrEmptyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.request)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequestValidator_CreateItem(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		request models.CreateItemRequest
		wantErr error
	}{
		{
			name:    "valid minimal",
			request: models.CreateItemRequest{Title: "Socks"},
			wantErr: nil,
		},
		{
			name:    "valid full",
			request: models.CreateItemRequest{Title: "Socks", URL: "https://shop.example/socks", PriceCents: ptr(int64(999)), Priority: models.PriorityHigh},
			wantErr: nil,
		},
		{
			name:    "plain http rejected",
			request: models.CreateItemRequest{Title: "Socks", URL: "http://shop.example/socks"},
			wantErr: ErrInvalidURL,
		},
		{
			name:    "negative price",
			request: models.CreateItemRequest{Title: "Socks", PriceCents: ptr(int64(-1))},
			wantErr: ErrNegativePrice,
		},
		{
			name:    "unknown priority",
			request: models.CreateItemRequest{Title: "Socks", Priority: "urgent"},
			wantErr: ErrInvalidPriority,
		},
		{
			name:    "empty title",
			request: models.CreateItemRequest{},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "overlong title",
			request: models.CreateItemRequest{Title: strings.Repeat("x", 201)},
			wantErr: ErrTitleTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.request)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequestValidator_UpdateItem_NoFields(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), models.UpdateItemRequest{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

func TestRequestValidator_CreateClaim(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.CreateClaimRequest{ItemID: 1, ClaimerName: "Aunt May"}))
	assert.ErrorIs(t, v.Validate(ctx, models.CreateClaimRequest{ClaimerName: "Aunt May"}), ErrInvalidItemID)
	assert.ErrorIs(t, v.Validate(ctx, models.CreateClaimRequest{ItemID: 1}), ErrEmptyClaimerName)
}

func TestRequestValidator_DeleteAccount(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.DeleteAccountRequest{Password: "pw", Confirmation: "DELETE"}))
	assert.ErrorIs(t, v.Validate(ctx, models.DeleteAccountRequest{Password: "pw", Confirmation: "delete"}), ErrWrongConfirmation)
	assert.ErrorIs(t, v.Validate(ctx, models.DeleteAccountRequest{Confirmation: "DELETE"}), ErrEmptyPassword)
}

func TestRequestValidator_Metadata(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.MetadataRequest{URL: "https://shop.example/socks"}))
	assert.ErrorIs(t, v.Validate(ctx, models.MetadataRequest{URL: "ftp://shop.example"}), ErrInvalidURL)
	assert.ErrorIs(t, v.Validate(ctx, models.MetadataRequest{URL: "://broken"}), ErrInvalidURL)
}

func TestRequestValidator_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), struct{}{})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
