// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/MKhiriev/wishkeeper/internal/config"
	"github.com/MKhiriev/wishkeeper/internal/logger"
	"github.com/MKhiriev/wishkeeper/internal/service"
	"github.com/MKhiriev/wishkeeper/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Per-interface mocks with overridable methods
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, request models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockUserService implements service.UserService for unit tests.
type mockUserService struct {
	getProfileFn      func(ctx context.Context, userID int64) (models.User, error)
	updateProfileFn   func(ctx context.Context, userID int64, request models.UpdateProfileRequest) (models.User, error)
	exportFn          func(ctx context.Context, userID int64) (models.Export, error)
	deleteAccountFn   func(ctx context.Context, userID int64, request models.DeleteAccountRequest) error
	touchLastActiveFn func(ctx context.Context, userID int64)
}

func (m *mockUserService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	return m.getProfileFn(ctx, userID)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, userID int64, request models.UpdateProfileRequest) (models.User, error) {
	return m.updateProfileFn(ctx, userID, request)
}

func (m *mockUserService) Export(ctx context.Context, userID int64) (models.Export, error) {
	return m.exportFn(ctx, userID)
}

func (m *mockUserService) DeleteAccount(ctx context.Context, userID int64, request models.DeleteAccountRequest) error {
	return m.deleteAccountFn(ctx, userID, request)
}

// TouchLastActive is a no-op unless a test overrides it: the auth middleware
// fires it on every authenticated request.
func (m *mockUserService) TouchLastActive(ctx context.Context, userID int64) {
	if m.touchLastActiveFn != nil {
		m.touchLastActiveFn(ctx, userID)
	}
}

// mockListService implements service.ListService for unit tests.
type mockListService struct {
	createListFn    func(ctx context.Context, ownerID int64, request models.CreateListRequest) (models.List, error)
	getListsFn      func(ctx context.Context, ownerID int64) ([]models.List, error)
	getListFn       func(ctx context.Context, listID, ownerID int64) (models.ListWithItems, error)
	updateListFn    func(ctx context.Context, listID, ownerID int64, request models.UpdateListRequest) (models.List, error)
	deleteListFn    func(ctx context.Context, listID, ownerID int64) error
	getPublicListFn func(ctx context.Context, shareID string) (models.PublicList, error)
}

func (m *mockListService) CreateList(ctx context.Context, ownerID int64, request models.CreateListRequest) (models.List, error) {
	return m.createListFn(ctx, ownerID, request)
}

func (m *mockListService) GetLists(ctx context.Context, ownerID int64) ([]models.List, error) {
	return m.getListsFn(ctx, ownerID)
}

func (m *mockListService) GetList(ctx context.Context, listID, ownerID int64) (models.ListWithItems, error) {
	return m.getListFn(ctx, listID, ownerID)
}

func (m *mockListService) UpdateList(ctx context.Context, listID, ownerID int64, request models.UpdateListRequest) (models.List, error) {
	return m.updateListFn(ctx, listID, ownerID, request)
}

func (m *mockListService) DeleteList(ctx context.Context, listID, ownerID int64) error {
	return m.deleteListFn(ctx, listID, ownerID)
}

func (m *mockListService) GetPublicList(ctx context.Context, shareID string) (models.PublicList, error) {
	return m.getPublicListFn(ctx, shareID)
}

// mockItemService implements service.ItemService for unit tests.
type mockItemService struct {
	createItemFn func(ctx context.Context, ownerID, listID int64, request models.CreateItemRequest) (models.Item, error)
	updateItemFn func(ctx context.Context, ownerID, itemID int64, request models.UpdateItemRequest) (models.Item, error)
	deleteItemFn func(ctx context.Context, ownerID, itemID int64) error
}

func (m *mockItemService) CreateItem(ctx context.Context, ownerID, listID int64, request models.CreateItemRequest) (models.Item, error) {
	return m.createItemFn(ctx, ownerID, listID, request)
}

func (m *mockItemService) UpdateItem(ctx context.Context, ownerID, itemID int64, request models.UpdateItemRequest) (models.Item, error) {
	return m.updateItemFn(ctx, ownerID, itemID, request)
}

func (m *mockItemService) DeleteItem(ctx context.Context, ownerID, itemID int64) error {
	return m.deleteItemFn(ctx, ownerID, itemID)
}

// mockClaimService implements service.ClaimService for unit tests.
type mockClaimService struct {
	createClaimFn  func(ctx context.Context, request models.CreateClaimRequest) (models.CreatedClaim, error)
	retractClaimFn func(ctx context.Context, claimID int64, token string) error
}

func (m *mockClaimService) CreateClaim(ctx context.Context, request models.CreateClaimRequest) (models.CreatedClaim, error) {
	return m.createClaimFn(ctx, request)
}

func (m *mockClaimService) RetractClaim(ctx context.Context, claimID int64, token string) error {
	return m.retractClaimFn(ctx, claimID, token)
}

// mockMetadataService implements service.MetadataService for unit tests.
type mockMetadataService struct {
	fetchFn func(ctx context.Context, request models.MetadataRequest) (models.ItemMetadata, error)
}

func (m *mockMetadataService) Fetch(ctx context.Context, request models.MetadataRequest) (models.ItemMetadata, error) {
	return m.fetchFn(ctx, request)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testCookieName = "wishkeeper_session"

// newTestConfig returns a non-production config with a rate budget high
// enough that ordinary tests never trip the limiter.
func newTestConfig() *config.StructuredConfig {
	cfg := &config.StructuredConfig{}
	cfg.App.CookieName = testCookieName
	cfg.App.TokenDuration = 24 * time.Hour
	cfg.RateLimit.RequestsPerMinute = 10000
	cfg.RateLimit.Burst = 10000
	return cfg
}

// newTestHandler builds a Handler around the given services. Services the
// test does not touch may be left nil.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	h := NewHandler(services, newTestConfig(), logger.Nop())
	t.Cleanup(h.Close)
	return h
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeError decodes an error envelope from a response body.
func decodeError(t *testing.T, body []byte) errorEnvelope {
	t.Helper()
	var envelope errorEnvelope
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope
}
