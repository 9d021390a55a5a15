// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/wishkeeper/internal/config"
	"github.com/MKhiriev/wishkeeper/internal/logger"
	"github.com/MKhiriev/wishkeeper/internal/mock"
	"github.com/MKhiriev/wishkeeper/internal/store"
	"github.com/MKhiriev/wishkeeper/internal/validators"
	"github.com/MKhiriev/wishkeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)

	svc := NewAuthService(users, validators.NewRequestValidator(), config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "wishkeeper-test",
		TokenDuration: time.Hour,
	}, logger.Nop())

	return svc, users
}

func TestRegisterUser_HashesPasswordAndNormalizesEmail(t *testing.T) {
	svc, users := newTestAuthService(t)
	ctx := context.Background()

	var persisted models.User
	users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User) (models.User, error) {
			persisted = user
			user.UserID = 1
			return user, nil
		})

	registered, err := svc.RegisterUser(ctx, models.RegisterRequest{
		Email:    "  John@Example.COM ",
		Password: "correct horse",
		Name:     "John",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)

	assert.Equal(t, "john@example.com", persisted.Email)
	assert.NotEqual(t, "correct horse", persisted.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted.PasswordHash), []byte("correct horse")))
}

func TestRegisterUser_InvalidRequest(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Email:    "not-an-email",
		Password: "correct horse",
		Name:     "John",
	})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidEmail)
}

func TestRegisterUser_EmailTaken(t *testing.T) {
	svc, users := newTestAuthService(t)
	ctx := context.Background()

	users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{
		Email:    "john@example.com",
		Password: "correct horse",
		Name:     "John",
	})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	svc, users := newTestAuthService(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	users.EXPECT().FindUserByEmail(ctx, "john@example.com").Return(models.User{
		UserID:       1,
		Email:        "john@example.com",
		PasswordHash: string(hash),
	}, nil)

	user, err := svc.Login(ctx, models.LoginRequest{Email: "John@Example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, users := newTestAuthService(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	users.EXPECT().FindUserByEmail(ctx, "john@example.com").Return(models.User{
		UserID:       1,
		PasswordHash: string(hash),
	}, nil)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "john@example.com", Password: "wrong horse"})
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

// Unknown email and wrong password must be indistinguishable.
func TestLogin_UnknownEmail(t *testing.T) {
	svc, users := newTestAuthService(t)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, "ghost@example.com").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestCreateToken_ParseToken_RoundTrip(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestParseToken_WrongKey(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	other := NewAuthService(nil, validators.NewRequestValidator(), config.App{
		TokenSignKey:  "a-different-key",
		TokenIssuer:   "wishkeeper-test",
		TokenDuration: time.Hour,
	}, logger.Nop())

	token, err := other.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
