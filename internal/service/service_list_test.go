// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/wishkeeper/internal/logger"
	"github.com/MKhiriev/wishkeeper/internal/mock"
	"github.com/MKhiriev/wishkeeper/internal/store"
	"github.com/MKhiriev/wishkeeper/internal/utils"
	"github.com/MKhiriev/wishkeeper/internal/validators"
	"github.com/MKhiriev/wishkeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type listServiceMocks struct {
	lists  *mock.MockListRepository
	items  *mock.MockItemRepository
	claims *mock.MockClaimRepository
	users  *mock.MockUserRepository
}

func newTestListService(t *testing.T) (ListService, listServiceMocks) {
	ctrl := gomock.NewController(t)
	mocks := listServiceMocks{
		lists:  mock.NewMockListRepository(ctrl),
		items:  mock.NewMockItemRepository(ctrl),
		claims: mock.NewMockClaimRepository(ctrl),
		users:  mock.NewMockUserRepository(ctrl),
	}

	svc := &listService{
		listRepository:  mocks.lists,
		itemRepository:  mocks.items,
		claimRepository: mocks.claims,
		userRepository:  mocks.users,
		validator:       validators.NewRequestValidator(),
		logger:          logger.Nop(),
	}

	return svc, mocks
}

func TestCreateList_GeneratesShareID(t *testing.T) {
	svc, mocks := newTestListService(t)
	ctx := context.Background()

	var persisted models.List
	mocks.lists.EXPECT().CreateList(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, list models.List) (models.List, error) {
			persisted = list
			list.ListID = 1
			return list, nil
		})

	created, err := svc.CreateList(ctx, 42, models.CreateListRequest{Title: "Birthday", IsPublic: true})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ListID)
	assert.Equal(t, int64(42), persisted.OwnerID)
	assert.Len(t, persisted.ShareID, utils.ShareIDLength)
}

// A share-id collision is retried with a fresh id.
func TestCreateList_ShareIDCollisionRetried(t *testing.T) {
	svc, mocks := newTestListService(t)
	ctx := context.Background()

	var firstID, secondID string
	gomock.InOrder(
		mocks.lists.EXPECT().CreateList(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, list models.List) (models.List, error) {
				firstID = list.ShareID
				return models.List{}, store.ErrShareIDTaken
			}),
		mocks.lists.EXPECT().CreateList(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, list models.List) (models.List, error) {
				secondID = list.ShareID
				list.ListID = 1
				return list, nil
			}),
	)

	created, err := svc.CreateList(ctx, 42, models.CreateListRequest{Title: "Birthday"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ListID)
	assert.NotEqual(t, firstID, secondID)
}

func TestCreateList_InvalidRequest(t *testing.T) {
	svc, _ := newTestListService(t)

	_, err := svc.CreateList(context.Background(), 42, models.CreateListRequest{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyTitle)
}

func TestGetList_JoinsItems(t *testing.T) {
	svc, mocks := newTestListService(t)
	ctx := context.Background()

	mocks.lists.EXPECT().FindOwnedList(ctx, int64(7), int64(42)).Return(models.List{ListID: 7, OwnerID: 42}, nil)
	mocks.items.EXPECT().FindItemsByListID(ctx, int64(7)).Return([]models.Item{{ItemID: 10}, {ItemID: 11}}, nil)

	view, err := svc.GetList(ctx, 7, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(7), view.ListID)
	assert.Len(t, view.Items, 2)
}

func TestGetList_NotOwned(t *testing.T) {
	svc, mocks := newTestListService(t)
	ctx := context.Background()

	mocks.lists.EXPECT().FindOwnedList(ctx, int64(7), int64(99)).Return(models.List{}, store.ErrListNotFound)

	_, err := svc.GetList(ctx, 7, 99)
	assert.ErrorIs(t, err, store.ErrListNotFound)
}

// The cascade must run children first: claims, then items, then the list.
func TestDeleteList_CascadeOrder(t *testing.T) {
	svc, mocks := newTestListService(t)
	ctx := context.Background()

	mocks.lists.EXPECT().FindOwnedList(ctx, int64(7), int64(42)).Return(models.List{ListID: 7, OwnerID: 42}, nil)
	mocks.items.EXPECT().FindItemsByListID(ctx, int64(7)).Return([]models.Item{{ItemID: 10}, {ItemID: 11}}, nil)

	gomock.InOrder(
		mocks.claims.EXPECT().DeleteClaimsByItemIDs(ctx, []int64{10, 11}).Return(int64(1), nil),
		mocks.items.EXPECT().DeleteItemsByListIDs(ctx, []int64{7}).Return(int64(2), nil),
		mocks.lists.EXPECT().DeleteList(ctx, int64(7)).Return(nil),
	)

	assert.NoError(t, svc.DeleteList(ctx, 7, 42))
}

// A non-owner delete stops at the ownership check; nothing is touched.
func TestDeleteList_NotOwned(t *testing.T) {
	svc, mocks := newTestListService(t)
	ctx := context.Background()

	mocks.lists.EXPECT().FindOwnedList(ctx, int64(7), int64(99)).Return(models.List{}, store.ErrListNotFound)

	err := svc.DeleteList(ctx, 7, 99)
	assert.ErrorIs(t, err, store.ErrListNotFound)
}

func TestGetPublicList_MapsClaims(t *testing.T) {
	svc, mocks := newTestListService(t)
	ctx := context.Background()

	mocks.lists.EXPECT().FindListByShareID(ctx, "a1b2c3d4e5").Return(models.List{
		ListID: 7, OwnerID: 42, Title: "Birthday", IsPublic: true, ShareID: "a1b2c3d4e5",
	}, nil)
	mocks.users.EXPECT().FindUserByID(ctx, int64(42)).Return(models.User{UserID: 42, Name: "John"}, nil)
	mocks.items.EXPECT().FindItemsByListID(ctx, int64(7)).Return([]models.Item{{ItemID: 10}, {ItemID: 11}}, nil)
	mocks.claims.EXPECT().FindClaimsByItemIDs(ctx, []int64{10, 11}).Return([]models.Claim{
		{ClaimID: 1, ItemID: 10, ClaimerName: "Aunt May", SecretToken: "never-shown"},
	}, nil)

	view, err := svc.GetPublicList(ctx, "a1b2c3d4e5")
	require.NoError(t, err)

	assert.Equal(t, "Birthday", view.Title)
	assert.Equal(t, "John", view.OwnerName)
	require.Len(t, view.Items, 2)

	assert.True(t, view.Items[0].Claimed)
	assert.Equal(t, "Aunt May", view.Items[0].ClaimerName)
	assert.False(t, view.Items[1].Claimed)
	assert.Empty(t, view.Items[1].ClaimerName)
}

// A private list is indistinguishable from an absent one.
func TestGetPublicList_PrivateList(t *testing.T) {
	svc, mocks := newTestListService(t)
	ctx := context.Background()

	mocks.lists.EXPECT().FindListByShareID(ctx, "a1b2c3d4e5").Return(models.List{
		ListID: 7, IsPublic: false, ShareID: "a1b2c3d4e5",
	}, nil)

	_, err := svc.GetPublicList(ctx, "a1b2c3d4e5")
	assert.ErrorIs(t, err, store.ErrListNotFound)
}
