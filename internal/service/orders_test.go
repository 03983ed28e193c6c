package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/marketplace-orders/internal/auth"
	"github.com/SergeyBogomolovv/marketplace-orders/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-orders/internal/service"
	mocks "github.com/SergeyBogomolovv/marketplace-orders/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/marketplace-orders/pkg/trm/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var admin = entities.Identity{SubjectID: "a1", Email: "admin@example.com", Role: entities.RoleAdmin, Verified: true}

func TestOrderService_GetOrderByID(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache)

	validOrder := entities.Order{ID: "123"}
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior MockBehavior
		wantErr      error
		want         entities.Order
	}{
		{
			name:    "success from cache",
			orderID: "123",
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("123").Return(validData, true).Once()
			},
			want: validOrder,
		},
		{
			name:    "cache hit but unmarshal fails",
			orderID: "123",
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("123").Return([]byte("broken"), true).Once()
			},
			wantErr: entities.ErrInvalidOrder,
		},
		{
			name:    "success from repo and set to cache",
			orderID: "123",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("123").Return(nil, false).Once()
				orderRepo.EXPECT().GetOrderByID(mock.Anything, "123").Return(validOrder, nil).Once()
				cache.EXPECT().Set("123", validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name:    "not found in repo",
			orderID: "not-exist",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("not-exist").Return(nil, false).Once()
				orderRepo.EXPECT().GetOrderByID(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "second attempt from repo",
			orderID: "123",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("123").Return(nil, false).Once()
				orderRepo.EXPECT().GetOrderByID(mock.Anything, "123").
					Return(entities.Order{}, errors.New("some error")).Once()
				orderRepo.EXPECT().GetOrderByID(mock.Anything, "123").
					Return(validOrder, nil).Once()
				cache.EXPECT().Set("123", validData).Return().Once()
			},
			want: validOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(orderRepo, cache)

			svc := service.NewOrderService(logger, tx, passThrough(t), orderRepo, cache)

			got, err := svc.GetOrderByID(context.Background(), tc.orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo)

	orders := []entities.Order{{ID: "1"}, {ID: "2"}}

	testCases := []struct {
		name         string
		query        service.ListQuery
		mockBehavior MockBehavior
		want         entities.OrderPage
		wantErr      error
	}{
		{
			name:  "defaults",
			query: service.ListQuery{},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				filter := entities.OrderFilter{Limit: 10, Offset: 0}
				orderRepo.EXPECT().ListOrders(mock.Anything, filter).Return(orders, nil).Once()
				orderRepo.EXPECT().CountOrders(mock.Anything, filter).Return(2, nil).Once()
			},
			want: entities.OrderPage{Orders: orders, Total: 2, Pages: 1, CurrentPage: 1},
		},
		{
			name:  "shop and search on third page",
			query: service.ListQuery{Page: 3, Limit: 2, Search: "^ja", Shop: "mugs"},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().GetShopBySlug(mock.Anything, "mugs").
					Return(entities.Shop{ID: "S1", Slug: "mugs"}, nil).Once()
				filter := entities.OrderFilter{Search: "^ja", ShopID: "S1", Limit: 2, Offset: 4}
				orderRepo.EXPECT().ListOrders(mock.Anything, filter).Return(orders, nil).Once()
				orderRepo.EXPECT().CountOrders(mock.Anything, filter).Return(7, nil).Once()
			},
			want: entities.OrderPage{Orders: orders, Total: 7, Pages: 4, CurrentPage: 3},
		},
		{
			name:  "unknown shop",
			query: service.ListQuery{Shop: "nope"},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().GetShopBySlug(mock.Anything, "nope").
					Return(entities.Shop{}, entities.ErrShopNotFound).Once()
			},
			wantErr: entities.ErrShopNotFound,
		},
		{
			name:         "invalid search",
			query:        service.ListQuery{Search: "(["},
			mockBehavior: func(*mocks.MockOrderRepo) {},
			wantErr:      entities.ErrInvalidSearch,
		},
		{
			name:  "count fails",
			query: service.ListQuery{},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().ListOrders(mock.Anything, mock.Anything).Return(orders, nil).Maybe()
				orderRepo.EXPECT().CountOrders(mock.Anything, mock.Anything).Return(0, errors.New("db error")).Once()
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			tc.mockBehavior(orderRepo)

			svc := service.NewOrderService(logger, txMocks.NewMockManager(t), passThrough(t), orderRepo, mocks.NewMockCache(t))

			got, err := svc.ListOrders(context.Background(), admin, tc.query)
			if tc.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tc.wantErr, entities.ErrShopNotFound) || errors.Is(tc.wantErr, entities.ErrInvalidSearch) {
					assert.ErrorIs(t, err, tc.wantErr)
				} else {
					assert.EqualError(t, err, tc.wantErr.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_ListVendorOrders(t *testing.T) {
	vendor := entities.Identity{SubjectID: "v1", Role: entities.RoleVendor}

	t.Run("scoped to vendor shop", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		orderRepo.EXPECT().GetShopByVendor(mock.Anything, "v1").Return(entities.Shop{ID: "S9"}, nil).Once()
		filter := entities.OrderFilter{ShopID: "S9", Limit: 5, Offset: 5}
		orderRepo.EXPECT().ListOrders(mock.Anything, filter).Return([]entities.Order{}, nil).Once()
		orderRepo.EXPECT().CountOrders(mock.Anything, filter).Return(6, nil).Once()

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		svc := service.NewOrderService(logger, txMocks.NewMockManager(t), passThrough(t), orderRepo, mocks.NewMockCache(t))

		got, err := svc.ListVendorOrders(context.Background(), vendor, service.ListQuery{Page: 2, Limit: 5})
		require.NoError(t, err)
		assert.Equal(t, 6, got.Total)
		assert.Equal(t, 2, got.Pages)
		assert.Equal(t, 2, got.CurrentPage)
	})

	t.Run("no shop", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		orderRepo.EXPECT().GetShopByVendor(mock.Anything, "v1").Return(entities.Shop{}, entities.ErrShopNotFound).Once()

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		svc := service.NewOrderService(logger, txMocks.NewMockManager(t), passThrough(t), orderRepo, mocks.NewMockCache(t))

		_, err := svc.ListVendorOrders(context.Background(), vendor, service.ListQuery{})
		assert.ErrorIs(t, err, entities.ErrShopNotFound)
	})

	t.Run("wrong role", func(t *testing.T) {
		authorizer := mocks.NewMockAuthorizer(t)
		authorizer.EXPECT().Authorize(admin, entities.RequireVendor).Return(entities.Identity{}, auth.ErrForbidden).Once()

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		svc := service.NewOrderService(logger, txMocks.NewMockManager(t), authorizer, mocks.NewMockOrderRepo(t), mocks.NewMockCache(t))

		_, err := svc.ListVendorOrders(context.Background(), admin, service.ListQuery{})
		assert.ErrorIs(t, err, auth.ErrForbidden)
	})
}

func TestOrderService_OpenOrder(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	orderRepo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(entities.Order{ID: "o1"}, nil).Once()
	orderRepo.EXPECT().MarkNotificationOpened(mock.Anything, "o1").Return(nil).Once()
	orderRepo.EXPECT().GetOrderByID(mock.Anything, "missing").Return(entities.Order{}, entities.ErrOrderNotFound).Once()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewOrderService(logger, txMocks.NewMockManager(t), passThrough(t), orderRepo, mocks.NewMockCache(t))

	got, err := svc.OpenOrder(context.Background(), admin, "o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", got.ID)

	_, err = svc.OpenOrder(context.Background(), admin, "missing")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestOrderService_UpdateOrder(t *testing.T) {
	status := entities.StatusDelivered
	patch := entities.OrderPatch{Status: &status}

	testCases := []struct {
		name         string
		patch        entities.OrderPatch
		mockBehavior func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache)
		wantErr      error
	}{
		{
			name:  "OK",
			patch: patch,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				orderRepo.EXPECT().UpdateOrder(mock.Anything, "o1", patch).Return(nil).Once()
				cache.EXPECT().Delete("o1").Return().Once()
				orderRepo.EXPECT().GetOrderByID(mock.Anything, "o1").
					Return(entities.Order{ID: "o1", Status: status}, nil).Once()
			},
		},
		{
			name:  "empty patch only reads",
			patch: entities.OrderPatch{},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, _ *mocks.MockCache) {
				orderRepo.EXPECT().GetOrderByID(mock.Anything, "o1").
					Return(entities.Order{ID: "o1", Status: status}, nil).Once()
			},
		},
		{
			name:  "not found",
			patch: patch,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, _ *mocks.MockCache) {
				orderRepo.EXPECT().UpdateOrder(mock.Anything, "o1", patch).Return(entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)
			tc.mockBehavior(orderRepo, cache)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			svc := service.NewOrderService(logger, txMocks.NewMockManager(t), passThrough(t), orderRepo, cache)

			got, err := svc.UpdateOrder(context.Background(), admin, "o1", tc.patch)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, status, got.Status)
		})
	}
}

func TestOrderService_DeleteOrder(t *testing.T) {
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		mockBehavior func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache)
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				orderRepo.EXPECT().DeleteNotifications(mock.Anything, "o1").Return(nil).Once()
				orderRepo.EXPECT().DetachCustomerOrder(mock.Anything, "o1").Return(nil).Once()
				orderRepo.EXPECT().DeleteOrder(mock.Anything, "o1").Return(nil).Once()
				cache.EXPECT().Delete("o1").Return().Once()
			},
		},
		{
			name: "not found",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, _ *mocks.MockCache) {
				orderRepo.EXPECT().DeleteNotifications(mock.Anything, "o1").Return(nil).Once()
				orderRepo.EXPECT().DetachCustomerOrder(mock.Anything, "o1").Return(nil).Once()
				orderRepo.EXPECT().DeleteOrder(mock.Anything, "o1").Return(entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name: "notification cleanup fails",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, _ *mocks.MockCache) {
				orderRepo.EXPECT().DeleteNotifications(mock.Anything, "o1").Return(dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					})

			tc.mockBehavior(orderRepo, cache)

			svc := service.NewOrderService(logger, tx, passThrough(t), orderRepo, cache)

			err := svc.DeleteOrder(context.Background(), admin, "o1")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
