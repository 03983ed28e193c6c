package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/SergeyBogomolovv/marketplace-orders/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-orders/pkg/trm"
	"github.com/SergeyBogomolovv/marketplace-orders/pkg/utils"

	"golang.org/x/sync/errgroup"
)

type OrderRepo interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	CountOrders(ctx context.Context, filter entities.OrderFilter) (int, error)
	UpdateOrder(ctx context.Context, orderID string, patch entities.OrderPatch) error
	DeleteOrder(ctx context.Context, orderID string) error
	DetachCustomerOrder(ctx context.Context, orderID string) error

	MarkNotificationOpened(ctx context.Context, orderID string) error
	DeleteNotifications(ctx context.Context, orderID string) error

	GetShopBySlug(ctx context.Context, slug string) (entities.Shop, error)
	GetShopByVendor(ctx context.Context, vendorID string) (entities.Shop, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type ListQuery struct {
	Page   int
	Limit  int
	Search string
	Shop   string
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	auth      Authorizer
	repo      OrderRepo
	cache     Cache
	retry     utils.RetryConfig
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, auth Authorizer, repo OrderRepo, cache Cache) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		auth:      auth,
		repo:      repo,
		cache:     cache,
		retry: utils.RetryConfig{
			InitialDelay: 100 * time.Millisecond,
			MaxAttempts:  5,
			Multiplier:   2,
		},
	}
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal order", slog.String("order_id", orderID), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	if err := utils.Retry(s.retry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	s.store(order)
	return order, nil
}

func (s *orderService) store(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", order.ID), slog.Any("error", err))
		return
	}
	s.cache.Set(order.ID, data)
}

// OpenOrder returns an order for an admin and flips its notification to
// opened.
func (s *orderService) OpenOrder(ctx context.Context, identity entities.Identity, orderID string) (entities.Order, error) {
	if _, err := s.auth.Authorize(identity, entities.RequireAdmin); err != nil {
		return entities.Order{}, err
	}

	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	if err := s.repo.MarkNotificationOpened(ctx, orderID); err != nil {
		return entities.Order{}, fmt.Errorf("failed to open notification: %w", err)
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, identity entities.Identity, q ListQuery) (entities.OrderPage, error) {
	if _, err := s.auth.Authorize(identity, entities.RequireAdmin); err != nil {
		return entities.OrderPage{}, err
	}

	var shopID string
	if q.Shop != "" {
		shop, err := s.repo.GetShopBySlug(ctx, q.Shop)
		if err != nil {
			return entities.OrderPage{}, err
		}
		shopID = shop.ID
	}

	return s.page(ctx, q, shopID)
}

// ListVendorOrders lists orders containing items of the caller's shop.
func (s *orderService) ListVendorOrders(ctx context.Context, identity entities.Identity, q ListQuery) (entities.OrderPage, error) {
	identity, err := s.auth.Authorize(identity, entities.RequireVendor)
	if err != nil {
		return entities.OrderPage{}, err
	}

	shop, err := s.repo.GetShopByVendor(ctx, identity.SubjectID)
	if err != nil {
		return entities.OrderPage{}, err
	}

	return s.page(ctx, q, shop.ID)
}

func (s *orderService) page(ctx context.Context, q ListQuery, shopID string) (entities.OrderPage, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Search != "" {
		if _, err := regexp.Compile(q.Search); err != nil {
			return entities.OrderPage{}, fmt.Errorf("%w: %w", entities.ErrInvalidSearch, err)
		}
	}

	filter := entities.OrderFilter{
		Search: q.Search,
		ShopID: shopID,
		Limit:  q.Limit,
		Offset: (q.Page - 1) * q.Limit,
	}

	var (
		orders []entities.Order
		total  int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.repo.ListOrders(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.CountOrders(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return entities.OrderPage{}, err
	}

	return entities.OrderPage{
		Orders:      orders,
		Total:       total,
		Pages:       (total + q.Limit - 1) / q.Limit,
		CurrentPage: q.Page,
	}, nil
}

func (s *orderService) UpdateOrder(ctx context.Context, identity entities.Identity, orderID string, patch entities.OrderPatch) (entities.Order, error) {
	if _, err := s.auth.Authorize(identity, entities.RequireAdmin); err != nil {
		return entities.Order{}, err
	}

	if !patch.Empty() {
		if err := s.repo.UpdateOrder(ctx, orderID, patch); err != nil {
			return entities.Order{}, err
		}
		s.cache.Delete(orderID)
	}

	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	s.logger.Debug("order updated", slog.String("order_id", orderID))
	return order, nil
}

// DeleteOrder removes the order together with its notification and its link
// in the customer's order history.
func (s *orderService) DeleteOrder(ctx context.Context, identity entities.Identity, orderID string) error {
	if _, err := s.auth.Authorize(identity, entities.RequireAdmin); err != nil {
		return err
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.DeleteNotifications(ctx, orderID); err != nil {
			return err
		}
		if err := s.repo.DetachCustomerOrder(ctx, orderID); err != nil {
			return err
		}
		return s.repo.DeleteOrder(ctx, orderID)
	})
	if err != nil {
		return err
	}

	s.cache.Delete(orderID)
	s.logger.Debug("order deleted", slog.String("order_id", orderID))
	return nil
}

// WarmUpCache loads the latest count orders into the cache.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.ListOrders(ctx, entities.OrderFilter{Limit: count})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("failed to load orders: %w", err)
	}

	for _, order := range orders {
		s.store(order)
	}
	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}
