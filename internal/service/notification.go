package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/marketplace-orders/internal/entities"

	"github.com/google/uuid"
)

type NotificationStore interface {
	CreateNotification(ctx context.Context, n entities.Notification) error
}

type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, order entities.Order) error
}

type notificationEmitter struct {
	logger    *slog.Logger
	store     NotificationStore
	publisher EventPublisher
	now       func() time.Time
}

// NewNotificationEmitter builds the new-order emitter. publisher may be nil.
func NewNotificationEmitter(logger *slog.Logger, store NotificationStore, publisher EventPublisher) *notificationEmitter {
	return &notificationEmitter{
		logger:    logger.With(slog.String("component", "notification")),
		store:     store,
		publisher: publisher,
		now:       time.Now,
	}
}

func notificationTitle(c entities.Customer) string {
	return fmt.Sprintf("%s placed an order from %s.", c.FullName(), c.City)
}

// Emit records the new-order notification and publishes the order event.
// Both are attempted; their errors are joined.
func (e *notificationEmitter) Emit(ctx context.Context, order entities.Order, customer entities.Customer) error {
	n := entities.Notification{
		ID:            uuid.NewString(),
		OrderID:       order.ID,
		Opened:        false,
		Title:         notificationTitle(customer),
		PaymentMethod: order.PaymentMethod,
		City:          customer.City,
		Cover:         customer.CoverURL,
		CreatedAt:     e.now().UTC(),
	}

	var errs []error
	if err := e.store.CreateNotification(ctx, n); err != nil {
		errs = append(errs, fmt.Errorf("failed to create notification: %w", err))
	} else {
		e.logger.Debug("notification created", slog.String("order_id", order.ID))
	}

	if e.publisher != nil {
		if err := e.publisher.PublishOrderPlaced(ctx, order); err != nil {
			errs = append(errs, fmt.Errorf("failed to publish order event: %w", err))
		}
	}

	return errors.Join(errs...)
}
