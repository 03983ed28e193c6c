package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/marketplace-orders/internal/config"
	"github.com/SergeyBogomolovv/marketplace-orders/internal/entities"

	"github.com/segmentio/kafka-go"
)

const OrderPlacedType = "order.placed"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderPlaced is the event consumed by the mailer.
type OrderPlaced struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"orderId"`
	OrderNo    string    `json:"orderNo"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Total      string    `json:"total"`
	Currency   string    `json:"currency"`
	TotalItems int       `json:"totalItems"`
	Products   []string  `json:"products"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewOrderPlaced(o entities.Order) OrderPlaced {
	products := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		products = append(products, it.ProductID)
	}
	return OrderPlaced{
		Type:       OrderPlacedType,
		OrderID:    o.ID,
		OrderNo:    o.OrderNo,
		Email:      o.Customer.Email,
		FirstName:  o.Customer.FirstName,
		LastName:   o.Customer.LastName,
		Total:      o.Total.StringFixed(2),
		Currency:   o.Currency,
		TotalItems: o.TotalItems,
		Products:   products,
		CreatedAt:  o.CreatedAt,
	}
}

type publisher struct {
	logger *slog.Logger
	writer messageWriter
}

func NewPublisher(logger *slog.Logger, cfg config.Kafka) *publisher {
	return newPublisher(logger, &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.EventsTopic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           cfg.BatchTimeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	})
}

func newPublisher(logger *slog.Logger, w messageWriter) *publisher {
	return &publisher{
		logger: logger.With(slog.String("component", "events")),
		writer: w,
	}
}

// PublishOrderPlaced writes the event keyed by order id so events of one
// order stay on one partition.
func (p *publisher) PublishOrderPlaced(ctx context.Context, order entities.Order) error {
	value, err := json.Marshal(NewOrderPlaced(order))
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.ID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(OrderPlacedType)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	p.logger.Debug("event published", slog.String("type", OrderPlacedType), slog.String("order_no", order.OrderNo))
	return nil
}

func (p *publisher) Close() error {
	return p.writer.Close()
}
