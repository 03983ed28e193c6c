package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/marketplace-orders/internal/auth"
	"github.com/SergeyBogomolovv/marketplace-orders/internal/config"
	"github.com/SergeyBogomolovv/marketplace-orders/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-orders/internal/middleware"
	"github.com/SergeyBogomolovv/marketplace-orders/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

// AuthorizationHeader carries the caller's credential on intake messages.
const AuthorizationHeader = "authorization"

type OrderIntake interface {
	PlaceOrder(ctx context.Context, identity entities.Identity, req service.PlaceOrderRequest) (service.PlaceOrderResult, error)
}

type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	authn    middleware.Authenticator
	intake   OrderIntake
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, authn middleware.Authenticator, intake OrderIntake) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           cfg.BatchTimeout,
			AllowAutoTopicCreation: true,
		},
		validate: validator.New(),
		authn:    authn,
		intake:   intake,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		ordersInProgress.Inc()
		start := time.Now()

		res, err := h.handlePlaceOrder(ctx, m)
		orderProcessingDuration.Observe(time.Since(start).Seconds())
		ordersInProgress.Dec()

		if err != nil {
			ordersFailed.WithLabelValues(failureReason(err)).Inc()
			h.logger.Error("failed to handle message",
				slog.Any("error", err),
				slog.Int64("offset", m.Offset),
				slog.Int("partition", m.Partition),
			)

			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			ordersDLQ.Inc()
		} else {
			ordersProcessed.Inc()
			h.logger.Debug("order placed from queue", slog.String("order_no", res.OrderNo))
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handlePlaceOrder(ctx context.Context, m kafka.Message) (service.PlaceOrderResult, error) {
	identity, err := h.identity(m)
	if err != nil {
		return service.PlaceOrderResult{}, err
	}

	var body PlaceOrderRequest
	if err := json.Unmarshal(m.Value, &body); err != nil {
		return service.PlaceOrderResult{}, fmt.Errorf("failed to unmarshal order: %w: %w", entities.ErrInvalidOrder, err)
	}

	if err := h.validate.Struct(body); err != nil {
		return service.PlaceOrderResult{}, fmt.Errorf("%w: %w", entities.ErrInvalidOrder, err)
	}

	return h.intake.PlaceOrder(ctx, identity, PlaceOrderJSONToRequest(body))
}

// identity authenticates the credential in the authorization header. A
// message without one is handled anonymously and rejected by the workflow.
func (h *kafkaHandler) identity(m kafka.Message) (entities.Identity, error) {
	for _, header := range m.Headers {
		if !strings.EqualFold(header.Key, AuthorizationHeader) {
			continue
		}
		token := string(header.Value)
		if scheme, rest, ok := strings.Cut(token, " "); ok && strings.EqualFold(scheme, "Bearer") {
			token = strings.TrimSpace(rest)
		}
		return h.authn.Authenticate(token)
	}
	return entities.Identity{}, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, entities.ErrInvalidOrder),
		errors.Is(err, entities.ErrEmptyOrder),
		errors.Is(err, entities.ErrInvalidQuantity),
		errors.Is(err, entities.ErrInvalidAmount):
		return "invalid"
	case errors.Is(err, auth.ErrUnauthenticated), errors.Is(err, auth.ErrForbidden):
		return "unauthorized"
	case errors.Is(err, entities.ErrCouponNotFound),
		errors.Is(err, entities.ErrCouponExpired),
		errors.Is(err, entities.ErrCouponAlreadyRedeemed):
		return "coupon"
	case errors.Is(err, entities.ErrInsufficientStock):
		return "stock"
	}
	return "internal"
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	})
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
