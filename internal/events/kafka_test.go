package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/marketplace-orders/internal/entities"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func testOrder() entities.Order {
	return entities.Order{
		ID:         "o1",
		OrderNo:    "K123456",
		Total:      decimal.RequireFromString("99.5"),
		Currency:   "USD",
		TotalItems: 3,
		Customer:   entities.Customer{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"},
		Items: []entities.LineItem{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "p2", Quantity: 2},
		},
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPublisher_PublishOrderPlaced(t *testing.T) {
	w := &recordingWriter{}
	p := newPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)), w)

	require.NoError(t, p.PublishOrderPlaced(context.Background(), testOrder()))
	require.Len(t, w.msgs, 1)

	m := w.msgs[0]
	assert.Equal(t, "o1", string(m.Key))
	require.Len(t, m.Headers, 1)
	assert.Equal(t, OrderPlacedType, string(m.Headers[0].Value))

	var ev OrderPlaced
	require.NoError(t, json.Unmarshal(m.Value, &ev))
	assert.Equal(t, OrderPlacedType, ev.Type)
	assert.Equal(t, "K123456", ev.OrderNo)
	assert.Equal(t, "jane@example.com", ev.Email)
	assert.Equal(t, "99.50", ev.Total)
	assert.Equal(t, []string{"p1", "p2"}, ev.Products)
	assert.True(t, ev.CreatedAt.Equal(testOrder().CreatedAt))
}

func TestPublisher_WriteError(t *testing.T) {
	boom := errors.New("broker down")
	w := &recordingWriter{err: boom}
	p := newPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)), w)

	err := p.PublishOrderPlaced(context.Background(), testOrder())
	assert.ErrorIs(t, err, boom)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}
