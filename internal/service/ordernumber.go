package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/SergeyBogomolovv/marketplace-orders/internal/entities"
)

// OrderNumberGenerator produces human-readable order numbers. Values need not
// be unique; uniqueness is checked against the store.
type OrderNumberGenerator interface {
	Next() string
}

type OrderNumberFunc func() string

func (f OrderNumberFunc) Next() string { return f() }

const orderNoLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandomOrderNumber returns one uppercase letter followed by six digits.
func RandomOrderNumber() string {
	b := make([]byte, 7)
	b[0] = orderNoLetters[rand.IntN(len(orderNoLetters))]
	for i := 1; i < len(b); i++ {
		b[i] = byte('0' + rand.IntN(10))
	}
	return string(b)
}

type OrderNoChecker interface {
	OrderNoExists(ctx context.Context, orderNo string) (bool, error)
}

type orderNumbers struct {
	gen      OrderNumberGenerator
	store    OrderNoChecker
	attempts int
}

// assign draws numbers until persist accepts one. A number seen as taken by
// the pre-check or rejected by persist with ErrOrderNoTaken costs an attempt.
func (n *orderNumbers) assign(ctx context.Context, persist func(orderNo string) error) (string, error) {
	for range n.attempts {
		orderNo := n.gen.Next()
		exists, err := n.store.OrderNoExists(ctx, orderNo)
		if err != nil {
			return "", fmt.Errorf("failed to check order number: %w", err)
		}
		if exists {
			continue
		}

		err = persist(orderNo)
		if errors.Is(err, entities.ErrOrderNoTaken) {
			continue
		}
		if err != nil {
			return "", err
		}
		return orderNo, nil
	}
	return "", entities.ErrOrderNoExhausted
}
