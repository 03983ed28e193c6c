package service

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/marketplace-orders/internal/entities"
)

type StockStore interface {
	// DecrementStock moves qty from available to sold only when at least qty
	// is available. It reports whether the decrement happened.
	DecrementStock(ctx context.Context, productID string, qty int) (bool, error)
}

type inventoryAdjuster struct {
	store  StockStore
	strict bool
}

func newInventoryAdjuster(store StockStore, strict bool) *inventoryAdjuster {
	return &inventoryAdjuster{store: store, strict: strict}
}

// Reserve decrements stock for every line item and marks the ones that could
// not be covered as backordered. Their stock is left untouched. In strict mode
// the first shortage aborts with ErrInsufficientStock.
func (a *inventoryAdjuster) Reserve(ctx context.Context, items []entities.LineItem) (shortages int, err error) {
	for i := range items {
		ok, err := a.store.DecrementStock(ctx, items[i].ProductID, items[i].Quantity)
		if err != nil {
			return shortages, fmt.Errorf("failed to reserve product %s: %w", items[i].ProductID, err)
		}
		if ok {
			continue
		}
		if a.strict {
			return shortages, fmt.Errorf("%w: product %s", entities.ErrInsufficientStock, items[i].ProductID)
		}
		items[i].Backordered = true
		shortages++
	}
	return shortages, nil
}
