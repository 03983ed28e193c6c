package service

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/marketplace-orders/internal/entities"

	"github.com/shopspring/decimal"
)

type ItemRequest struct {
	ProductID string
	Quantity  int
}

type OrderStore interface {
	CreateOrder(ctx context.Context, order entities.Order) error
}

// orderAssembler turns requested items into priced line items and persists
// the resulting order.
type orderAssembler struct {
	store OrderStore
}

func newOrderAssembler(store OrderStore) *orderAssembler {
	return &orderAssembler{store: store}
}

// Lines prices every requested item from the product snapshot. A product
// missing from products is priced at zero.
func (a *orderAssembler) Lines(items []ItemRequest, products []entities.Product) ([]entities.LineItem, decimal.Decimal) {
	byID := make(map[string]entities.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	lines := make([]entities.LineItem, 0, len(items))
	subtotal := decimal.Zero
	for _, it := range items {
		line := entities.LineItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     decimal.Zero,
		}
		if p, ok := byID[it.ProductID]; ok {
			line.Name = p.Name
			line.SKU = p.SKU
			line.Price = p.PriceSale
			line.ShopID = p.ShopID
			line.ImageURL = p.Cover()
		}
		line.Total = line.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		subtotal = subtotal.Add(line.Total)
		lines = append(lines, line)
	}
	return lines, subtotal
}

// Assemble builds a pending order. The total is subtotal minus discount,
// floored at zero, plus shipping.
func (a *orderAssembler) Assemble(items []ItemRequest, products []entities.Product, discount, shipping decimal.Decimal) entities.Order {
	lines, subtotal := a.Lines(items, products)

	net := subtotal.Sub(discount)
	if net.IsNegative() {
		net = decimal.Zero
	}

	return entities.Order{
		Items:    lines,
		Subtotal: subtotal,
		Discount: discount,
		Shipping: shipping,
		Total:    net.Add(shipping),
		Status:   entities.StatusPending,
	}
}

func (a *orderAssembler) Persist(ctx context.Context, order entities.Order) error {
	if err := a.store.CreateOrder(ctx, order); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}
