package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/marketplace-orders/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-orders/pkg/trm"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WorkflowRepo interface {
	CouponStore
	StockStore
	OrderStore
	OrderNoChecker
	GetProductsByIDs(ctx context.Context, ids []string) ([]entities.Product, error)
	GetAccountByEmail(ctx context.Context, email string) (entities.Account, error)
}

type Authorizer interface {
	Authorize(identity entities.Identity, required entities.RequiredRole) (entities.Identity, error)
}

type Emitter interface {
	Emit(ctx context.Context, order entities.Order, customer entities.Customer) error
}

type WorkflowOptions struct {
	NumberAttempts   int
	SingleUseCoupons bool
	StrictStock      bool
	// OrderNumbers defaults to RandomOrderNumber.
	OrderNumbers OrderNumberGenerator
}

const emitTimeout = 5 * time.Second

type workflowState string

const (
	stateValidating workflowState = "validating"
	statePricing    workflowState = "pricing"
	stateAdjusting  workflowState = "adjusting-inventory"
	statePersisting workflowState = "persisting"
	stateNotifying  workflowState = "notifying"
	stateCompleted  workflowState = "completed"
	stateFailed     workflowState = "failed"
)

type PlaceOrderRequest struct {
	Items          []ItemRequest
	Customer       entities.Customer
	Currency       string
	ConversionRate decimal.Decimal
	PaymentMethod  entities.PaymentMethod
	PaymentID      string
	CouponCode     string
	TotalItems     int
	Shipping       decimal.Decimal
	Description    string
	Note           string
}

type PlaceOrderResult struct {
	OrderID     string
	OrderNo     string
	Total       decimal.Decimal
	Backordered []string
}

type orderWorkflow struct {
	logger    *slog.Logger
	txManager trm.Manager
	auth      Authorizer
	repo      WorkflowRepo
	emitter   Emitter

	ledger    *couponLedger
	inventory *inventoryAdjuster
	assembler *orderAssembler
	numbers   *orderNumbers

	now   func() time.Time
	newID func() string
}

func NewOrderWorkflow(
	logger *slog.Logger,
	txManager trm.Manager,
	auth Authorizer,
	repo WorkflowRepo,
	emitter Emitter,
	opts WorkflowOptions,
) *orderWorkflow {
	gen := opts.OrderNumbers
	if gen == nil {
		gen = OrderNumberFunc(RandomOrderNumber)
	}
	attempts := opts.NumberAttempts
	if attempts <= 0 {
		attempts = 1
	}

	return &orderWorkflow{
		logger:    logger.With(slog.String("service", "workflow")),
		txManager: txManager,
		auth:      auth,
		repo:      repo,
		emitter:   emitter,
		ledger:    newCouponLedger(repo, opts.SingleUseCoupons, time.Now),
		inventory: newInventoryAdjuster(repo, opts.StrictStock),
		assembler: newOrderAssembler(repo),
		numbers:   &orderNumbers{gen: gen, store: repo, attempts: attempts},
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// placement tracks one run of the workflow so failures can be attributed to
// the state they happened in.
type placement struct {
	logger *slog.Logger
	state  workflowState
	start  time.Time
}

func (p *placement) enter(state workflowState) {
	p.state = state
	p.logger.Debug("order workflow state", slog.String("state", string(state)))
}

func (p *placement) fail(err error) error {
	p.logger.Warn("order workflow failed",
		slog.String("state", string(p.state)),
		slog.String("next", string(stateFailed)),
		slog.Any("error", err),
	)
	workflowOutcomes.WithLabelValues(string(stateFailed), string(p.state)).Inc()
	workflowDuration.Observe(time.Since(p.start).Seconds())
	return err
}

// PlaceOrder runs the place-order workflow. Pricing, coupon redemption, stock
// reservation and the order insert share one transaction; the notification is
// emitted after commit and its failure does not affect the result.
func (w *orderWorkflow) PlaceOrder(ctx context.Context, identity entities.Identity, req PlaceOrderRequest) (PlaceOrderResult, error) {
	identity, err := w.auth.Authorize(identity, entities.RequireCustomer)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	p := &placement{
		logger: w.logger.With(slog.String("subject", identity.SubjectID)),
		start:  time.Now(),
	}

	p.enter(stateValidating)
	if err := validateRequest(req); err != nil {
		return PlaceOrderResult{}, p.fail(err)
	}

	var order entities.Order
	err = w.txManager.Do(ctx, func(ctx context.Context) error {
		p.enter(statePricing)
		products, err := w.repo.GetProductsByIDs(ctx, productIDs(req.Items))
		if err != nil {
			return fmt.Errorf("failed to load products: %w", err)
		}

		discount := decimal.Zero
		if req.CouponCode != "" {
			_, subtotal := w.assembler.Lines(req.Items, products)
			discount, err = w.ledger.Redeem(ctx, req.CouponCode, consumerEmail(identity, req.Customer), subtotal)
			if err != nil {
				couponRedemptions.WithLabelValues("failed").Inc()
				return err
			}
			couponRedemptions.WithLabelValues("redeemed").Inc()
		}
		order = w.assembler.Assemble(req.Items, products, discount, req.Shipping)

		p.enter(stateAdjusting)
		shortages, err := w.inventory.Reserve(ctx, order.Items)
		if err != nil {
			return err
		}
		if shortages > 0 {
			stockShortages.Add(float64(shortages))
			p.logger.Warn("order items backordered", slog.Int("count", shortages))
		}

		p.enter(statePersisting)
		w.fillOrder(&order, req)
		if err := w.linkAccount(ctx, &order); err != nil {
			return err
		}

		orderNo, err := w.numbers.assign(ctx, func(orderNo string) error {
			order.OrderNo = orderNo
			return w.assembler.Persist(ctx, order)
		})
		if err != nil {
			return err
		}
		p.logger = p.logger.With(slog.String("order_no", orderNo))
		return nil
	})
	if err != nil {
		return PlaceOrderResult{}, p.fail(err)
	}

	p.enter(stateNotifying)
	// the order is committed; a caller that goes away must not cancel its notification
	emitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), emitTimeout)
	defer cancel()
	if err := w.emitter.Emit(emitCtx, order, order.Customer); err != nil {
		p.logger.Error("failed to emit order notification", slog.String("order_id", order.ID), slog.Any("error", err))
	}

	p.enter(stateCompleted)
	workflowOutcomes.WithLabelValues(string(stateCompleted), "").Inc()
	workflowDuration.Observe(time.Since(p.start).Seconds())

	return PlaceOrderResult{
		OrderID:     order.ID,
		OrderNo:     order.OrderNo,
		Total:       order.Total,
		Backordered: order.Backordered(),
	}, nil
}

func (w *orderWorkflow) fillOrder(order *entities.Order, req PlaceOrderRequest) {
	now := w.now().UTC()

	order.ID = w.newID()
	order.PaymentMethod = req.PaymentMethod
	order.PaymentID = req.PaymentID
	order.Currency = req.Currency
	order.ConversionRate = req.ConversionRate
	if order.ConversionRate.IsZero() {
		order.ConversionRate = decimal.NewFromInt(1)
	}
	order.CouponCode = req.CouponCode
	order.Description = req.Description
	order.Note = req.Note
	order.Customer = req.Customer
	order.TotalItems = req.TotalItems
	if order.TotalItems <= 0 {
		for _, it := range req.Items {
			order.TotalItems += it.Quantity
		}
	}
	order.CreatedAt = now
	order.UpdatedAt = now
}

// linkAccount records the account whose email matches the customer snapshot.
// Guest orders keep an empty reference.
func (w *orderWorkflow) linkAccount(ctx context.Context, order *entities.Order) error {
	account, err := w.repo.GetAccountByEmail(ctx, order.Customer.Email)
	if errors.Is(err, entities.ErrAccountNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to resolve customer account: %w", err)
	}
	order.CustomerAccountID = account.ID
	return nil
}

// QuoteCoupon prices code against total without consuming it.
func (w *orderWorkflow) QuoteCoupon(ctx context.Context, code string, total decimal.Decimal) (entities.Coupon, decimal.Decimal, error) {
	return w.ledger.Quote(ctx, code, total)
}

// RedeemCoupon consumes code on behalf of the caller.
func (w *orderWorkflow) RedeemCoupon(ctx context.Context, identity entities.Identity, code string, total decimal.Decimal) (decimal.Decimal, error) {
	identity, err := w.auth.Authorize(identity, entities.RequireCustomer)
	if err != nil {
		return decimal.Zero, err
	}

	discount, err := w.ledger.Redeem(ctx, code, identity.Email, total)
	if err != nil {
		couponRedemptions.WithLabelValues("failed").Inc()
		return decimal.Zero, err
	}
	couponRedemptions.WithLabelValues("redeemed").Inc()

	w.logger.Debug("coupon redeemed", slog.String("code", code), slog.String("subject", identity.SubjectID))
	return discount, nil
}

// validateRequest rejects requests that could produce a negative total. The
// discount is capped at the subtotal, so non-negative quantities and shipping
// are enough.
func validateRequest(req PlaceOrderRequest) error {
	if len(req.Items) == 0 {
		return entities.ErrEmptyOrder
	}
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return fmt.Errorf("%w: product %s", entities.ErrInvalidQuantity, it.ProductID)
		}
	}
	if req.Shipping.IsNegative() {
		return fmt.Errorf("%w: shipping %s", entities.ErrInvalidAmount, req.Shipping)
	}
	if req.ConversionRate.IsNegative() {
		return fmt.Errorf("%w: conversion rate %s", entities.ErrInvalidAmount, req.ConversionRate)
	}
	return nil
}

func productIDs(items []ItemRequest) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	return ids
}

// consumerEmail is the identifier recorded in a coupon's consumer set. The
// authenticated email wins over the self-reported snapshot.
func consumerEmail(identity entities.Identity, customer entities.Customer) string {
	if identity.Email != "" {
		return identity.Email
	}
	return customer.Email
}
