package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/marketplace-orders/internal/entities"

	"github.com/shopspring/decimal"
)

type CouponStore interface {
	GetCoupon(ctx context.Context, code string) (entities.Coupon, error)
	// AddCouponRedemption atomically adds email to the coupon's consumer set
	// and reports whether it was not there before.
	AddCouponRedemption(ctx context.Context, code, email string) (bool, error)
}

// couponLedger prices coupons and records who consumed them.
type couponLedger struct {
	store     CouponStore
	singleUse bool
	now       func() time.Time
}

func newCouponLedger(store CouponStore, singleUse bool, now func() time.Time) *couponLedger {
	return &couponLedger{store: store, singleUse: singleUse, now: now}
}

// Quote returns the discount code would give for total without consuming it.
func (l *couponLedger) Quote(ctx context.Context, code string, total decimal.Decimal) (entities.Coupon, decimal.Decimal, error) {
	coupon, err := l.store.GetCoupon(ctx, code)
	if err != nil {
		return entities.Coupon{}, decimal.Zero, err
	}
	if coupon.Expired(l.now()) {
		return coupon, decimal.Zero, entities.ErrCouponExpired
	}
	return coupon, coupon.DiscountFor(total), nil
}

// Redeem prices code against total and adds email to its consumer set. With
// single-use coupons a second redemption by the same email fails.
func (l *couponLedger) Redeem(ctx context.Context, code, email string, total decimal.Decimal) (decimal.Decimal, error) {
	_, discount, err := l.Quote(ctx, code, total)
	if err != nil {
		return decimal.Zero, err
	}

	inserted, err := l.store.AddCouponRedemption(ctx, code, email)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to record coupon redemption: %w", err)
	}
	if l.singleUse && !inserted {
		return decimal.Zero, entities.ErrCouponAlreadyRedeemed
	}

	return discount, nil
}
