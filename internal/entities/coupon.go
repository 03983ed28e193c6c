package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type CouponKind string

const (
	CouponPercent CouponKind = "percent"
	CouponFixed   CouponKind = "fixed"
)

type Coupon struct {
	Code      string
	Discount  decimal.Decimal
	Kind      CouponKind
	ExpiresAt time.Time
	UsedBy    []string
}

// Expired reports whether the coupon is unusable at now. The expiration
// instant itself is already expired.
func (c Coupon) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

var hundred = decimal.NewFromInt(100)

// DiscountFor prices the coupon against total. The result is rounded to minor
// currency units and never exceeds total.
func (c Coupon) DiscountFor(total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}

	var discount decimal.Decimal
	switch c.Kind {
	case CouponPercent:
		discount = total.Mul(c.Discount).Div(hundred).Round(2)
	default:
		discount = c.Discount
	}

	if discount.IsNegative() {
		return decimal.Zero
	}
	if discount.GreaterThan(total) {
		return total
	}
	return discount
}

func (c Coupon) UsedByCustomer(email string) bool {
	for _, e := range c.UsedBy {
		if e == email {
			return true
		}
	}
	return false
}
