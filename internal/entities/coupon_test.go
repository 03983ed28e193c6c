package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCoupon_DiscountFor(t *testing.T) {
	testCases := []struct {
		name   string
		coupon Coupon
		total  decimal.Decimal
		want   decimal.Decimal
	}{
		{
			name:   "percent",
			coupon: Coupon{Kind: CouponPercent, Discount: decimal.NewFromInt(10)},
			total:  decimal.NewFromInt(100),
			want:   decimal.NewFromInt(10),
		},
		{
			name:   "percent rounds to cents",
			coupon: Coupon{Kind: CouponPercent, Discount: decimal.NewFromInt(15)},
			total:  decimal.RequireFromString("33.33"),
			want:   decimal.RequireFromString("5"),
		},
		{
			name:   "percent over hundred is capped",
			coupon: Coupon{Kind: CouponPercent, Discount: decimal.NewFromInt(150)},
			total:  decimal.NewFromInt(40),
			want:   decimal.NewFromInt(40),
		},
		{
			name:   "fixed",
			coupon: Coupon{Kind: CouponFixed, Discount: decimal.NewFromInt(15)},
			total:  decimal.NewFromInt(100),
			want:   decimal.NewFromInt(15),
		},
		{
			name:   "fixed larger than total is capped",
			coupon: Coupon{Kind: CouponFixed, Discount: decimal.NewFromInt(150)},
			total:  decimal.NewFromInt(100),
			want:   decimal.NewFromInt(100),
		},
		{
			name:   "zero total",
			coupon: Coupon{Kind: CouponFixed, Discount: decimal.NewFromInt(5)},
			total:  decimal.Zero,
			want:   decimal.Zero,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.coupon.DiscountFor(tc.total)
			assert.Truef(t, tc.want.Equal(got), "want %s, got %s", tc.want, got)
		})
	}
}

func TestCoupon_Expired(t *testing.T) {
	expires := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := Coupon{ExpiresAt: expires}

	assert.False(t, c.Expired(expires.Add(-time.Second)))
	assert.True(t, c.Expired(expires))
	assert.True(t, c.Expired(expires.Add(time.Second)))
}

func TestOrder_MarshalRoundTrip(t *testing.T) {
	o := Order{
		ID:       "o-1",
		OrderNo:  "A123456",
		Subtotal: decimal.NewFromInt(100),
		Items:    []LineItem{{ProductID: "p-1", Quantity: 2, Price: decimal.NewFromInt(50)}},
	}

	data, err := o.Marshal()
	assert.NoError(t, err)

	var got Order
	assert.NoError(t, got.Unmarshal(data))
	assert.Equal(t, o.ID, got.ID)
	assert.True(t, o.Subtotal.Equal(got.Subtotal))
	assert.Len(t, got.Items, 1)

	assert.ErrorIs(t, got.Unmarshal([]byte("broken")), ErrInvalidOrder)
}
