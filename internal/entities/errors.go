package entities

import "errors"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidOrder     = errors.New("invalid order data")
	ErrEmptyOrder       = errors.New("order has no items")
	ErrInvalidQuantity  = errors.New("item quantity must be greater than zero")
	ErrInvalidSearch    = errors.New("invalid search pattern")
	ErrInvalidAmount    = errors.New("shipping and conversion rate must not be negative")
	ErrOrderNoExhausted = errors.New("failed to allocate unique order number")
	ErrOrderNoTaken     = errors.New("order number already taken")

	ErrInsufficientStock = errors.New("insufficient stock")

	ErrCouponNotFound        = errors.New("coupon not found")
	ErrCouponExpired         = errors.New("coupon is expired")
	ErrCouponAlreadyRedeemed = errors.New("coupon already redeemed by customer")

	ErrShopNotFound    = errors.New("shop not found")
	ErrAccountNotFound = errors.New("account not found")
)
