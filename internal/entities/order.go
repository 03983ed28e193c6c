package entities

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusOnTheWay  OrderStatus = "on the way"
	StatusDelivered OrderStatus = "delivered"
	StatusCanceled  OrderStatus = "canceled"
	StatusReturned  OrderStatus = "returned"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusOnTheWay, StatusDelivered, StatusCanceled, StatusReturned:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentStripe PaymentMethod = "Stripe"
	PaymentPayPal PaymentMethod = "PayPal"
	PaymentCOD    PaymentMethod = "COD"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentStripe, PaymentPayPal, PaymentCOD:
		return true
	}
	return false
}

// Customer is a point-in-time copy of the buyer's contact data. It is never
// re-read from the account after the order is created.
type Customer struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	Zip       string
	Country   string
	State     string
	CoverURL  string
}

func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

type LineItem struct {
	ProductID string
	Name      string
	SKU       string
	Quantity  int
	// Price is the unit sale price captured when the order was placed.
	Price       decimal.Decimal
	Total       decimal.Decimal
	ShopID      string
	ImageURL    string
	Backordered bool
}

type Order struct {
	ID             string
	OrderNo        string
	PaymentMethod  PaymentMethod
	PaymentID      string
	Subtotal       decimal.Decimal
	Discount       decimal.Decimal
	Shipping       decimal.Decimal
	Total          decimal.Decimal
	TotalItems     int
	Currency       string
	ConversionRate decimal.Decimal
	Status         OrderStatus
	Description    string
	Note           string
	CouponCode     string

	Customer Customer
	// CustomerAccountID is a lookup-only reference to the account that matched
	// the snapshot email at creation time. Empty for guest orders.
	CustomerAccountID string

	Items     []LineItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Backordered returns ids of products whose stock could not be reserved.
func (o *Order) Backordered() []string {
	var ids []string
	for _, it := range o.Items {
		if it.Backordered {
			ids = append(ids, it.ProductID)
		}
	}
	return ids
}

// OrderPatch is a partial admin update. Nil fields are left untouched.
type OrderPatch struct {
	Status        *OrderStatus
	Note          *string
	Description   *string
	PaymentID     *string
	PaymentMethod *PaymentMethod
	Phone         *string
	Address       *string
	City          *string
	Zip           *string
	Country       *string
	State         *string
}

func (p OrderPatch) Empty() bool {
	return p.Status == nil && p.Note == nil && p.Description == nil &&
		p.PaymentID == nil && p.PaymentMethod == nil && p.Phone == nil &&
		p.Address == nil && p.City == nil && p.Zip == nil && p.Country == nil && p.State == nil
}

type OrderFilter struct {
	Search string
	ShopID string
	Limit  int
	Offset int
}

type OrderPage struct {
	Orders      []Order
	Total       int
	Pages       int
	CurrentPage int
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(Customer{})
	gob.Register(LineItem{})
}
