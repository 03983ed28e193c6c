package handler

import (
	"time"

	"github.com/SergeyBogomolovv/marketplace-orders/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-orders/internal/service"

	"github.com/shopspring/decimal"
)

// Customer is the buyer snapshot stored with the order
type Customer struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	Zip       string `json:"zip,omitempty"`
	Country   string `json:"country,omitempty"`
	State     string `json:"state,omitempty"`
	Cover     string `json:"cover,omitempty" validate:"omitempty,url"`
	AccountID string `json:"_id,omitempty"`
}

// ItemRequest is one requested product
type ItemRequest struct {
	PID      string `json:"pid" validate:"required"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

// PlaceOrderRequest is the body of POST /orders
type PlaceOrderRequest struct {
	Items          []ItemRequest   `json:"items" validate:"dive"`
	User           Customer        `json:"user" validate:"required"`
	Currency       string          `json:"currency" validate:"required"`
	ConversionRate decimal.Decimal `json:"conversionRate" swaggertype:"number"`
	PaymentMethod  string          `json:"paymentMethod" validate:"required,oneof=Stripe PayPal COD"`
	PaymentID      string          `json:"paymentId,omitempty"`
	CouponCode     string          `json:"couponCode,omitempty"`
	TotalItems     int             `json:"totalItems" validate:"gte=0"`
	Shipping       decimal.Decimal `json:"shipping" swaggertype:"number"`
	Description    string          `json:"description,omitempty"`
	Note           string          `json:"note,omitempty"`
}

// PlaceOrderResponse identifies the created order
type PlaceOrderResponse struct {
	OrderID     string   `json:"orderId"`
	OrderNo     string   `json:"orderNo"`
	Total       string   `json:"total"`
	Backordered []string `json:"backordered,omitempty"`
}

// LineItem is a priced order line
type LineItem struct {
	PID         string `json:"pid"`
	Name        string `json:"name,omitempty"`
	SKU         string `json:"sku,omitempty"`
	Quantity    int    `json:"quantity"`
	PriceSale   string `json:"priceSale"`
	Total       string `json:"total"`
	Shop        string `json:"shop,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Backordered bool   `json:"backordered,omitempty"`
}

// Order is the order record
type Order struct {
	ID             string     `json:"_id"`
	OrderNo        string     `json:"orderNo"`
	PaymentMethod  string     `json:"paymentMethod"`
	PaymentID      string     `json:"paymentId,omitempty"`
	SubTotal       string     `json:"subTotal"`
	Discount       string     `json:"discount"`
	Shipping       string     `json:"shipping"`
	Total          string     `json:"total"`
	TotalItems     int        `json:"totalItems"`
	Currency       string     `json:"currency"`
	ConversionRate string     `json:"conversionRate"`
	Status         string     `json:"status"`
	Description    string     `json:"description,omitempty"`
	Note           string     `json:"note,omitempty"`
	CouponCode     string     `json:"couponCode,omitempty"`
	User           Customer   `json:"user"`
	Items          []LineItem `json:"items"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// OrdersPage is a page of orders
type OrdersPage struct {
	Data        []Order `json:"data"`
	Total       int     `json:"total"`
	Count       int     `json:"count"`
	CurrentPage int     `json:"currentPage"`
}

// UpdateOrderRequest is a partial order update. Omitted fields are kept.
type UpdateOrderRequest struct {
	Status        *string `json:"status,omitempty"`
	Note          *string `json:"note,omitempty"`
	Description   *string `json:"description,omitempty"`
	PaymentID     *string `json:"paymentId,omitempty"`
	PaymentMethod *string `json:"paymentMethod,omitempty" validate:"omitempty,oneof=Stripe PayPal COD"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	City          *string `json:"city,omitempty"`
	Zip           *string `json:"zip,omitempty"`
	Country       *string `json:"country,omitempty"`
	State         *string `json:"state,omitempty"`
}

// CouponQuote is the discount a coupon gives for a total
type CouponQuote struct {
	Code      string    `json:"code"`
	Type      string    `json:"type"`
	Discount  string    `json:"discount"`
	Amount    string    `json:"amount"`
	ExpiresAt time.Time `json:"expire"`
}

// RedeemCouponRequest is the body of POST /coupons/{code}/redeem
type RedeemCouponRequest struct {
	Total decimal.Decimal `json:"total" swaggertype:"number"`
}

// RedeemCouponResponse is the discount granted by a redemption
type RedeemCouponResponse struct {
	Code     string `json:"code"`
	Discount string `json:"discount"`
}

func CustomerJSONToEntity(c Customer) entities.Customer {
	return entities.Customer{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		City:      c.City,
		Zip:       c.Zip,
		Country:   c.Country,
		State:     c.State,
		CoverURL:  c.Cover,
	}
}

func CustomerEntityToJSON(c entities.Customer, accountID string) Customer {
	return Customer{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		City:      c.City,
		Zip:       c.Zip,
		Country:   c.Country,
		State:     c.State,
		Cover:     c.CoverURL,
		AccountID: accountID,
	}
}

func PlaceOrderJSONToRequest(r PlaceOrderRequest) service.PlaceOrderRequest {
	items := make([]service.ItemRequest, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, service.ItemRequest{ProductID: it.PID, Quantity: it.Quantity})
	}

	return service.PlaceOrderRequest{
		Items:          items,
		Customer:       CustomerJSONToEntity(r.User),
		Currency:       r.Currency,
		ConversionRate: r.ConversionRate,
		PaymentMethod:  entities.PaymentMethod(r.PaymentMethod),
		PaymentID:      r.PaymentID,
		CouponCode:     r.CouponCode,
		TotalItems:     r.TotalItems,
		Shipping:       r.Shipping,
		Description:    r.Description,
		Note:           r.Note,
	}
}

func ItemEntityToJSON(i entities.LineItem) LineItem {
	return LineItem{
		PID:         i.ProductID,
		Name:        i.Name,
		SKU:         i.SKU,
		Quantity:    i.Quantity,
		PriceSale:   i.Price.StringFixed(2),
		Total:       i.Total.StringFixed(2),
		Shop:        i.ShopID,
		ImageURL:    i.ImageURL,
		Backordered: i.Backordered,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]LineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemEntityToJSON(it))
	}

	return Order{
		ID:             o.ID,
		OrderNo:        o.OrderNo,
		PaymentMethod:  string(o.PaymentMethod),
		PaymentID:      o.PaymentID,
		SubTotal:       o.Subtotal.StringFixed(2),
		Discount:       o.Discount.StringFixed(2),
		Shipping:       o.Shipping.StringFixed(2),
		Total:          o.Total.StringFixed(2),
		TotalItems:     o.TotalItems,
		Currency:       o.Currency,
		ConversionRate: o.ConversionRate.String(),
		Status:         string(o.Status),
		Description:    o.Description,
		Note:           o.Note,
		CouponCode:     o.CouponCode,
		User:           CustomerEntityToJSON(o.Customer, o.CustomerAccountID),
		Items:          items,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func OrderPageEntityToJSON(p entities.OrderPage) OrdersPage {
	data := make([]Order, 0, len(p.Orders))
	for _, o := range p.Orders {
		data = append(data, OrderEntityToJSON(o))
	}
	return OrdersPage{
		Data:        data,
		Total:       p.Total,
		Count:       p.Pages,
		CurrentPage: p.CurrentPage,
	}
}

func UpdateOrderJSONToPatch(r UpdateOrderRequest) entities.OrderPatch {
	patch := entities.OrderPatch{
		Note:        r.Note,
		Description: r.Description,
		PaymentID:   r.PaymentID,
		Phone:       r.Phone,
		Address:     r.Address,
		City:        r.City,
		Zip:         r.Zip,
		Country:     r.Country,
		State:       r.State,
	}
	if r.Status != nil {
		status := entities.OrderStatus(*r.Status)
		patch.Status = &status
	}
	if r.PaymentMethod != nil {
		method := entities.PaymentMethod(*r.PaymentMethod)
		patch.PaymentMethod = &method
	}
	return patch
}

func CouponQuoteToJSON(c entities.Coupon, amount decimal.Decimal) CouponQuote {
	return CouponQuote{
		Code:      c.Code,
		Type:      string(c.Kind),
		Discount:  c.Discount.String(),
		Amount:    amount.StringFixed(2),
		ExpiresAt: c.ExpiresAt,
	}
}
