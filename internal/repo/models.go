package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/marketplace-orders/internal/entities"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID             string          `db:"id"`
	OrderNo        string          `db:"order_no"`
	PaymentMethod  string          `db:"payment_method"`
	PaymentID      sql.NullString  `db:"payment_id"`
	Subtotal       decimal.Decimal `db:"subtotal"`
	Discount       decimal.Decimal `db:"discount"`
	Shipping       decimal.Decimal `db:"shipping"`
	Total          decimal.Decimal `db:"total"`
	TotalItems     int             `db:"total_items"`
	Currency       string          `db:"currency"`
	ConversionRate decimal.Decimal `db:"conversion_rate"`
	Status         string          `db:"status"`
	Description    sql.NullString  `db:"description"`
	Note           sql.NullString  `db:"note"`
	CouponCode     sql.NullString  `db:"coupon_code"`

	FirstName string         `db:"customer_first_name"`
	LastName  string         `db:"customer_last_name"`
	Email     string         `db:"customer_email"`
	Phone     sql.NullString `db:"customer_phone"`
	Address   sql.NullString `db:"customer_address"`
	City      sql.NullString `db:"customer_city"`
	Zip       sql.NullString `db:"customer_zip"`
	Country   sql.NullString `db:"customer_country"`
	State     sql.NullString `db:"customer_state"`
	CoverURL  sql.NullString `db:"customer_cover_url"`
	AccountID sql.NullString `db:"customer_account_id"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

var orderColumns = []string{
	"id", "order_no", "payment_method", "payment_id", "subtotal", "discount",
	"shipping", "total", "total_items", "currency", "conversion_rate", "status",
	"description", "note", "coupon_code",
	"customer_first_name", "customer_last_name", "customer_email", "customer_phone",
	"customer_address", "customer_city", "customer_zip", "customer_country",
	"customer_state", "customer_cover_url", "customer_account_id",
	"created_at", "updated_at",
}

type Item struct {
	OrderID     string          `db:"order_id"`
	Position    int             `db:"position"`
	ProductID   string          `db:"product_id"`
	Name        string          `db:"name"`
	SKU         string          `db:"sku"`
	Quantity    int             `db:"quantity"`
	Price       decimal.Decimal `db:"price"`
	Total       decimal.Decimal `db:"total"`
	ShopID      sql.NullString  `db:"shop_id"`
	ImageURL    string          `db:"image_url"`
	Backordered bool            `db:"backordered"`
}

var itemColumns = []string{
	"order_id", "position", "product_id", "name", "sku", "quantity",
	"price", "total", "shop_id", "image_url", "backordered",
}

type Product struct {
	ID        string          `db:"id"`
	ShopID    string          `db:"shop_id"`
	Name      string          `db:"name"`
	SKU       string          `db:"sku"`
	PriceSale decimal.Decimal `db:"price_sale"`
	Available int             `db:"available"`
	Sold      int             `db:"sold"`
	Images    pq.StringArray  `db:"images"`
}

type Coupon struct {
	Code      string          `db:"code"`
	Discount  decimal.Decimal `db:"discount"`
	Kind      string          `db:"kind"`
	ExpiresAt time.Time       `db:"expires_at"`
	UsedBy    pq.StringArray  `db:"used_by"`
}

type Shop struct {
	ID       string `db:"id"`
	VendorID string `db:"vendor_id"`
	Slug     string `db:"slug"`
	Name     string `db:"name"`
}

type Account struct {
	ID    string `db:"id"`
	Email string `db:"email"`
}

func OrderToEntity(o Order, items []Item) entities.Order {
	order := entities.Order{
		ID:             o.ID,
		OrderNo:        o.OrderNo,
		PaymentMethod:  entities.PaymentMethod(o.PaymentMethod),
		PaymentID:      nullStringToString(o.PaymentID),
		Subtotal:       o.Subtotal,
		Discount:       o.Discount,
		Shipping:       o.Shipping,
		Total:          o.Total,
		TotalItems:     o.TotalItems,
		Currency:       o.Currency,
		ConversionRate: o.ConversionRate,
		Status:         entities.OrderStatus(o.Status),
		Description:    nullStringToString(o.Description),
		Note:           nullStringToString(o.Note),
		CouponCode:     nullStringToString(o.CouponCode),
		Customer: entities.Customer{
			FirstName: o.FirstName,
			LastName:  o.LastName,
			Email:     o.Email,
			Phone:     nullStringToString(o.Phone),
			Address:   nullStringToString(o.Address),
			City:      nullStringToString(o.City),
			Zip:       nullStringToString(o.Zip),
			Country:   nullStringToString(o.Country),
			State:     nullStringToString(o.State),
			CoverURL:  nullStringToString(o.CoverURL),
		},
		CustomerAccountID: nullStringToString(o.AccountID),
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.LineItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func ItemToEntity(i Item) entities.LineItem {
	return entities.LineItem{
		ProductID:   i.ProductID,
		Name:        i.Name,
		SKU:         i.SKU,
		Quantity:    i.Quantity,
		Price:       i.Price,
		Total:       i.Total,
		ShopID:      nullStringToString(i.ShopID),
		ImageURL:    i.ImageURL,
		Backordered: i.Backordered,
	}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:        p.ID,
		ShopID:    p.ShopID,
		Name:      p.Name,
		SKU:       p.SKU,
		PriceSale: p.PriceSale,
		Available: p.Available,
		Sold:      p.Sold,
		Images:    []string(p.Images),
	}
}

func CouponToEntity(c Coupon) entities.Coupon {
	return entities.Coupon{
		Code:      c.Code,
		Discount:  c.Discount,
		Kind:      entities.CouponKind(c.Kind),
		ExpiresAt: c.ExpiresAt,
		UsedBy:    []string(c.UsedBy),
	}
}

func ShopToEntity(s Shop) entities.Shop {
	return entities.Shop{
		ID:       s.ID,
		VendorID: s.VendorID,
		Slug:     s.Slug,
		Name:     s.Name,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
