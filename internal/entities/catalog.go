package entities

import "github.com/shopspring/decimal"

// Product is owned by the catalog; orders only read its price and move its
// stock counters.
type Product struct {
	ID        string
	ShopID    string
	Name      string
	SKU       string
	PriceSale decimal.Decimal
	Available int
	Sold      int
	Images    []string
}

func (p Product) Cover() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

type Shop struct {
	ID       string
	VendorID string
	Slug     string
	Name     string
}

type Account struct {
	ID    string
	Email string
}
