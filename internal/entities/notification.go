package entities

import "time"

type Notification struct {
	ID            string
	OrderID       string
	Opened        bool
	Title         string
	PaymentMethod PaymentMethod
	City          string
	Cover         string
	CreatedAt     time.Time
}
