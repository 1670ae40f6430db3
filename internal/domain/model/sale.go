package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a dated monetary transaction tied to one customer.
type Sale struct {
	ID           int64
	CustomerID   int64
	CustomerName string
	Date         time.Time
	Amount       decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SaleFilter narrows sales listings; all set fields combine conjunctively.
type SaleFilter struct {
	CustomerID *int64
	From       *time.Time
	To         *time.Time
}

// SalePatch carries a partial sale update. Nil fields are left untouched.
type SalePatch struct {
	CustomerID *int64
	Date       *time.Time
	Amount     *decimal.Decimal
}

// Empty reports whether the patch changes nothing.
func (p SalePatch) Empty() bool {
	return p.CustomerID == nil && p.Date == nil && p.Amount == nil
}

// SalePage is one page of sales with count and amount over the whole filtered set.
type SalePage struct {
	Items       []Sale
	Total       int64
	TotalAmount decimal.Decimal
	Page        Page
}
