package model

import "github.com/shopspring/decimal"

// CustomerInput carries raw fields for a new customer.
type CustomerInput struct {
	Name      string
	Email     string
	BirthDate string
}

// CustomerChanges carries raw fields for a partial update; nil means untouched.
type CustomerChanges struct {
	Name      *string
	Email     *string
	BirthDate *string
}

// CustomerQuery is a raw customer listing request.
type CustomerQuery struct {
	Name    string
	Email   string
	ID      *int64
	Page    int
	PerPage int
}

// SaleInput carries raw fields for a new sale.
type SaleInput struct {
	CustomerID int64
	Date       string
	Amount     *decimal.Decimal
}

// SaleChanges carries raw fields for a partial update; nil means untouched.
type SaleChanges struct {
	CustomerID *int64
	Date       *string
	Amount     *decimal.Decimal
}

// SaleQuery is a raw sales listing request. Empty dates are ignored.
type SaleQuery struct {
	CustomerID *int64
	From       string
	To         string
	Page       int
	PerPage    int
}
