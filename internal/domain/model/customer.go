package model

import "time"

// Customer is a person record and the owner of its sales.
type Customer struct {
	ID        int64
	Name      string
	Email     string
	BirthDate time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CustomerFilter narrows customer listings. Empty fields are ignored.
type CustomerFilter struct {
	Name  string
	Email string
	ID    *int64
}

// CustomerPatch carries a partial customer update. Nil fields are left untouched.
type CustomerPatch struct {
	Name      *string
	Email     *string
	BirthDate *time.Time
}

// Empty reports whether the patch changes nothing.
func (p CustomerPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.BirthDate == nil
}

// CustomerPage is a slice of customers together with the filtered total.
type CustomerPage struct {
	Items []Customer
	Total int64
	Page  Page
}
