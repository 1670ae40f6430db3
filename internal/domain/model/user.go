package model

import "time"

// User represents an operator allowed to manage customers and sales.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
