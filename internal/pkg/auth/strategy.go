package auth

import (
	"errors"
	"time"
)

// ErrInvalidToken is returned for malformed, expired or foreign tokens.
var ErrInvalidToken = errors.New("invalid auth token")

// Claims identifies the user a token was issued for.
type Claims struct {
	UserID    int64
	Username  string
	ExpiresAt time.Time
}

type Strategy interface {
	IssueToken(userID int64, username string) (string, error)
	ParseToken(token string) (*Claims, error)
}

type Options struct {
	TTL time.Duration
	Now func() time.Time
}

const defaultTTL = 24 * time.Hour
