package auth

import (
	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"

	"github.com/polkiloo/toymix/internal/config"
)

// Module provides the bcrypt hasher and the JWT strategy signed with the configured secret.
var Module = fx.Provide(
	newPasswordHasher,
	newTokenStrategy,
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(bcrypt.DefaultCost)
}

func newTokenStrategy(cfg *config.Config) Strategy {
	return NewJWTStrategy(cfg.JWTSecret, Options{TTL: cfg.TokenTTL})
}
