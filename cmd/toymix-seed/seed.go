package main

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/toymix/internal/pkg/auth"
	"github.com/polkiloo/toymix/internal/storage/postgres"
)

const seedAdminPassword = "123456"

type seeder interface {
	Seed(ctx context.Context, adminPasswordHash string) error
}

type seedParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Hasher     auth.PasswordHasher
	Seeder     seeder
}

// registerSeed loads the dataset once the pool is up and then stops the app.
func registerSeed(p seedParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			code := 0
			if err := seed(ctx, p); err != nil {
				p.Logger.Error("seed failed", slog.String("error", err.Error()))
				code = 1
			} else {
				p.Logger.Info("database seeded", slog.String("admin", postgres.SeedAdminUsername))
			}
			return p.Shutdowner.Shutdown(fx.ExitCode(code))
		},
	})
}

func seed(ctx context.Context, p seedParams) error {
	hash, err := p.Hasher.Hash(seedAdminPassword)
	if err != nil {
		return err
	}
	return p.Seeder.Seed(ctx, hash)
}
