package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
)

// SeedAdminUsername is the operator account created by Seed.
const SeedAdminUsername = "admin"

type seedCustomer struct {
	name  string
	email string
	birth string
}

type seedSale struct {
	customer int
	date     string
	amount   string
}

var seedCustomers = []seedCustomer{
	{"Ana Beatriz", "ana.b@example.com", "1992-05-01"},
	{"Carlos Eduardo", "cadu@example.com", "1987-08-15"},
	{"Maria Silva", "maria@example.com", "1995-03-20"},
	{"João Santos", "joao@example.com", "1989-11-10"},
}

var seedSales = []seedSale{
	{0, "2024-01-01", "150.00"},
	{0, "2024-01-02", "50.00"},
	{1, "2024-01-01", "200.00"},
	{1, "2024-01-03", "75.00"},
	{1, "2024-01-05", "120.00"},
	{2, "2024-01-02", "300.00"},
	{2, "2024-01-04", "80.00"},
	{3, "2024-01-01", "90.00"},
	{3, "2024-01-06", "250.00"},
}

// Seed wipes all data and loads the demo dataset in one transaction.
func (s *Storage) Seed(ctx context.Context, adminPasswordHash string) error {
	return s.WithinTransaction(ctx, func(tx pgx.Tx) error {
		for _, table := range []string{"sales", "clientes", "users"} {
			if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("wipe %s: %w", table, err)
			}
		}

		if _, err := tx.Exec(ctx, `INSERT INTO users (username, password_hash) VALUES ($1, $2)`,
			SeedAdminUsername, adminPasswordHash); err != nil {
			return fmt.Errorf("seed user: %w", err)
		}

		ids := make([]int64, len(seedCustomers))
		for i, c := range seedCustomers {
			birth, err := time.Parse(time.DateOnly, c.birth)
			if err != nil {
				return err
			}
			err = tx.QueryRow(ctx, `INSERT INTO clientes (nome, email, nascimento) VALUES ($1, $2, $3) RETURNING id`,
				c.name, c.email, birth).Scan(&ids[i])
			if err != nil {
				return fmt.Errorf("seed customer %s: %w", c.email, err)
			}
		}

		for _, sale := range seedSales {
			date, err := time.Parse(time.DateOnly, sale.date)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, `INSERT INTO sales (cliente_id, data, valor) VALUES ($1, $2, $3)`,
				ids[sale.customer], date, sale.amount); err != nil {
				return fmt.Errorf("seed sale: %w", err)
			}
		}

		s.logger.Info("database seeded",
			slog.Int("users", 1), slog.Int("customers", len(seedCustomers)), slog.Int("sales", len(seedSales)))
		return nil
	})
}
