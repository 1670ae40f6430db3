package handlers

import (
	"context"

	"github.com/polkiloo/toymix/internal/domain/model"
	pkgAuth "github.com/polkiloo/toymix/internal/pkg/auth"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, username, password string) (string, error)
	Authenticate(ctx context.Context, username, password string) (string, error)
	ParseToken(token string) (*pkgAuth.Claims, error)
}

// CustomerFacade exposes customer management.
type CustomerFacade interface {
	Customers(ctx context.Context, q model.CustomerQuery) (*model.CustomerPage, error)
	Customer(ctx context.Context, id int64) (*model.Customer, error)
	CreateCustomer(ctx context.Context, in model.CustomerInput) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, ch model.CustomerChanges) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
}

// SaleFacade exposes sales management.
type SaleFacade interface {
	Sales(ctx context.Context, q model.SaleQuery) (*model.SalePage, error)
	CreateSale(ctx context.Context, in model.SaleInput) (*model.Sale, error)
	UpdateSale(ctx context.Context, id int64, ch model.SaleChanges) (*model.Sale, error)
	DeleteSale(ctx context.Context, id int64) error
}

// StatsFacade provides dashboard reports.
type StatsFacade interface {
	DailySales(ctx context.Context) ([]model.DailyTotal, error)
	TopClients(ctx context.Context) (*model.TopClients, error)
	Summary(ctx context.Context) (*model.Summary, error)
}

// HealthChecker reports storage availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	AuthFacade
	CustomerFacade
	SaleFacade
	StatsFacade
	HealthChecker
}
