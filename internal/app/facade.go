package app

import (
	"context"

	"github.com/polkiloo/toymix/internal/domain/model"
	pkgAuth "github.com/polkiloo/toymix/internal/pkg/auth"
	"github.com/polkiloo/toymix/internal/usecase"
)

// HealthChecker reports whether the backing store answers.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// StoreFacade exposes the use cases behind the HTTP handlers.
type StoreFacade struct {
	auth      *usecase.AuthUseCase
	customers *usecase.CustomerUseCase
	sales     *usecase.SaleUseCase
	stats     *usecase.StatsUseCase
	health    HealthChecker
}

func NewStoreFacade(auth *usecase.AuthUseCase, customers *usecase.CustomerUseCase, sales *usecase.SaleUseCase, stats *usecase.StatsUseCase, health HealthChecker) *StoreFacade {
	return &StoreFacade{auth: auth, customers: customers, sales: sales, stats: stats, health: health}
}

func (f *StoreFacade) Register(ctx context.Context, username, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, username, password)
	return token, err
}

func (f *StoreFacade) Authenticate(ctx context.Context, username, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, username, password)
	return token, err
}

func (f *StoreFacade) ParseToken(token string) (*pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

func (f *StoreFacade) Customers(ctx context.Context, q model.CustomerQuery) (*model.CustomerPage, error) {
	return f.customers.List(ctx, q)
}

func (f *StoreFacade) Customer(ctx context.Context, id int64) (*model.Customer, error) {
	return f.customers.Get(ctx, id)
}

func (f *StoreFacade) CreateCustomer(ctx context.Context, in model.CustomerInput) (*model.Customer, error) {
	return f.customers.Create(ctx, in)
}

func (f *StoreFacade) UpdateCustomer(ctx context.Context, id int64, ch model.CustomerChanges) (*model.Customer, error) {
	return f.customers.Update(ctx, id, ch)
}

func (f *StoreFacade) DeleteCustomer(ctx context.Context, id int64) error {
	return f.customers.Delete(ctx, id)
}

func (f *StoreFacade) Sales(ctx context.Context, q model.SaleQuery) (*model.SalePage, error) {
	return f.sales.List(ctx, q)
}

func (f *StoreFacade) CreateSale(ctx context.Context, in model.SaleInput) (*model.Sale, error) {
	return f.sales.Create(ctx, in)
}

func (f *StoreFacade) UpdateSale(ctx context.Context, id int64, ch model.SaleChanges) (*model.Sale, error) {
	return f.sales.Update(ctx, id, ch)
}

func (f *StoreFacade) DeleteSale(ctx context.Context, id int64) error {
	return f.sales.Delete(ctx, id)
}

func (f *StoreFacade) DailySales(ctx context.Context) ([]model.DailyTotal, error) {
	return f.stats.DailyTotals(ctx)
}

func (f *StoreFacade) TopClients(ctx context.Context) (*model.TopClients, error) {
	return f.stats.TopClients(ctx)
}

func (f *StoreFacade) Summary(ctx context.Context) (*model.Summary, error) {
	return f.stats.Summary(ctx)
}

func (f *StoreFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
