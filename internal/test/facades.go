package test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/toymix/internal/domain/model"
)

// CustomerFacadeStub provides controllable behaviour for customer endpoints.
type CustomerFacadeStub struct {
	ListFn   func(context.Context, model.CustomerQuery) (*model.CustomerPage, error)
	GetFn    func(context.Context, int64) (*model.Customer, error)
	CreateFn func(context.Context, model.CustomerInput) (*model.Customer, error)
	UpdateFn func(context.Context, int64, model.CustomerChanges) (*model.Customer, error)
	DeleteFn func(context.Context, int64) error
}

// SampleCustomer returns the first seeded customer.
func SampleCustomer() model.Customer {
	ts := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	return model.Customer{
		ID:        1,
		Name:      "Ana Beatriz",
		Email:     "ana.b@example.com",
		BirthDate: time.Date(1992, 5, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

func (s CustomerFacadeStub) Customers(ctx context.Context, q model.CustomerQuery) (*model.CustomerPage, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, q)
	}
	return &model.CustomerPage{
		Items: []model.Customer{SampleCustomer()},
		Total: 1,
		Page:  model.Page{Number: 1, Size: 5},
	}, nil
}

func (s CustomerFacadeStub) Customer(ctx context.Context, id int64) (*model.Customer, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	c := SampleCustomer()
	c.ID = id
	return &c, nil
}

func (s CustomerFacadeStub) CreateCustomer(ctx context.Context, in model.CustomerInput) (*model.Customer, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, in)
	}
	c := SampleCustomer()
	return &c, nil
}

func (s CustomerFacadeStub) UpdateCustomer(ctx context.Context, id int64, ch model.CustomerChanges) (*model.Customer, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, ch)
	}
	c := SampleCustomer()
	c.ID = id
	return &c, nil
}

func (s CustomerFacadeStub) DeleteCustomer(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// SaleFacadeStub provides controllable behaviour for sales endpoints.
type SaleFacadeStub struct {
	ListFn   func(context.Context, model.SaleQuery) (*model.SalePage, error)
	CreateFn func(context.Context, model.SaleInput) (*model.Sale, error)
	UpdateFn func(context.Context, int64, model.SaleChanges) (*model.Sale, error)
	DeleteFn func(context.Context, int64) error
}

// SampleSale returns the first seeded sale.
func SampleSale() model.Sale {
	ts := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	return model.Sale{
		ID:           1,
		CustomerID:   1,
		CustomerName: "Ana Beatriz",
		Date:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Amount:       decimal.NewFromInt(150),
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
}

func (s SaleFacadeStub) Sales(ctx context.Context, q model.SaleQuery) (*model.SalePage, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, q)
	}
	return &model.SalePage{
		Items:       []model.Sale{SampleSale()},
		Total:       1,
		TotalAmount: decimal.NewFromInt(150),
		Page:        model.Page{Number: 1, Size: 5},
	}, nil
}

func (s SaleFacadeStub) CreateSale(ctx context.Context, in model.SaleInput) (*model.Sale, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, in)
	}
	sale := SampleSale()
	return &sale, nil
}

func (s SaleFacadeStub) UpdateSale(ctx context.Context, id int64, ch model.SaleChanges) (*model.Sale, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, ch)
	}
	sale := SampleSale()
	sale.ID = id
	return &sale, nil
}

func (s SaleFacadeStub) DeleteSale(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// StatsFacadeStub returns canned dashboard data.
type StatsFacadeStub struct {
	DailyFn   func(context.Context) ([]model.DailyTotal, error)
	TopFn     func(context.Context) (*model.TopClients, error)
	SummaryFn func(context.Context) (*model.Summary, error)
}

func (s StatsFacadeStub) DailySales(ctx context.Context) ([]model.DailyTotal, error) {
	if s.DailyFn != nil {
		return s.DailyFn(ctx)
	}
	return []model.DailyTotal{{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(440)}}, nil
}

func (s StatsFacadeStub) TopClients(ctx context.Context) (*model.TopClients, error) {
	if s.TopFn != nil {
		return s.TopFn(ctx)
	}
	return &model.TopClients{}, nil
}

func (s StatsFacadeStub) Summary(ctx context.Context) (*model.Summary, error) {
	if s.SummaryFn != nil {
		return s.SummaryFn(ctx)
	}
	return &model.Summary{
		TotalAmount:   decimal.NewFromInt(400),
		SaleCount:     3,
		CustomerCount: 2,
		AverageTicket: decimal.RequireFromString("133.33"),
	}, nil
}

// HealthCheckerStub reports the configured error.
type HealthCheckerStub struct {
	Err error
}

func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}

// StoreFacadeStub aggregates facade dependencies for HTTP layer tests.
type StoreFacadeStub struct {
	AuthFacadeStub
	CustomerFacadeStub
	SaleFacadeStub
	StatsFacadeStub
	HealthCheckerStub
}
