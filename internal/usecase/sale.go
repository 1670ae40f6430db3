package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/polkiloo/toymix/internal/domain/errors"
	"github.com/polkiloo/toymix/internal/domain/model"
	"github.com/polkiloo/toymix/internal/domain/repository"
)

// SaleUseCase manages sales.
type SaleUseCase struct {
	sales  repository.SaleRepository
	paging Paging
}

// NewSaleUseCase constructs SaleUseCase.
func NewSaleUseCase(sales repository.SaleRepository, paging Paging) *SaleUseCase {
	return &SaleUseCase{sales: sales, paging: paging}
}

// List returns a page of sales with count and sum over the whole filtered set.
func (u *SaleUseCase) List(ctx context.Context, q model.SaleQuery) (*model.SalePage, error) {
	filter := model.SaleFilter{CustomerID: q.CustomerID}

	if q.From != "" {
		from, err := parseDate("dataInicial", q.From)
		if err != nil {
			return nil, err
		}
		filter.From = &from
	}
	if q.To != "" {
		to, err := parseDate("dataFinal", q.To)
		if err != nil {
			return nil, err
		}
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, fmt.Errorf("%w: dataInicial is after dataFinal", domainErrors.ErrInvalidInput)
	}

	page := u.paging.Normalize(q.Page, q.PerPage)
	result, err := u.sales.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	result.Page = page
	return result, nil
}

// Create validates input and records a sale for an existing customer.
func (u *SaleUseCase) Create(ctx context.Context, in model.SaleInput) (*model.Sale, error) {
	if in.CustomerID <= 0 {
		return nil, fmt.Errorf("%w: cliente_id is required", domainErrors.ErrInvalidInput)
	}
	date, err := parseDate("data", in.Date)
	if err != nil {
		return nil, err
	}
	if in.Amount == nil {
		return nil, fmt.Errorf("%w: valor is required", domainErrors.ErrInvalidInput)
	}
	if !in.Amount.IsPositive() {
		return nil, domainErrors.ErrInvalidAmount
	}

	return u.sales.Create(ctx, model.Sale{
		CustomerID: in.CustomerID,
		Date:       date,
		Amount:     in.Amount.Round(2),
	})
}

// Update applies the supplied fields to an existing sale.
func (u *SaleUseCase) Update(ctx context.Context, id int64, ch model.SaleChanges) (*model.Sale, error) {
	var patch model.SalePatch

	if ch.CustomerID != nil {
		if *ch.CustomerID <= 0 {
			return nil, fmt.Errorf("%w: cliente_id must be positive", domainErrors.ErrInvalidInput)
		}
		patch.CustomerID = ch.CustomerID
	}
	if ch.Date != nil {
		date, err := parseDate("data", *ch.Date)
		if err != nil {
			return nil, err
		}
		patch.Date = &date
	}
	if ch.Amount != nil {
		if !ch.Amount.IsPositive() {
			return nil, domainErrors.ErrInvalidAmount
		}
		amount := ch.Amount.Round(2)
		patch.Amount = &amount
	}

	// An empty patch only touches updated_at and still reports a missing sale.
	return u.sales.Update(ctx, id, patch)
}

// Delete removes a sale.
func (u *SaleUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domainErrors.ErrNotFound
	}
	return u.sales.Delete(ctx, id)
}
