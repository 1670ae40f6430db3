package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/toymix/internal/domain/errors"
	"github.com/polkiloo/toymix/internal/domain/model"
	"github.com/polkiloo/toymix/internal/domain/repository"
)

// CustomerUseCase manages customer records.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	paging    Paging
}

// NewCustomerUseCase constructs CustomerUseCase.
func NewCustomerUseCase(customers repository.CustomerRepository, paging Paging) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, paging: paging}
}

// List returns a page of customers, or every match when an id is given.
func (u *CustomerUseCase) List(ctx context.Context, q model.CustomerQuery) (*model.CustomerPage, error) {
	filter := model.CustomerFilter{
		Name:  strings.TrimSpace(q.Name),
		Email: strings.TrimSpace(q.Email),
		ID:    q.ID,
	}
	page := u.paging.Normalize(q.Page, q.PerPage)

	result, err := u.customers.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	result.Page = page
	return result, nil
}

// Get returns a single customer.
func (u *CustomerUseCase) Get(ctx context.Context, id int64) (*model.Customer, error) {
	return u.customers.GetByID(ctx, id)
}

// Create validates input and stores a new customer.
func (u *CustomerUseCase) Create(ctx context.Context, in model.CustomerInput) (*model.Customer, error) {
	name, err := requireText("nome", in.Name)
	if err != nil {
		return nil, err
	}
	email, err := validateEmail(in.Email)
	if err != nil {
		return nil, err
	}
	birth, err := parseDate("nascimento", in.BirthDate)
	if err != nil {
		return nil, err
	}

	return u.customers.Create(ctx, model.Customer{Name: name, Email: email, BirthDate: birth})
}

// Update applies the supplied fields. An empty patch returns the current record.
func (u *CustomerUseCase) Update(ctx context.Context, id int64, ch model.CustomerChanges) (*model.Customer, error) {
	var patch model.CustomerPatch

	if ch.Name != nil {
		name, err := requireText("nome", *ch.Name)
		if err != nil {
			return nil, err
		}
		patch.Name = &name
	}
	if ch.Email != nil {
		email, err := validateEmail(*ch.Email)
		if err != nil {
			return nil, err
		}
		patch.Email = &email
	}
	if ch.BirthDate != nil {
		birth, err := parseDate("nascimento", *ch.BirthDate)
		if err != nil {
			return nil, err
		}
		patch.BirthDate = &birth
	}

	if patch.Empty() {
		return u.customers.GetByID(ctx, id)
	}
	return u.customers.Update(ctx, id, patch)
}

// Delete removes the customer together with its sales.
func (u *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domainErrors.ErrNotFound
	}
	return u.customers.Delete(ctx, id)
}
