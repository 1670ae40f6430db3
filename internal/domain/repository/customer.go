package repository

import (
	"context"

	"github.com/polkiloo/toymix/internal/domain/model"
)

// CustomerRepository describes persistence operations for customers.
type CustomerRepository interface {
	List(ctx context.Context, filter model.CustomerFilter, page model.Page) (*model.CustomerPage, error)
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	Create(ctx context.Context, c model.Customer) (*model.Customer, error)
	Update(ctx context.Context, id int64, patch model.CustomerPatch) (*model.Customer, error)
	Delete(ctx context.Context, id int64) error
}
