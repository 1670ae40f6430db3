package repository

import (
	"context"

	"github.com/polkiloo/toymix/internal/domain/model"
)

// SaleRepository describes persistence operations for sales.
type SaleRepository interface {
	List(ctx context.Context, filter model.SaleFilter, page model.Page) (*model.SalePage, error)
	Create(ctx context.Context, s model.Sale) (*model.Sale, error)
	Update(ctx context.Context, id int64, patch model.SalePatch) (*model.Sale, error)
	Delete(ctx context.Context, id int64) error
}
