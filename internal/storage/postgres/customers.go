package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/toymix/internal/domain/errors"
	"github.com/polkiloo/toymix/internal/domain/model"
)

const customerColumns = `id, nome, email, nascimento, created_at, updated_at`

type customerRepository struct {
	storage *Storage
}

func customerFilterClause(filter model.CustomerFilter) *whereClause {
	w := &whereClause{}
	if filter.ID != nil {
		w.add("id = $%d", *filter.ID)
	}
	if filter.Name != "" {
		w.add("nome ILIKE $%d", "%"+filter.Name+"%")
	}
	if filter.Email != "" {
		w.add("email ILIKE $%d", "%"+filter.Email+"%")
	}
	return w
}

// List returns customers matching filter. A filter by id bypasses pagination.
func (r *customerRepository) List(ctx context.Context, filter model.CustomerFilter, page model.Page) (*model.CustomerPage, error) {
	where := customerFilterClause(filter)

	if filter.ID != nil {
		query := `SELECT ` + customerColumns + ` FROM clientes` + where.String() + ` ORDER BY id DESC`
		items, err := r.query(ctx, query, where.args...)
		if err != nil {
			return nil, err
		}
		return &model.CustomerPage{Items: items, Total: int64(len(items))}, nil
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM clientes` + where.String()
	if err := r.storage.pool.QueryRow(ctx, countQuery, where.args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}

	n := where.next()
	query := fmt.Sprintf(`SELECT %s FROM clientes%s ORDER BY id DESC LIMIT $%d OFFSET $%d`,
		customerColumns, where.String(), n, n+1)
	args := append(where.args, page.Size, page.Offset())
	items, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return &model.CustomerPage{Items: items, Total: total}, nil
}

func (r *customerRepository) query(ctx context.Context, query string, args ...any) ([]model.Customer, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Customer, 0)
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.BirthDate, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	const query = `SELECT ` + customerColumns + ` FROM clientes WHERE id=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *customerRepository) Create(ctx context.Context, c model.Customer) (*model.Customer, error) {
	const query = `INSERT INTO clientes (nome, email, nascimento) VALUES ($1, $2, $3)
                   RETURNING ` + customerColumns
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, c.Name, c.Email, c.BirthDate))
}

// Update applies the non-nil patch fields and bumps updated_at.
func (r *customerRepository) Update(ctx context.Context, id int64, patch model.CustomerPatch) (*model.Customer, error) {
	const query = `UPDATE clientes SET
                       nome = COALESCE($2, nome),
                       email = COALESCE($3, email),
                       nascimento = COALESCE($4, nascimento),
                       updated_at = NOW()
                   WHERE id=$1
                   RETURNING ` + customerColumns
	row := r.storage.pool.QueryRow(ctx, query, id,
		nullable(patch.Name), nullable(patch.Email), nullable(patch.BirthDate))
	return r.scanOne(row)
}

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM clientes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *customerRepository) scanOne(row pgx.Row) (*model.Customer, error) {
	var c model.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.BirthDate, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, domainErrors.ErrNotFound
		case pgErrorCode(err) == pgUniqueViolation:
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &c, nil
}
