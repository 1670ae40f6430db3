package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	domainErrors "github.com/polkiloo/toymix/internal/domain/errors"
	"github.com/polkiloo/toymix/internal/domain/model"
)

const saleProjection = `s.id, s.cliente_id, c.nome, s.data, s.valor::text, s.created_at, s.updated_at`

type saleRepository struct {
	storage *Storage
}

func saleFilterClause(filter model.SaleFilter) *whereClause {
	w := &whereClause{}
	if filter.CustomerID != nil {
		w.add("s.cliente_id = $%d", *filter.CustomerID)
	}
	if filter.From != nil {
		w.add("s.data >= $%d", *filter.From)
	}
	if filter.To != nil {
		w.add("s.data <= $%d", *filter.To)
	}
	return w
}

// List runs count, sum and page queries concurrently over the same filter.
func (r *saleRepository) List(ctx context.Context, filter model.SaleFilter, page model.Page) (*model.SalePage, error) {
	where := saleFilterClause(filter)
	result := &model.SalePage{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		query := `SELECT COUNT(*) FROM sales s` + where.String()
		if err := r.storage.pool.QueryRow(gctx, query, where.args...).Scan(&result.Total); err != nil {
			return fmt.Errorf("count sales: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		query := `SELECT COALESCE(SUM(s.valor), 0)::text FROM sales s` + where.String()
		var sum string
		if err := r.storage.pool.QueryRow(gctx, query, where.args...).Scan(&sum); err != nil {
			return fmt.Errorf("sum sales: %w", err)
		}
		total, err := parseMoney(sum)
		if err != nil {
			return err
		}
		result.TotalAmount = total
		return nil
	})

	g.Go(func() error {
		n := where.next()
		query := fmt.Sprintf(`SELECT %s FROM sales s JOIN clientes c ON c.id = s.cliente_id%s
                              ORDER BY s.data DESC, s.id DESC LIMIT $%d OFFSET $%d`,
			saleProjection, where.String(), n, n+1)
		args := make([]any, 0, len(where.args)+2)
		args = append(args, where.args...)
		args = append(args, page.Size, page.Offset())

		items, err := r.query(gctx, query, args...)
		if err != nil {
			return fmt.Errorf("list sales: %w", err)
		}
		result.Items = items
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *saleRepository) query(ctx context.Context, query string, args ...any) ([]model.Sale, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Sale, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *sale)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts the sale and returns it joined with the customer name.
func (r *saleRepository) Create(ctx context.Context, s model.Sale) (*model.Sale, error) {
	const query = `WITH inserted AS (
                       INSERT INTO sales (cliente_id, data, valor) VALUES ($1, $2, $3)
                       RETURNING id, cliente_id, data, valor, created_at, updated_at
                   )
                   SELECT ` + saleProjection + ` FROM inserted s JOIN clientes c ON c.id = s.cliente_id`
	row := r.storage.pool.QueryRow(ctx, query, s.CustomerID, s.Date, s.Amount.String())
	return scanSaleRow(row)
}

func (r *saleRepository) Update(ctx context.Context, id int64, patch model.SalePatch) (*model.Sale, error) {
	const query = `WITH updated AS (
                       UPDATE sales SET
                           cliente_id = COALESCE($2, cliente_id),
                           data = COALESCE($3, data),
                           valor = COALESCE($4, valor),
                           updated_at = NOW()
                       WHERE id=$1
                       RETURNING id, cliente_id, data, valor, created_at, updated_at
                   )
                   SELECT ` + saleProjection + ` FROM updated s JOIN clientes c ON c.id = s.cliente_id`

	var amount any
	if patch.Amount != nil {
		amount = patch.Amount.String()
	}
	row := r.storage.pool.QueryRow(ctx, query, id, nullable(patch.CustomerID), nullable(patch.Date), amount)
	return scanSaleRow(row)
}

func (r *saleRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM sales WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func scanSale(row pgx.Row) (*model.Sale, error) {
	var (
		s      model.Sale
		amount string
		err    error
	)
	if err = row.Scan(&s.ID, &s.CustomerID, &s.CustomerName, &s.Date, &amount, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	if s.Amount, err = parseMoney(amount); err != nil {
		return nil, err
	}
	return &s, nil
}

// scanSaleRow maps missing rows and broken customer references to ErrNotFound.
func scanSaleRow(row pgx.Row) (*model.Sale, error) {
	sale, err := scanSale(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pgErrorCode(err) == pgForeignKeyViolation {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return sale, nil
}

// parseMoney reads a NUMERIC rendered as text, rounded to cents.
func parseMoney(v string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse amount %q: %w", v, err)
	}
	return d.Round(2), nil
}
