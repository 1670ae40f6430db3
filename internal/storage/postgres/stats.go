package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/toymix/internal/domain/model"
)

type statsRepository struct {
	storage *Storage
}

func (r *statsRepository) DailyTotals(ctx context.Context) ([]model.DailyTotal, error) {
	const query = `SELECT data, SUM(valor)::text AS total FROM sales GROUP BY data ORDER BY data`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.DailyTotal, 0)
	for rows.Next() {
		var (
			d     model.DailyTotal
			total string
			err   error
		)
		if err = rows.Scan(&d.Date, &total); err != nil {
			return nil, err
		}
		if d.Total, err = parseMoney(total); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *statsRepository) TopByVolume(ctx context.Context) (*model.ClientRanking, error) {
	const query = `SELECT c.id, c.nome, c.email, SUM(s.valor)::text AS total_vendas
                   FROM sales s JOIN clientes c ON c.id = s.cliente_id
                   GROUP BY c.id, c.nome, c.email
                   ORDER BY SUM(s.valor) DESC, c.id DESC
                   LIMIT 1`
	var total string
	ranking, err := r.top(ctx, query, &total)
	if err != nil || ranking == nil {
		return ranking, err
	}
	if ranking.TotalAmount, err = parseMoney(total); err != nil {
		return nil, err
	}
	return ranking, nil
}

func (r *statsRepository) TopByAverage(ctx context.Context) (*model.ClientRanking, error) {
	const query = `SELECT c.id, c.nome, c.email, AVG(s.valor)::text AS media_valor
                   FROM sales s JOIN clientes c ON c.id = s.cliente_id
                   GROUP BY c.id, c.nome, c.email
                   ORDER BY AVG(s.valor) DESC, c.id DESC
                   LIMIT 1`
	var avg string
	ranking, err := r.top(ctx, query, &avg)
	if err != nil || ranking == nil {
		return ranking, err
	}
	if ranking.AvgAmount, err = parseMoney(avg); err != nil {
		return nil, err
	}
	return ranking, nil
}

func (r *statsRepository) TopByFrequency(ctx context.Context) (*model.ClientRanking, error) {
	const query = `SELECT c.id, c.nome, c.email, COUNT(DISTINCT s.data) AS dias_unicos
                   FROM sales s JOIN clientes c ON c.id = s.cliente_id
                   GROUP BY c.id, c.nome, c.email
                   ORDER BY dias_unicos DESC, c.id DESC
                   LIMIT 1`
	var days int64
	ranking, err := r.top(ctx, query, &days)
	if ranking != nil {
		ranking.UniqueDays = days
	}
	return ranking, err
}

// top scans a single ranking row; no sales yields a nil ranking.
func (r *statsRepository) top(ctx context.Context, query string, metric any) (*model.ClientRanking, error) {
	var c model.ClientRanking
	err := r.storage.pool.QueryRow(ctx, query).Scan(&c.CustomerID, &c.Name, &c.Email, metric)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Summary returns sales totals and customer count. AverageTicket is left for the caller.
func (r *statsRepository) Summary(ctx context.Context) (*model.Summary, error) {
	const query = `SELECT COALESCE(SUM(valor), 0)::text, COUNT(*), (SELECT COUNT(*) FROM clientes) FROM sales`
	var (
		s     model.Summary
		total string
		err   error
	)
	if err = r.storage.pool.QueryRow(ctx, query).Scan(&total, &s.SaleCount, &s.CustomerCount); err != nil {
		return nil, err
	}
	if s.TotalAmount, err = parseMoney(total); err != nil {
		return nil, err
	}
	return &s, nil
}
