package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRepositoryDailyTotals(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &statsRepository{storage: storage}

	mock.ExpectQuery(`SELECT data, SUM\(valor\)::text AS total FROM sales GROUP BY data ORDER BY data`).WillReturnRows(
		pgxmockv3.NewRows([]string{"data", "total"}).
			AddRow(date("2024-01-01"), "440.00").
			AddRow(date("2024-01-02"), "350.00"))

	totals, err := repo.DailyTotals(context.Background())
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.True(t, totals[0].Date.Equal(date("2024-01-01")))
	assert.Equal(t, "440.00", totals[0].Total.StringFixed(2))

	mock.ExpectQuery(`FROM sales GROUP BY data`).WillReturnRows(pgxmockv3.NewRows([]string{"data", "total"}))
	totals, err = repo.DailyTotals(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, totals)
	assert.Empty(t, totals)

	mock.ExpectQuery(`FROM sales GROUP BY data`).WillReturnError(errors.New("query"))
	_, err = repo.DailyTotals(context.Background())
	assert.Error(t, err)

	mock.ExpectQuery(`FROM sales GROUP BY data`).WillReturnRows(
		pgxmockv3.NewRows([]string{"data", "total"}).AddRow("bad", "1.00"))
	_, err = repo.DailyTotals(context.Background())
	assert.Error(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepositoryDailyTotalsRowsError(t *testing.T) {
	storage := &Storage{pool: &rowsErrorPool{rows: &errorRows{err: errors.New("rows err")}}}
	repo := &statsRepository{storage: storage}

	_, err := repo.DailyTotals(context.Background())
	assert.EqualError(t, err, "rows err")
}

func TestStatsRepositoryTopClients(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &statsRepository{storage: storage}
	ctx := context.Background()
	cols := []string{"id", "nome", "email", "metric"}

	mock.ExpectQuery(`SUM\(s.valor\)::text AS total_vendas .* ORDER BY SUM\(s.valor\) DESC, c.id DESC LIMIT 1`).WillReturnRows(
		pgxmockv3.NewRows(cols).AddRow(int64(2), "Carlos Eduardo", "cadu@example.com", "395.00"))
	volume, err := repo.TopByVolume(ctx)
	require.NoError(t, err)
	require.NotNil(t, volume)
	assert.Equal(t, "Carlos Eduardo", volume.Name)
	assert.Equal(t, "395.00", volume.TotalAmount.StringFixed(2))

	mock.ExpectQuery(`AVG\(s.valor\)::text AS media_valor .* ORDER BY AVG\(s.valor\) DESC, c.id DESC`).WillReturnRows(
		pgxmockv3.NewRows(cols).AddRow(int64(3), "Maria Silva", "maria@example.com", "190.0000000000000000"))
	avg, err := repo.TopByAverage(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), avg.CustomerID)
	assert.Equal(t, "190.00", avg.AvgAmount.StringFixed(2))

	mock.ExpectQuery(`COUNT\(DISTINCT s.data\) AS dias_unicos .* ORDER BY dias_unicos DESC, c.id DESC`).WillReturnRows(
		pgxmockv3.NewRows(cols).AddRow(int64(2), "Carlos Eduardo", "cadu@example.com", int64(3)))
	freq, err := repo.TopByFrequency(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), freq.UniqueDays)

	mock.ExpectQuery(`AS total_vendas`).WillReturnError(pgx.ErrNoRows)
	volume, err = repo.TopByVolume(ctx)
	require.NoError(t, err)
	assert.Nil(t, volume)

	mock.ExpectQuery(`AS media_valor`).WillReturnError(pgx.ErrNoRows)
	avg, err = repo.TopByAverage(ctx)
	require.NoError(t, err)
	assert.Nil(t, avg)

	mock.ExpectQuery(`AS dias_unicos`).WillReturnError(errors.New("boom"))
	_, err = repo.TopByFrequency(ctx)
	assert.Error(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepositorySummary(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &statsRepository{storage: storage}

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(valor\), 0\)::text, COUNT\(\*\), \(SELECT COUNT\(\*\) FROM clientes\) FROM sales`).
		WillReturnRows(pgxmockv3.NewRows([]string{"total", "count", "clients"}).AddRow("400.00", int64(3), int64(2)))
	summary, err := repo.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "400.00", summary.TotalAmount.StringFixed(2))
	assert.Equal(t, int64(3), summary.SaleCount)
	assert.Equal(t, int64(2), summary.CustomerCount)
	assert.True(t, summary.AverageTicket.IsZero())

	mock.ExpectQuery(`FROM sales`).WillReturnError(errors.New("boom"))
	_, err = repo.Summary(context.Background())
	assert.Error(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}
