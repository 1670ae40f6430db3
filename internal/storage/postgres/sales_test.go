package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/toymix/internal/domain/errors"
	"github.com/polkiloo/toymix/internal/domain/model"
)

var saleCols = []string{"id", "cliente_id", "nome", "data", "valor", "created_at", "updated_at"}

func newUnorderedMockStorage(t *testing.T) (*Storage, pgxmockv3.PgxPoolIface) {
	t.Helper()
	storage, mock := newMockStorage(t)
	mock.MatchExpectationsInOrder(false)
	return storage, mock
}

func TestSaleRepositoryListWithoutFilters(t *testing.T) {
	storage, mock := newUnorderedMockStorage(t)
	defer mock.Close()
	repo := &saleRepository{storage: storage}
	now := time.Now()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM sales s$`).WillReturnRows(
		pgxmockv3.NewRows([]string{"count"}).AddRow(int64(9)))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(s.valor\), 0\)::text FROM sales s$`).WillReturnRows(
		pgxmockv3.NewRows([]string{"sum"}).AddRow("1315.00"))
	mock.ExpectQuery(`JOIN clientes c ON c.id = s.cliente_id ORDER BY s.data DESC, s.id DESC LIMIT \$1 OFFSET \$2`).
		WithArgs(5, 0).
		WillReturnRows(pgxmockv3.NewRows(saleCols).
			AddRow(int64(9), int64(4), "João Santos", date("2024-01-06"), "250.00", now, now).
			AddRow(int64(5), int64(2), "Carlos Eduardo", date("2024-01-05"), "120.00", now, now).
			AddRow(int64(7), int64(3), "Maria Silva", date("2024-01-04"), "80.00", now, now).
			AddRow(int64(4), int64(2), "Carlos Eduardo", date("2024-01-03"), "75.00", now, now).
			AddRow(int64(6), int64(3), "Maria Silva", date("2024-01-02"), "300.00", now, now))

	page, err := repo.List(context.Background(), model.SaleFilter{}, model.Page{Number: 1, Size: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(9), page.Total)
	assert.Equal(t, "1315", page.TotalAmount.String())
	require.Len(t, page.Items, 5)
	assert.Equal(t, "João Santos", page.Items[0].CustomerName)
	assert.Equal(t, "250.00", page.Items[0].Amount.StringFixed(2))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepositoryListWithFilters(t *testing.T) {
	storage, mock := newUnorderedMockStorage(t)
	defer mock.Close()
	repo := &saleRepository{storage: storage}
	now := time.Now()

	customerID := int64(2)
	from := date("2024-01-02")
	to := date("2024-01-05")
	where := `WHERE s.cliente_id = \$1 AND s.data >= \$2 AND s.data <= \$3`

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM sales s ` + where).WithArgs(customerID, from, to).
		WillReturnRows(pgxmockv3.NewRows([]string{"count"}).AddRow(int64(2)))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(s.valor\), 0\)::text FROM sales s ` + where).WithArgs(customerID, from, to).
		WillReturnRows(pgxmockv3.NewRows([]string{"sum"}).AddRow("195.00"))
	mock.ExpectQuery(where+` ORDER BY s.data DESC, s.id DESC LIMIT \$4 OFFSET \$5`).WithArgs(customerID, from, to, 1, 1).
		WillReturnRows(pgxmockv3.NewRows(saleCols).
			AddRow(int64(4), customerID, "Carlos Eduardo", date("2024-01-03"), "75.00", now, now))

	filter := model.SaleFilter{CustomerID: &customerID, From: &from, To: &to}
	page, err := repo.List(context.Background(), filter, model.Page{Number: 2, Size: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.True(t, page.TotalAmount.Equal(decimal.NewFromInt(195)))
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(4), page.Items[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepositoryListFailsWhenAnyQueryFails(t *testing.T) {
	queries := []string{
		`SELECT COUNT\(\*\) FROM sales s`,
		`SELECT COALESCE\(SUM`,
		`ORDER BY s.data DESC`,
	}

	for failing := range queries {
		storage, mock := newUnorderedMockStorage(t)
		repo := &saleRepository{storage: storage}

		for i, q := range queries {
			exp := mock.ExpectQuery(q)
			if i == 2 {
				exp = exp.WithArgs(5, 0)
			}
			switch {
			case i == failing:
				exp.WillReturnError(errors.New("boom"))
			case i == 0:
				exp.WillReturnRows(pgxmockv3.NewRows([]string{"count"}).AddRow(int64(0)))
			case i == 1:
				exp.WillReturnRows(pgxmockv3.NewRows([]string{"sum"}).AddRow("0"))
			default:
				exp.WillReturnRows(pgxmockv3.NewRows(saleCols))
			}
		}

		_, err := repo.List(context.Background(), model.SaleFilter{}, model.Page{Number: 1, Size: 5})
		assert.Error(t, err, "query %d should fail the listing", failing)
		mock.Close()
	}
}

func TestSaleRepositoryListEmpty(t *testing.T) {
	storage, mock := newUnorderedMockStorage(t)
	defer mock.Close()
	repo := &saleRepository{storage: storage}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM sales s`).WillReturnRows(pgxmockv3.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery(`SELECT COALESCE\(SUM`).WillReturnRows(pgxmockv3.NewRows([]string{"sum"}).AddRow("0"))
	mock.ExpectQuery(`ORDER BY s.data DESC`).WithArgs(5, 0).WillReturnRows(pgxmockv3.NewRows(saleCols))

	page, err := repo.List(context.Background(), model.SaleFilter{}, model.Page{Number: 1, Size: 5})
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.True(t, page.TotalAmount.IsZero())
}

func TestSaleRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &saleRepository{storage: storage}
	ctx := context.Background()
	now := time.Now()
	day := date("2024-01-01")

	mock.ExpectQuery("INSERT INTO sales").WithArgs(int64(1), day, "150").WillReturnRows(
		pgxmockv3.NewRows(saleCols).AddRow(int64(10), int64(1), "Ana Beatriz", day, "150.00", now, now))
	sale, err := repo.Create(ctx, model.Sale{CustomerID: 1, Date: day, Amount: decimal.RequireFromString("150.00")})
	require.NoError(t, err)
	assert.Equal(t, int64(10), sale.ID)
	assert.Equal(t, "Ana Beatriz", sale.CustomerName)
	assert.Equal(t, "150.00", sale.Amount.StringFixed(2))

	mock.ExpectQuery("INSERT INTO sales").WithArgs(int64(99), day, "10").WillReturnError(&pgconn.PgError{Code: "23503"})
	_, err = repo.Create(ctx, model.Sale{CustomerID: 99, Date: day, Amount: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)

	mock.ExpectQuery("INSERT INTO sales").WithArgs(int64(1), day, "10").WillReturnError(errors.New("insert"))
	_, err = repo.Create(ctx, model.Sale{CustomerID: 1, Date: day, Amount: decimal.NewFromInt(10)})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domainErrors.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepositoryUpdate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &saleRepository{storage: storage}
	ctx := context.Background()
	now := time.Now()
	day := date("2024-01-01")

	amount := decimal.RequireFromString("99.90")
	mock.ExpectQuery("UPDATE sales SET").WithArgs(int64(1), nil, nil, "99.9").WillReturnRows(
		pgxmockv3.NewRows(saleCols).AddRow(int64(1), int64(1), "Ana Beatriz", day, "99.90", now, now))
	sale, err := repo.Update(ctx, 1, model.SalePatch{Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, "99.90", sale.Amount.StringFixed(2))

	customerID := int64(2)
	mock.ExpectQuery("UPDATE sales SET").WithArgs(int64(1), customerID, day, nil).WillReturnRows(
		pgxmockv3.NewRows(saleCols).AddRow(int64(1), customerID, "Carlos Eduardo", day, "99.90", now, now))
	sale, err = repo.Update(ctx, 1, model.SalePatch{CustomerID: &customerID, Date: &day})
	require.NoError(t, err)
	assert.Equal(t, "Carlos Eduardo", sale.CustomerName)

	mock.ExpectQuery("UPDATE sales SET").WithArgs(int64(42), nil, nil, "99.9").WillReturnError(pgx.ErrNoRows)
	_, err = repo.Update(ctx, 42, model.SalePatch{Amount: &amount})
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)

	missing := int64(99)
	mock.ExpectQuery("UPDATE sales SET").WithArgs(int64(1), missing, nil, nil).WillReturnError(&pgconn.PgError{Code: "23503"})
	_, err = repo.Update(ctx, 1, model.SalePatch{CustomerID: &missing})
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepositoryDelete(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &saleRepository{storage: storage}
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM sales WHERE id=").WithArgs(int64(1)).WillReturnResult(pgxmockv3.NewResult("DELETE", 1))
	require.NoError(t, repo.Delete(ctx, 1))

	mock.ExpectExec("DELETE FROM sales WHERE id=").WithArgs(int64(2)).WillReturnResult(pgxmockv3.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.Delete(ctx, 2), domainErrors.ErrNotFound)

	mock.ExpectExec("DELETE FROM sales WHERE id=").WithArgs(int64(3)).WillReturnError(errors.New("delete"))
	assert.Error(t, repo.Delete(ctx, 3))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestParseMoney(t *testing.T) {
	v, err := parseMoney("133.3333333333333333")
	require.NoError(t, err)
	assert.Equal(t, "133.33", v.StringFixed(2))

	v, err = parseMoney("9999999999999999.99")
	require.NoError(t, err)
	assert.Equal(t, "9999999999999999.99", v.StringFixed(2))

	_, err = parseMoney("abc")
	assert.Error(t, err)
}

func TestSaleRepositoryRejectsMalformedAmount(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &saleRepository{storage: storage}
	now := time.Now()
	day := date("2024-01-01")

	mock.ExpectQuery("INSERT INTO sales").WithArgs(int64(1), day, "10").WillReturnRows(
		pgxmockv3.NewRows(saleCols).AddRow(int64(10), int64(1), "Ana Beatriz", day, "NaN?", now, now))
	_, err := repo.Create(context.Background(), model.Sale{CustomerID: 1, Date: day, Amount: decimal.NewFromInt(10)})
	assert.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
