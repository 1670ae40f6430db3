package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/polkiloo/toymix/internal/domain/model"
	"github.com/polkiloo/toymix/internal/domain/repository"
)

// StatsUseCase serves read-only dashboard reports.
type StatsUseCase struct {
	stats repository.StatsRepository
}

// NewStatsUseCase constructs StatsUseCase.
func NewStatsUseCase(stats repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{stats: stats}
}

// DailyTotals returns the sum of sales per day, oldest first.
func (u *StatsUseCase) DailyTotals(ctx context.Context) ([]model.DailyTotal, error) {
	totals, err := u.stats.DailyTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("daily totals: %w", err)
	}
	return totals, nil
}

// TopClients ranks customers by volume, average ticket and distinct purchase days.
func (u *StatsUseCase) TopClients(ctx context.Context) (*model.TopClients, error) {
	var top model.TopClients
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		top.ByVolume, err = u.stats.TopByVolume(gctx)
		return err
	})
	g.Go(func() (err error) {
		top.ByAverage, err = u.stats.TopByAverage(gctx)
		return err
	})
	g.Go(func() (err error) {
		top.ByFrequency, err = u.stats.TopByFrequency(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("top clients: %w", err)
	}
	return &top, nil
}

// Summary returns overall totals with the average ticket rounded to cents.
func (u *StatsUseCase) Summary(ctx context.Context) (*model.Summary, error) {
	s, err := u.stats.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	s.AverageTicket = decimal.Zero
	if s.SaleCount > 0 {
		s.AverageTicket = s.TotalAmount.Div(decimal.NewFromInt(s.SaleCount)).Round(2)
	}
	return s, nil
}
