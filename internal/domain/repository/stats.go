package repository

import (
	"context"

	"github.com/polkiloo/toymix/internal/domain/model"
)

// StatsRepository runs read-only aggregate reports over sales.
type StatsRepository interface {
	DailyTotals(ctx context.Context) ([]model.DailyTotal, error)
	TopByVolume(ctx context.Context) (*model.ClientRanking, error)
	TopByAverage(ctx context.Context) (*model.ClientRanking, error)
	TopByFrequency(ctx context.Context) (*model.ClientRanking, error)
	Summary(ctx context.Context) (*model.Summary, error)
}
