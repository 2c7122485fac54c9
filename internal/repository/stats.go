package repository

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var ErrStatsNotFound = errors.New("stats history not found")

// StatsRepository stores one cumulative stats record.
type StatsRepository interface {
	Load(ctx context.Context) (entity.Stats, error)
	Save(ctx context.Context, stats entity.Stats) error
}
