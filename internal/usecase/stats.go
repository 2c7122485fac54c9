package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
)

type statsRepo interface {
	Load(ctx context.Context) (entity.Stats, error)
	Save(ctx context.Context, stats entity.Stats) error
}

// StatsStore keeps the stats history across sessions. Reads never fail; a broken history counts as empty.
type StatsStore struct {
	logger    *slog.Logger
	statsRepo statsRepo
}

func NewStatsStore(logger *slog.Logger, statsRepo statsRepo) *StatsStore {
	return &StatsStore{
		logger:    logger.With("component", "stats"),
		statsRepo: statsRepo,
	}
}

// Load returns the persisted record, or a zero record when there is none or it can't be read.
func (that *StatsStore) Load(ctx context.Context) entity.Stats {
	log := that.logger.With("method", "Load")

	stats, err := that.statsRepo.Load(ctx)
	if errors.Is(err, repository.ErrStatsNotFound) {
		log.Info("no stats history yet")
		return entity.Stats{}
	}

	if err != nil {
		log.Error("failed to load stats history", "error", fmt.Errorf("%w: %w", apperror.ErrStatsLoad, err))
		return entity.Stats{}
	}

	if !stats.IsValid() {
		log.Error("stats history is corrupt", "error", apperror.ErrStatsLoad, "stats", stats)
		return entity.Stats{}
	}

	return stats
}

// Save adds the session record to the persisted one and writes the sum back.
func (that *StatsStore) Save(ctx context.Context, session entity.Stats) error {
	log := that.logger.With("method", "Save")

	updated := that.Load(ctx).Add(session)

	if err := that.statsRepo.Save(ctx, updated); err != nil {
		err = fmt.Errorf("%w: %w", apperror.ErrStatsSave, err)
		log.Error("failed to save stats history", "error", err)

		return err
	}

	log.Info("stats history saved", "x", updated.X, "o", updated.O, "draw", updated.Draw)

	return nil
}
