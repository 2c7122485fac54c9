package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	fieldX    = "X"
	fieldO    = "O"
	fieldDraw = "Draw"
)

type redisStats struct {
	client *redis.Client
	key    string
}

// NewRedisStatsRepository keeps the stats in a hash with the fields X, O and Draw.
func NewRedisStatsRepository(client *redis.Client, key string) StatsRepository {
	return &redisStats{
		client: client,
		key:    key,
	}
}

func (that *redisStats) Load(ctx context.Context) (entity.Stats, error) {
	var stats entity.Stats

	res := that.client.HGetAll(ctx, that.key)
	if err := res.Err(); err != nil {
		return entity.Stats{}, fmt.Errorf("failed to get stats: %w", err)
	}

	if len(res.Val()) == 0 {
		return entity.Stats{}, ErrStatsNotFound
	}

	if err := res.Scan(&stats); err != nil {
		return entity.Stats{}, fmt.Errorf("failed to scan stats: %w", err)
	}

	return stats, nil
}

func (that *redisStats) Save(ctx context.Context, stats entity.Stats) error {
	err := that.client.HSet(ctx, that.key,
		fieldX, stats.X,
		fieldO, stats.O,
		fieldDraw, stats.Draw,
	).Err()
	if err != nil {
		return fmt.Errorf("failed to set stats: %w", err)
	}

	return nil
}
