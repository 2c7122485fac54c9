package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type sqliteStats struct {
	conn *sql.DB
}

// NewSQLiteStatsRepository expects the table created by storage.SQLiteStorage.Init.
func NewSQLiteStatsRepository(conn *sql.DB) StatsRepository {
	return &sqliteStats{
		conn: conn,
	}
}

func (that *sqliteStats) Load(ctx context.Context) (entity.Stats, error) {
	query := `SELECT x_wins, o_wins, draws FROM stats WHERE id = 1`

	var stats entity.Stats

	err := that.conn.QueryRowContext(ctx, query).Scan(&stats.X, &stats.O, &stats.Draw)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Stats{}, ErrStatsNotFound
	}
	if err != nil {
		return entity.Stats{}, fmt.Errorf("can't load stats: %w", err)
	}

	return stats, nil
}

func (that *sqliteStats) Save(ctx context.Context, stats entity.Stats) error {
	query := `INSERT INTO stats (id, x_wins, o_wins, draws) VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET x_wins = excluded.x_wins, o_wins = excluded.o_wins, draws = excluded.draws`

	_, err := that.conn.ExecContext(ctx, query, stats.X, stats.O, stats.Draw)
	if err != nil {
		return fmt.Errorf("can't save stats: %w", err)
	}

	return nil
}
