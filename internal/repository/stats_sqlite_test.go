package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository/storage"
)

func newSQLiteRepo(t *testing.T) StatsRepository {
	t.Helper()

	st, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "db", "stats.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})

	require.NoError(t, st.Init(context.Background()))

	return NewSQLiteStatsRepository(st.Connection)
}

func TestSQLiteStatsRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Load_NotFound", func(t *testing.T) {
		repo := newSQLiteRepo(t)

		// When: Load is called on an empty table
		stats, err := repo.Load(ctx)

		// Then: ErrStatsNotFound is returned
		require.ErrorIs(t, err, ErrStatsNotFound)
		assert.Equal(t, entity.Stats{}, stats)
	})

	t.Run("Save_Then_Load", func(t *testing.T) {
		repo := newSQLiteRepo(t)

		// Given: two saves in a row
		require.NoError(t, repo.Save(ctx, entity.Stats{X: 1, Draw: 2}))
		require.NoError(t, repo.Save(ctx, entity.Stats{X: 3, O: 1, Draw: 2}))

		// When: Load is called
		stats, err := repo.Load(ctx)

		// Then: the last saved record is returned
		require.NoError(t, err)
		assert.Equal(t, entity.Stats{X: 3, O: 1, Draw: 2}, stats)
	})
}
