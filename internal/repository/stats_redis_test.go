package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/testing/suite"
)

const testStatsKey = "tictactoe:stats"

func TestRedisStatsRepository_Load(t *testing.T) {
	t.Run("Load_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		repo := NewRedisStatsRepository(st.Redis, testStatsKey)

		// When: Load is called before anything was saved
		stats, err := repo.Load(ctx)

		// Then: ErrStatsNotFound is returned
		require.ErrorIs(t, err, ErrStatsNotFound)
		assert.Equal(t, entity.Stats{}, stats)
	})

	t.Run("Load_Corrupt", func(t *testing.T) {
		ctx, st := suite.New(t)

		repo := NewRedisStatsRepository(st.Redis, testStatsKey)

		// Given: a hash with a non-numeric counter
		require.NoError(t, st.Redis.HSet(ctx, testStatsKey, "X", "lots").Err())

		// When: Load is called
		_, err := repo.Load(ctx)

		// Then: the scan error is returned
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrStatsNotFound)
	})
}

func TestRedisStatsRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	repo := NewRedisStatsRepository(st.Redis, testStatsKey)

	// Given: a saved record
	err := repo.Save(ctx, entity.Stats{X: 2, O: 1, Draw: 4})
	require.NoError(t, err)

	// When: Load is called
	stats, err := repo.Load(ctx)

	// Then: the record matches and the hash carries readable fields
	require.NoError(t, err)
	assert.Equal(t, entity.Stats{X: 2, O: 1, Draw: 4}, stats)

	draws, err := st.Redis.HGet(ctx, testStatsKey, "Draw").Int()
	require.NoError(t, err)
	assert.Equal(t, 4, draws)
}
