package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

func TestFileStatsRepository_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Load_NotFound", func(t *testing.T) {
		// Given: a path with no file behind it
		repo := NewFileStatsRepository(filepath.Join(t.TempDir(), "statsHistory.json"))

		// When: Load is called
		stats, err := repo.Load(ctx)

		// Then: ErrStatsNotFound is returned with a zero record
		require.ErrorIs(t, err, ErrStatsNotFound)
		assert.Equal(t, entity.Stats{}, stats)
	})

	t.Run("Load_Existing", func(t *testing.T) {
		// Given: a stats file written by an earlier version of the game
		path := filepath.Join(t.TempDir(), "statsHistory.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"X": 4, "O": 2, "Draw": 7}`), 0o600))
		repo := NewFileStatsRepository(path)

		// When: Load is called
		stats, err := repo.Load(ctx)

		// Then: the record is decoded
		require.NoError(t, err)
		assert.Equal(t, entity.Stats{X: 4, O: 2, Draw: 7}, stats)
	})

	t.Run("Load_Corrupt", func(t *testing.T) {
		// Given: a file that is not JSON
		path := filepath.Join(t.TempDir(), "statsHistory.json")
		require.NoError(t, os.WriteFile(path, []byte("X=4"), 0o600))
		repo := NewFileStatsRepository(path)

		// When: Load is called
		stats, err := repo.Load(ctx)

		// Then: an error other than ErrStatsNotFound is returned
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrStatsNotFound)
		assert.Equal(t, entity.Stats{}, stats)
	})
}

func TestFileStatsRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Save_CreatesDirectory", func(t *testing.T) {
		// Given: a path inside a directory that does not exist yet
		dir := filepath.Join(t.TempDir(), "db")
		path := filepath.Join(dir, "statsHistory.json")
		repo := NewFileStatsRepository(path)

		// When: Save is called
		err := repo.Save(ctx, entity.Stats{X: 1})

		// Then: the file holds the indented record and no temp files remain
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"X\": 1,\n  \"O\": 0,\n  \"Draw\": 0\n}\n", string(data))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("Save_RoundTripKeepsBytes", func(t *testing.T) {
		// Given: a saved record
		path := filepath.Join(t.TempDir(), "statsHistory.json")
		repo := NewFileStatsRepository(path)
		require.NoError(t, repo.Save(ctx, entity.Stats{X: 2, O: 3, Draw: 5}))
		before, err := os.ReadFile(path)
		require.NoError(t, err)

		// When: the loaded record is written back
		stats, err := repo.Load(ctx)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, stats))

		// Then: the bytes on disk are the same
		after, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("Save_Overwrites", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "statsHistory.json")
		repo := NewFileStatsRepository(path)
		require.NoError(t, repo.Save(ctx, entity.Stats{X: 1}))

		require.NoError(t, repo.Save(ctx, entity.Stats{O: 9}))

		stats, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.Stats{O: 9}, stats)
	})
}
