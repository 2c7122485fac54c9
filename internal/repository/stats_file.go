package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type fileStats struct {
	path string
}

// NewFileStatsRepository keeps the stats as a small JSON document at path.
func NewFileStatsRepository(path string) StatsRepository {
	return &fileStats{
		path: path,
	}
}

func (that *fileStats) Load(_ context.Context) (entity.Stats, error) {
	data, err := os.ReadFile(that.path)
	if errors.Is(err, fs.ErrNotExist) {
		return entity.Stats{}, ErrStatsNotFound
	}

	if err != nil {
		return entity.Stats{}, fmt.Errorf("failed to read stats file: %w", err)
	}

	var stats entity.Stats
	if err = json.Unmarshal(data, &stats); err != nil {
		return entity.Stats{}, fmt.Errorf("failed to unmarshal stats: %w", err)
	}

	return stats, nil
}

// Save replaces the file through a temp file and a rename, so a crash never leaves half a record.
func (that *fileStats) Save(_ context.Context, stats entity.Stats) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(that.path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create stats directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(that.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp stats file: %w", err)
	}

	tmpName := tmp.Name()
	defer func() {
		// no-op once the rename went through
		_ = os.Remove(tmpName)
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write stats: %w", err)
	}

	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync stats: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp stats file: %w", err)
	}

	if err = os.Rename(tmpName, that.path); err != nil {
		return fmt.Errorf("failed to replace stats file: %w", err)
	}

	return nil
}
