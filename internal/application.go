package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	statsRepo, closeStorage, err := NewStatsRepository(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not open stats storage: %w", err)
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close stats storage", "error", err)
		}
	}()

	game, err := tictactoe.NewGame(conf.BoardSize)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	statsStore := usecase.NewStatsStore(logger, statsRepo)

	interactive := console.IsTerminal(os.Stdout)
	gameConsole := console.New(logger, game, statsStore, os.Stdin, os.Stdout, console.Options{
		Color:       interactive && !conf.NoColor,
		ClearScreen: interactive,
	})

	log.Info("Starting console", "board_size", conf.BoardSize, "stats_backend", conf.Stats.Backend)

	if err = gameConsole.Start(ctx); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	return nil
}

// NewStatsRepository opens the storage picked by conf.Stats.Backend. The returned func releases it.
func NewStatsRepository(ctx context.Context, conf *config.Config) (repository.StatsRepository, func() error, error) {
	switch conf.Stats.Backend {
	case config.BackendRedis:
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisStatsRepository(redisStorage.Connection, conf.Stats.Key), redisStorage.Close, nil
	case config.BackendSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.Stats.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLiteStatsRepository(sqliteStorage.Connection), sqliteStorage.Close, nil
	default:
		return repository.NewFileStatsRepository(conf.Stats.Path), func() error { return nil }, nil
	}
}

// NewLogger builds the JSON logger. Logs go to a file so they don't mix with the board.
func NewLogger(conf *config.Config) (*slog.Logger, io.Closer, error) {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var out io.WriteCloser = nopCloser{os.Stderr}
	if conf.LogFile != "" {
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open log file: %w", err)
		}
		out = file
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})), out, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
