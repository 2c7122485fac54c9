package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

var (
	ErrInvalidBoardSize = errors.New("board-size must be at least 1")
	ErrUnknownBackend   = errors.New("unknown stats backend")
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile   string `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:"tictactoe.log"`
	BoardSize int    `yaml:"board-size" env:"TICTACTOE_BOARD_SIZE" env-default:"3"`
	NoColor   bool   `yaml:"no-color" env:"TICTACTOE_NO_COLOR" env-default:"false"`
	Stats     Stats  `yaml:"stats"`
	Redis     Redis  `yaml:"redis"`
}

type Stats struct {
	Backend    string `yaml:"backend" env:"TICTACTOE_STATS_BACKEND" env-default:"file"`
	Path       string `yaml:"path" env:"TICTACTOE_STATS_PATH" env-default:"db/statsHistory.json"`
	SQLitePath string `yaml:"sqlite-path" env:"TICTACTOE_STATS_SQLITE_PATH" env-default:"db/stats.db"`
	Key        string `yaml:"key" env:"TICTACTOE_STATS_KEY" env-default:"tictactoe:stats"`
}

type Redis struct {
	Host string `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads the yaml file at path, or only the environment when path is empty.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("could not read env: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.BoardSize < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidBoardSize, that.BoardSize)
	}

	switch that.Stats.Backend {
	case BackendFile, BackendRedis, BackendSQLite:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, that.Stats.Backend)
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
