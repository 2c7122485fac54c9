package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	app "github.com/rocketscienceinc/tictactoe-cli/internal"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
)

const defaultConfigPath = "./config.yml"

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "", "path to the config file (default ./config.yml, or $CONFIG_PATH)")
	flag.Parse()

	conf := initConfig(*configPath)

	logger, closer, err := app.NewLogger(conf)
	if err != nil {
		panic(fmt.Errorf("logger init failed: %w", err))
	}
	defer closer.Close()

	if err = app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig(path string) *config.Config {
	// a missing .env is fine, the values may come from the real environment
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err != nil {
			// no config file at all: defaults and environment only
			return config.MustLoad("")
		}
		path = defaultConfigPath
	}

	return config.MustLoad(path)
}
