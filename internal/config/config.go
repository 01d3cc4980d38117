package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	API    API    `env-prefix:"KURS_API_"`
	Logger Logger `env-prefix:"KURS_LOG_"`
}

type API struct {
	BaseURL string        `env:"BASE_URL" env-default:"https://api.privatbank.ua/p24api"`
	Timeout time.Duration `env:"TIMEOUT" env-default:"30s"`
}

type Logger struct {
	Level           string `env:"LEVEL" env-default:"info"`
	ParsedSlogLevel slog.Level
}

// MustLoad loads config from the environment. There is no config file, the
// defaults reproduce the stock behavior.
func MustLoad() *Config {
	cnf := &Config{}

	if err := cleanenv.ReadEnv(cnf); err != nil {
		panic(fmt.Errorf("cannot read config: %w", err))
	}

	switch cnf.Logger.Level {
	case "debug":
		cnf.Logger.ParsedSlogLevel = slog.LevelDebug
	case "info":
		cnf.Logger.ParsedSlogLevel = slog.LevelInfo
	case "warn":
		cnf.Logger.ParsedSlogLevel = slog.LevelWarn
	case "error":
		cnf.Logger.ParsedSlogLevel = slog.LevelError
	default:
		cnf.Logger.ParsedSlogLevel = slog.LevelInfo
	}

	return cnf
}
