package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-warband/internal/errors"
)

// Log formats accepted by --log-format
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds flag defaults read from the environment
type Config struct {
	Tick      time.Duration `env:"WARBAND_TICK" envDefault:"500ms"`
	Duration  time.Duration `env:"WARBAND_DURATION" envDefault:"5s"`
	Rounds    int           `env:"WARBAND_ROUNDS" envDefault:"3"`
	LogFormat string        `env:"WARBAND_LOG_FORMAT" envDefault:"text"`
	LogLevel  string        `env:"WARBAND_LOG_LEVEL" envDefault:"info"`
}

// Validate checks the values a skirmish run depends on
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidatePositiveDuration("Tick", c.Tick, vb)
	errors.ValidatePositiveDuration("Duration", c.Duration, vb)
	errors.ValidateMin("Rounds", c.Rounds, 1, vb)
	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		vb.Fieldf("LogFormat", "must be %q or %q", LogFormatText, LogFormatJSON)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		vb.Field("LogLevel", err.Error())
	}

	return vb.Build()
}

func loadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, errors.InvalidArgumentf("unknown log level %q", s)
	}
	return level, nil
}

// newLogger builds the process logger. Combat events are logged at debug.
func newLogger(w io.Writer, cfg *Config) *slog.Logger {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
