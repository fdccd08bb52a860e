package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the host-side defaults used when running WaitAll calls.
type Config struct {
	DefaultTimeout time.Duration `env:"DEFAULT_TIMEOUT" envDefault:"5s"`

	// MaxWorkers bounds concurrently running operations; 0 means unbounded.
	MaxWorkers int `env:"MAX_WORKERS" envDefault:"0"`

	// RatePerSecond limits how fast operations start; 0 disables limiting.
	RatePerSecond float64 `env:"RATE_PER_SECOND" envDefault:"0"`
	Burst         int     `env:"BURST" envDefault:"1"`

	CancelOnTimeout bool `env:"CANCEL_ON_TIMEOUT" envDefault:"false"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	MetricsNamespace string `env:"METRICS_NAMESPACE" envDefault:"waitall"`
}

const envPrefix = "WAITALL_"

// Load reads the given .env files (if any) into the process environment and
// parses WAITALL_* variables into a Config. Variables already set in the
// environment win over the files.
//
// Example:
//
//	cfg, err := config.Load(".env")
//	if err != nil {
//		// Handle error
//	}
func Load(paths ...string) (Config, error) {
	if len(paths) > 0 {
		if err := godotenv.Load(paths...); err != nil {
			return Config{}, errors.Join(ErrLoadingEnvFile, err)
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad(paths ...string) Config {
	cfg, err := Load(paths...)
	if err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
	return cfg
}

func (c Config) Validate() error {
	switch {
	case c.DefaultTimeout < 0:
		return fmt.Errorf("%w: negative default timeout %s", ErrInvalidConfig, c.DefaultTimeout)
	case c.MaxWorkers < 0:
		return fmt.Errorf("%w: negative max workers %d", ErrInvalidConfig, c.MaxWorkers)
	case c.RatePerSecond < 0:
		return fmt.Errorf("%w: negative rate %v", ErrInvalidConfig, c.RatePerSecond)
	case c.RatePerSecond > 0 && c.Burst <= 0:
		return fmt.Errorf("%w: burst must be positive when rate is set", ErrInvalidConfig)
	}
	return nil
}
