// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds settings shared by all commands. Command-line flags take
// precedence over these values.
type Config struct {
	Variant  string `env:"YAKUSTAT_VARIANT" envDefault:"four"`
	Workers  int    `env:"YAKUSTAT_WORKERS" envDefault:"0"`
	Reveal   bool   `env:"YAKUSTAT_REVEAL" envDefault:"false"`
	SeatWind string `env:"YAKUSTAT_SEAT_WIND"`
	LogLevel string `env:"YAKUSTAT_LOG_LEVEL" envDefault:"info"`
	DB       string `env:"YAKUSTAT_DB"`
}

// Load reads dotenv files (missing ones are ignored) and parses the
// environment. With no files given it tries .env in the working directory.
func Load(dotenv ...string) (Config, error) {
	if len(dotenv) == 0 {
		dotenv = []string{".env"}
	}
	for _, f := range dotenv {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges that struct tags cannot express.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("YAKUSTAT_WORKERS must be >= 0, got %d", c.Workers)
	}
	if len(c.SeatWind) > 1 {
		return fmt.Errorf("YAKUSTAT_SEAT_WIND must be a single tile code, got %q", c.SeatWind)
	}
	return nil
}

// SeatWindCode returns the seat wind code, or zero for the family default.
func (c Config) SeatWindCode() byte {
	if c.SeatWind == "" {
		return 0
	}
	return c.SeatWind[0]
}
