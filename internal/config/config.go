// Package config loads CLI configuration from QUERYKIT_* environment variables.
package config

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/blockberries/querykit/signer"
)

// Config controls the querykit CLI.
type Config struct {
	Endpoint    string        `env:"QUERYKIT_ENDPOINT"     envDefault:"127.0.0.1:50051"`
	SignerSeed  string        `env:"QUERYKIT_SIGNER_SEED"`
	Creator     string        `env:"QUERYKIT_CREATOR"`
	DialTimeout time.Duration `env:"QUERYKIT_DIAL_TIMEOUT" envDefault:"5s"`
	LogLevel    string        `env:"QUERYKIT_LOG_LEVEL"    envDefault:"info"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Signer decodes SignerSeed (hex) into an Ed25519 keypair.
func (c Config) Signer() (*signer.Ed25519, error) {
	if c.SignerSeed == "" {
		return nil, fmt.Errorf("config: QUERYKIT_SIGNER_SEED is not set")
	}
	seed, err := hex.DecodeString(c.SignerSeed)
	if err != nil {
		return nil, fmt.Errorf("config: QUERYKIT_SIGNER_SEED: %w", err)
	}
	return signer.NewEd25519(seed)
}

// Logger returns a text logger writing to w at LogLevel.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return nil, fmt.Errorf("config: QUERYKIT_LOG_LEVEL: %w", err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}
