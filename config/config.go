// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime"

	"github.com/Not-Sarthak/vault-anchor/internal/logging"
	"github.com/Not-Sarthak/vault-anchor/pebble"
	"github.com/Not-Sarthak/vault-anchor/server"
	"github.com/Not-Sarthak/vault-anchor/trace"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Log   logging.Config `json:"log"`
	Trace trace.Config   `json:"trace"`

	// Storage
	DataDir  string        `json:"dataDir"`
	InMemory bool          `json:"inMemory"`
	Pebble   pebble.Config `json:"pebble"`

	// Genesis file applied to an empty database. The default genesis is
	// used when unset.
	GenesisFile string `json:"genesisFile"`

	// Execution
	ExecutionConcurrency int `json:"executionConcurrency"`
	MaxBatchSize         int `json:"maxBatchSize"`

	// RPC
	ListenAddress  string            `json:"listenAddress"`
	AllowedOrigins []string          `json:"allowedOrigins"`
	Compress       bool              `json:"compress"`
	HTTP           server.HTTPConfig `json:"http"`
}

func NewDefaultConfig() Config {
	return Config{
		Log: logging.NewDefaultConfig(),
		Trace: trace.Config{
			Enabled:    false,
			SampleRate: 1,
			Endpoint:   trace.DefaultEndpoint,
			AppName:    "vaultd",
		},
		DataDir:              ".vaultd",
		Pebble:               pebble.NewDefaultConfig(),
		ExecutionConcurrency: runtime.NumCPU(),
		MaxBatchSize:         256,
		ListenAddress:        "127.0.0.1:9650",
		AllowedOrigins:       []string{"*"},
		Compress:             true,
		HTTP:                 server.NewDefaultHTTPConfig(),
	}
}

// New applies the JSON document [b] over the defaults.
func New(b []byte) (*Config, error) {
	c := NewDefaultConfig()
	if len(b) > 0 {
		if err := json.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if err := c.Verify(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Verify() error {
	switch {
	case c.ExecutionConcurrency < 1:
		return fmt.Errorf("%w: executionConcurrency must be positive", ErrInvalidConfig)
	case c.MaxBatchSize < 1:
		return fmt.Errorf("%w: maxBatchSize must be positive", ErrInvalidConfig)
	case !c.InMemory && c.DataDir == "":
		return fmt.Errorf("%w: dataDir is required unless inMemory is set", ErrInvalidConfig)
	case c.ListenAddress == "":
		return fmt.Errorf("%w: listenAddress is required", ErrInvalidConfig)
	case c.HTTP.ShutdownTimeout <= 0:
		return fmt.Errorf("%w: http.shutdownTimeout must be positive", ErrInvalidConfig)
	default:
		return nil
	}
}
