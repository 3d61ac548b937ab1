// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level        string `json:"level"`
	DisplayLevel string `json:"displayLevel"`
	// One of auto, plain, colors or json.
	Format string `json:"format"`

	// Directory holds rotated log files. When empty logs only go to stderr.
	Directory string `json:"directory"`
	MaxSize   int    `json:"maxSize"` // megabytes
	MaxFiles  int    `json:"maxFiles"`
	MaxAge    int    `json:"maxAge"` // days
	Compress  bool   `json:"compress"`

	// Quiet mutes stderr.
	Quiet bool `json:"quiet"`
}

func NewDefaultConfig() Config {
	return Config{
		Level:        "info",
		DisplayLevel: "info",
		Format:       "auto",
		MaxSize:      8,
		MaxFiles:     7,
		MaxAge:       0,
		Compress:     true,
	}
}

// New returns a logger named [name] writing to stderr and, if a directory is
// configured, to a rotating file [name].log inside it.
func New(name string, cfg Config) (logging.Logger, error) {
	level, err := logging.ToLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	displayLevel, err := logging.ToLevel(cfg.DisplayLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid display level: %w", err)
	}
	format, err := logging.ToFormat(cfg.Format, os.Stderr.Fd())
	if err != nil {
		return nil, err
	}

	var console io.WriteCloser = os.Stderr
	if cfg.Quiet {
		console = discardWriteCloser{io.Discard}
	}
	consoleCore := logging.NewWrappedCore(displayLevel, console, format.ConsoleEncoder())
	consoleCore.WriterDisabled = cfg.Quiet
	cores := []logging.WrappedCore{consoleCore}

	if cfg.Directory != "" {
		rw := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Directory, name+".log"),
			MaxSize:    cfg.MaxSize,
			MaxAge:     cfg.MaxAge,
			MaxBackups: cfg.MaxFiles,
			Compress:   cfg.Compress,
		}
		cores = append(cores, logging.NewWrappedCore(level, rw, format.FileEncoder()))
	}
	return logging.NewLogger(format.WrapPrefix(name), cores...), nil
}

type discardWriteCloser struct {
	io.Writer
}

func (discardWriteCloser) Close() error {
	return nil
}
