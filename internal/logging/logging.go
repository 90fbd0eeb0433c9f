// Package logging builds the zap loggers used by bigfive.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/bigfive/internal/config"
)

// New builds a logger from cfg that writes to the given paths. zap accepts
// "stderr", "stdout" or file paths. A console format selects the
// human-readable development encoder.
func New(cfg config.LogConfig, paths ...string) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if cfg.Level != "" {
		l, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = l
	}

	zc := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	if len(paths) > 0 {
		zc.OutputPaths = paths
		zc.ErrorOutputPaths = paths
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// ForTUI builds a file logger so output never lands on the alternate screen.
// cfg.File overrides the default location.
func ForTUI(cfg config.LogConfig) (*zap.Logger, error) {
	path := cfg.File
	if path == "" {
		p, err := DefaultLogPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	return New(cfg, path)
}

// ForServer builds a logger writing to stderr.
func ForServer(cfg config.LogConfig) (*zap.Logger, error) {
	return New(cfg, "stderr")
}

// DefaultLogPath resolves the TUI log file:
// 1. $XDG_STATE_HOME/bigfive/bigfive.log
// 2. ~/.local/state/bigfive/bigfive.log
func DefaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "bigfive", "bigfive.log"), nil
}
