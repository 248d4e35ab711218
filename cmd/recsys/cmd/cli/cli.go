// Package cli holds the state and setup shared by the recsys subcommands.
package cli

import (
	"fmt"

	"go.uber.org/zap"

	"track-recommender/internal/app"
	"track-recommender/internal/app/common"
	appconfig "track-recommender/internal/app/config"
)

var (
	// Verbose enables debug logging
	Verbose bool
	// ConfigPath overrides the default configuration file location
	ConfigPath string
)

// LoadConfig reads the configuration file, falling back to defaults when it does not exist
func LoadConfig() (*appconfig.AppConfig, error) {
	path := ConfigPath
	if path == "" {
		path = appconfig.GetDefaultConfigPath()
	}
	cfg, err := appconfig.LoadOrDefault(path)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, nil
}

// NewLogger returns a console logger; debug output requires --verbose
func NewLogger() *zap.Logger {
	logger := common.MustNewLogger(true)
	if Verbose {
		return logger
	}
	return logger.WithOptions(zap.IncreaseLevel(zap.InfoLevel))
}

// Bootstrap loads configuration and builds the shared runtime. The returned
// cleanup closes the store and cache and flushes the logger.
func Bootstrap() (*app.Runtime, func(), error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	logger := NewLogger()
	rt, cleanup, err := app.InitializeRuntime(cfg, logger)
	if err != nil {
		logger.Sync()
		return nil, nil, err
	}
	return rt, func() {
		cleanup()
		logger.Sync()
	}, nil
}
