package app

import (
	"fmt"

	"go.uber.org/zap"

	"yolo-transcript/internal/app/logging"
	"yolo-transcript/internal/config"
)

// Bootstrap loads .env and the environment into a Config and builds the
// logger. strict runs Config.Validate, which commands that only touch the
// database skip.
func Bootstrap(strict, verbose bool) (*config.Config, *zap.Logger, error) {
	envPath, err := config.LoadEnv()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	logger, err := logging.NewLogger(logging.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Development: !cfg.IsProduction(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	if envPath != "" {
		logger.Debug("loaded environment file", zap.String("path", envPath))
	}

	if strict {
		if err := cfg.Validate(); err != nil {
			_ = logger.Sync()
			return nil, nil, err
		}
	}
	return cfg, logger, nil
}
