// Package handlers contains application use case handlers.
package handlers

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ersonp/dex/internal/infrastructure/config"
)

// InitHandler handles workspace initialization.
type InitHandler struct {
	logger *zap.Logger
}

// NewInitHandler creates a new init handler.
func NewInitHandler(logger *zap.Logger) *InitHandler {
	return &InitHandler{
		logger: logger,
	}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath string
	DataPath   string
}

// Handle writes a configuration under basePath. An empty dataPath keeps the
// commented default file; otherwise the defaults are written with data.path
// set to dataPath.
func (h *InitHandler) Handle(basePath, dataPath string) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("dex already initialized in %s", basePath)
	}

	if dataPath == "" {
		if err := config.WriteDefault(basePath); err != nil {
			return nil, fmt.Errorf("writing default config: %w", err)
		}
	} else {
		cfg := config.Default()
		cfg.Data.Path = dataPath
		if err := config.Write(basePath, cfg); err != nil {
			return nil, fmt.Errorf("writing config: %w", err)
		}
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	result := &InitResult{
		ConfigPath: config.ConfigFilePath(basePath),
		DataPath:   config.ResolvePath(basePath, cfg.Data.Path),
	}
	h.logger.Info("initialized workspace",
		zap.String("config", result.ConfigPath),
		zap.String("data", result.DataPath))

	return result, nil
}
