package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ersonp/dex/internal/application/handlers"
	"github.com/ersonp/dex/internal/domain/services"
	"github.com/ersonp/dex/internal/infrastructure/config"
	"github.com/ersonp/dex/internal/infrastructure/relationaldb/sqlite"
)

// Deps holds high-level dependencies for commands.
type Deps struct {
	Config   *config.Config
	BasePath string
	Load     *handlers.LoadResult
	Lookup   *handlers.LookupHandler
}

// withDeps loads the catalog and calls fn. A failed load is reported as a
// warning and fn still runs against whatever the catalog holds, so lookups
// simply miss.
func withDeps(cmd *cobra.Command, fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg := appConfig
	if cfg == nil {
		if cfg, err = config.Load(cwd); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	catalog := services.NewCatalog()
	loadResult, err := handlers.NewLoadHandler(catalog, logger).Handle(dataPath(cwd, cfg))
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}

	return fn(&Deps{
		Config:   cfg,
		BasePath: cwd,
		Load:     loadResult,
		Lookup:   handlers.NewLookupHandler(catalog, logger),
	})
}

// dataPath picks the catalog source: --data flag first, then config.
func dataPath(basePath string, cfg *config.Config) string {
	if globalData != "" {
		return globalData
	}
	return config.ResolvePath(basePath, cfg.Data.Path)
}

// withSnapshotHandler opens the SQLite store at path and calls fn. The store
// is closed afterwards; a close failure is returned when fn succeeded.
func withSnapshotHandler(path string, fn func(*handlers.SnapshotHandler) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating snapshot directory: %w", err)
	}

	repo, err := sqlite.NewRepository(config.SQLiteConfig{Path: path})
	if err != nil {
		return fmt.Errorf("creating sqlite repository: %w", err)
	}

	handler := handlers.NewSnapshotHandler(repo, logger)
	defer func() {
		if cerr := handler.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return fn(handler)
}
