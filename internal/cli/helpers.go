/*
Package cli implements the command-line interface for deal-hub.

Each command is implemented as a separate function that returns a
*cobra.Command, allowing for clean separation and easy testing.
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/slicehub/deal-hub/internal/config"
	"github.com/slicehub/deal-hub/internal/orderapi"
	"github.com/slicehub/deal-hub/internal/profile"
	"github.com/slicehub/deal-hub/internal/storage"
)

// loadConfig reads ~/.deal-hub.json, falling back to defaults when no
// config exists yet. Any other load error is returned as-is.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		var notFound *config.ConfigNotFoundError
		if errors.As(err, &notFound) {
			return config.NewConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// openContainer opens the profile database and loads the state container
// over it. The returned close function releases the database.
func openContainer(cfg *config.Config) (*profile.Container, func(), error) {
	dbPath, err := profileDBPath(cfg)
	if err != nil {
		return nil, nil, err
	}

	store := storage.NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	container := profile.NewContainer(store)
	return container, func() { store.Close() }, nil
}

// profileDBPath resolves the profile database location from the config's
// data directory, defaulting to ~/.deal-hub/profile.db.
func profileDBPath(cfg *config.Config) (string, error) {
	if cfg.DataDir != "" {
		return filepath.Join(cfg.DataDir, "profile.db"), nil
	}
	return storage.DefaultPath()
}

// apiClient builds the ordering-API client from config.
func apiClient(cfg *config.Config) *orderapi.Client {
	httpClient := &http.Client{
		Timeout: time.Duration(cfg.TimeoutSeconds()) * time.Second,
	}
	return orderapi.New(cfg.APIBaseURL, httpClient)
}

// apiContext returns a context bounding one ordering-API call.
func apiContext(cfg *config.Config) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(cfg.TimeoutSeconds())*time.Second)
}

// resolveStoreID picks the store id from the argument list or the
// configured default.
func resolveStoreID(cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if cfg.DefaultStoreID != "" {
		return cfg.DefaultStoreID, nil
	}
	return "", fmt.Errorf("no store id given and no defaultStoreId configured (run 'deal-hub setup --store <id>')")
}
