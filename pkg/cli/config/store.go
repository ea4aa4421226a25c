package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/o365ops/pkg/domain/interfaces"
	"github.com/secmon-lab/o365ops/pkg/repository"
	"github.com/urfave/cli/v3"
)

// DefaultConfigPath is the configuration file used when none is given
const DefaultConfigPath = "config.json"

// Store selects the subscription store: Firestore when a project is set, otherwise the
// configuration file.
type Store struct {
	ConfigPath string
	ProjectID  string
	DatabaseID string
}

// Flags returns CLI flags for Store configuration
func (s *Store) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Configuration file (.json with comments, .yaml or .yml)",
			Category:    "Store",
			Value:       DefaultConfigPath,
			Sources:     cli.EnvVars("O365OPS_CONFIG"),
			Destination: &s.ConfigPath,
		},
		&cli.StringFlag{
			Name:        "firestore-project",
			Usage:       "GCP project ID for Firestore; overrides --config",
			Category:    "Store",
			Sources:     cli.EnvVars("O365OPS_FIRESTORE_PROJECT"),
			Destination: &s.ProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database",
			Usage:       "Firestore database ID",
			Category:    "Store",
			Value:       "(default)",
			Sources:     cli.EnvVars("O365OPS_FIRESTORE_DATABASE"),
			Destination: &s.DatabaseID,
		},
	}
}

// Configure creates and returns the subscription store
func (s *Store) Configure(ctx context.Context) (interfaces.SubscriptionStore, error) {
	logger := ctxlog.From(ctx)

	if s.IsFirestore() {
		store, err := repository.NewFirestore(ctx, s.ProjectID, s.DatabaseID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to init firestore",
				goerr.V("project", s.ProjectID),
				goerr.V("database", s.DatabaseID),
			)
		}
		return store, nil
	}

	if s.ConfigPath == "" {
		logger.Warn("No config file given, using memory store. The data will be removed when shutting down")
		return repository.NewMemory(), nil
	}

	store, err := repository.NewFile(ctx, s.ConfigPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open config file", goerr.V("path", s.ConfigPath))
	}
	return store, nil
}

// IsFirestore checks if Firestore is configured
func (s *Store) IsFirestore() bool {
	return s.ProjectID != ""
}

// LogValue returns structured log value
func (s Store) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("config", s.ConfigPath),
		slog.String("project", s.ProjectID),
		slog.String("database", s.DatabaseID),
	)
}
