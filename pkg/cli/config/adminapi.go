package config

import (
	"log/slog"
	"time"

	"github.com/secmon-lab/o365ops/pkg/service/adminapi"
	"github.com/urfave/cli/v3"
)

// AdminAPI holds admin portal client configuration
type AdminAPI struct {
	Timeout time.Duration
}

// Flags returns CLI flags for AdminAPI configuration
func (a *AdminAPI) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "Timeout of each admin API request",
			Category:    "Admin API",
			Value:       adminapi.DefaultTimeout,
			Sources:     cli.EnvVars("O365OPS_TIMEOUT"),
			Destination: &a.Timeout,
		},
	}
}

// Configure creates the admin API client
func (a *AdminAPI) Configure() *adminapi.Client {
	return adminapi.New(adminapi.WithTimeout(a.Timeout))
}

// LogValue returns structured log value
func (a AdminAPI) LogValue() slog.Value {
	return slog.GroupValue(slog.Duration("timeout", a.Timeout))
}
