package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/o365ops/pkg/cli/config"
	"github.com/secmon-lab/o365ops/pkg/domain/model"
	"github.com/secmon-lab/o365ops/pkg/repository"
	"github.com/urfave/cli/v3"
)

func cmdConfig() *cli.Command {
	var (
		path  string
		force bool
	)

	pathFlag := &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Usage:       "Configuration file (.json with comments, .yaml or .yml)",
		Value:       config.DefaultConfigPath,
		Sources:     cli.EnvVars("O365OPS_CONFIG"),
		Destination: &path,
	}

	initCmd := &cli.Command{
		Name:  "init",
		Usage: "Write an empty configuration file",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "Overwrite an existing file",
				Destination: &force,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if _, err := os.Stat(path); err == nil && !force {
				return goerr.New("config file already exists, use --force to overwrite", goerr.V("path", path))
			}

			if err := repository.WriteConfigFile(path, model.DefaultConfig()); err != nil {
				return err
			}
			ctxlog.From(ctx).Info("Config file created", "path", path)
			return nil
		},
	}

	validate := &cli.Command{
		Name:  "validate",
		Usage: "Check that the configuration file loads and is consistent",
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := repository.LoadConfigFile(path)
			if err != nil {
				return err
			}

			withUserManagement := 0
			for _, sub := range cfg.Subscriptions {
				if sub.HasUserManagement() {
					withUserManagement++
				}
			}
			return printJSON(c, map[string]any{
				"valid":                true,
				"subscriptions":        len(cfg.Subscriptions),
				"with_user_management": withUserManagement,
				"webhook_configured":   cfg.Notification.WebhookURL != "",
			})
		},
	}

	return &cli.Command{
		Name:     "config",
		Usage:    "Manage the configuration file",
		Flags:    []cli.Flag{pathFlag},
		Commands: []*cli.Command{initCmd, validate},
	}
}
