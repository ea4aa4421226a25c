package cli

import (
	"context"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/o365ops/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdNotify() *cli.Command {
	var runtimeCfg runtimeConfig

	send := &cli.Command{
		Name:      "send",
		Usage:     "Send a message to the notification webhook",
		ArgsUsage: "MESSAGE",
		Action: func(ctx context.Context, c *cli.Command) error {
			message := strings.Join(c.Args().Slice(), " ")
			if strings.TrimSpace(message) == "" {
				return goerr.New("MESSAGE is required")
			}

			rt, err := runtimeCfg.build(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close() }()

			if err := rt.notifier.Notify(ctx, message); err != nil {
				return fail(ctx, c, err)
			}
			return printJSON(c, map[string]bool{"delivered": true})
		},
	}

	checkExpiry := &cli.Command{
		Name:  "check-expiry",
		Usage: "Notify about expired subscriptions and those expiring soon",
		Action: func(ctx context.Context, c *cli.Command) error {
			rt, err := runtimeCfg.build(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close() }()

			var opts []usecase.MonitorOption
			if days := runtimeCfg.notification.WarningDays; days > 0 {
				opts = append(opts, usecase.WithWarningDays(days))
			}

			notices, err := usecase.NewMonitor(rt.store, rt.notifier, opts...).CheckExpirations(ctx, time.Now())
			if err != nil {
				return fail(ctx, c, err)
			}
			return printJSON(c, notices)
		},
	}

	return &cli.Command{
		Name:     "notify",
		Usage:    "Webhook notifications",
		Flags:    runtimeCfg.Flags(),
		Commands: []*cli.Command{send, checkExpiry},
	}
}
