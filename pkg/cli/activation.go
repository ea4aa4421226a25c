package cli

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/o365ops/pkg/domain/types"
	"github.com/secmon-lab/o365ops/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdActivation() *cli.Command {
	var (
		runtimeCfg     runtimeConfig
		subscriptionID string
		notify         bool
	)

	flags := joinFlags(
		[]cli.Flag{
			subscriptionFlag(&subscriptionID),
			&cli.BoolFlag{
				Name:        "notify",
				Usage:       "Send the result to the notification webhook",
				Destination: &notify,
			},
		},
		runtimeCfg.Flags(),
	)

	// run queries activation and, with --notify, delivers the rendered message.
	// A failed delivery is logged and does not fail the command.
	run := func(ctx context.Context, c *cli.Command, query func(uc *usecase.Activation, subID types.SubscriptionID) (any, string, error)) error {
		rt, err := runtimeCfg.build(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = rt.Close() }()

		uc := usecase.NewActivation(rt.store, rt.admin, rt.notifier)
		result, message, err := query(uc, types.SubscriptionID(subscriptionID))
		if err != nil {
			return fail(ctx, c, err)
		}

		if notify {
			if err := rt.notifier.Notify(ctx, message); err != nil {
				ctxlog.From(ctx).Warn("Failed to send activation notification", "error", err)
			}
		}
		return printJSON(c, result)
	}

	all := &cli.Command{
		Name:  "all",
		Usage: "Query activation of every user with at least one signal",
		Action: func(ctx context.Context, c *cli.Command) error {
			return run(ctx, c, func(uc *usecase.Activation, subID types.SubscriptionID) (any, string, error) {
				batch, err := uc.QueryAll(ctx, subID)
				if err != nil {
					return nil, "", err
				}
				return batch, usecase.FormatBatchActivationMessage(batch.SubscriptionName, batch), nil
			})
		},
	}

	user := &cli.Command{
		Name:      "user",
		Usage:     "Query activation of one user matched by name",
		ArgsUsage: "USERNAME",
		Action: func(ctx context.Context, c *cli.Command) error {
			username := c.Args().First()
			if username == "" {
				return goerr.New("USERNAME is required")
			}

			return run(ctx, c, func(uc *usecase.Activation, subID types.SubscriptionID) (any, string, error) {
				ua, err := uc.QueryUser(ctx, subID, username)
				if err != nil {
					return nil, "", err
				}
				return ua, usecase.FormatActivationMessage(ua), nil
			})
		},
	}

	return &cli.Command{
		Name:     "activation",
		Usage:    "Query Office activation telemetry",
		Flags:    flags,
		Commands: []*cli.Command{all, user},
	}
}
