package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/o365ops/pkg/domain/types"
	"github.com/secmon-lab/o365ops/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdUsers() *cli.Command {
	var (
		runtimeCfg     runtimeConfig
		subscriptionID string
	)

	flags := joinFlags(
		[]cli.Flag{subscriptionFlag(&subscriptionID)},
		runtimeCfg.Flags(),
	)

	// withUsers builds the usecase for the selected subscription and closes the store afterwards
	withUsers := func(ctx context.Context, fn func(uc *usecase.Users, subID types.SubscriptionID) error) error {
		rt, err := runtimeCfg.build(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = rt.Close() }()

		return fn(usecase.NewUsers(rt.store, rt.admin, rt.notifier), types.SubscriptionID(subscriptionID))
	}

	var search string
	list := &cli.Command{
		Name:  "list",
		Usage: "List directory users",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "search",
				Usage:       "Search text matched by the admin portal",
				Destination: &search,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return withUsers(ctx, func(uc *usecase.Users, subID types.SubscriptionID) error {
				page, err := uc.List(ctx, subID, search)
				if err != nil {
					return fail(ctx, c, err)
				}
				return printJSON(c, page)
			})
		},
	}

	var (
		username      string
		password      string
		assignLicense bool
	)
	create := &cli.Command{
		Name:  "create",
		Usage: "Create a user from the captured creation request",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "username",
				Aliases:     []string{"u"},
				Usage:       "Local part of the user principal name",
				Required:    true,
				Destination: &username,
			},
			&cli.StringFlag{
				Name:        "password",
				Aliases:     []string{"p"},
				Usage:       "Initial password; the user must change it on first sign-in",
				Required:    true,
				Sources:     cli.EnvVars("O365OPS_USER_PASSWORD"),
				Destination: &password,
			},
			&cli.BoolFlag{
				Name:        "assign-license",
				Usage:       "Assign the first available SKU when the template grants none",
				Value:       true,
				Destination: &assignLicense,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return withUsers(ctx, func(uc *usecase.Users, subID types.SubscriptionID) error {
				result, err := uc.Create(ctx, subID, username, password, assignLicense)
				if err != nil {
					return fail(ctx, c, err)
				}
				return printJSON(c, result)
			})
		},
	}

	assign := &cli.Command{
		Name:      "assign-license",
		Usage:     "Assign the first available SKU to a user",
		ArgsUsage: "OBJECT_ID",
		Action: func(ctx context.Context, c *cli.Command) error {
			objectID := c.Args().First()
			if objectID == "" {
				return goerr.New("OBJECT_ID is required")
			}

			return withUsers(ctx, func(uc *usecase.Users, subID types.SubscriptionID) error {
				license, err := uc.AssignLicense(ctx, subID, types.ObjectID(objectID))
				if err != nil {
					return fail(ctx, c, err)
				}
				return printJSON(c, license)
			})
		},
	}

	return &cli.Command{
		Name:     "users",
		Usage:    "Manage directory users of a subscription",
		Flags:    flags,
		Commands: []*cli.Command{list, create, assign},
	}
}
