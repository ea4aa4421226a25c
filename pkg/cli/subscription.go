package cli

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/o365ops/pkg/cli/config"
	"github.com/secmon-lab/o365ops/pkg/domain/model"
	"github.com/secmon-lab/o365ops/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// subscriptionSummary is the listing view of a subscription; credentials are never printed
type subscriptionSummary struct {
	ID                types.SubscriptionID `json:"id"`
	Name              string               `json:"name"`
	HasCookies        bool                 `json:"has_cookies"`
	HasUserManagement bool                 `json:"has_user_management"`
	HasCapture        bool                 `json:"has_capture"`
	Skus              int                  `json:"skus"`
	ExpiresAt         *time.Time           `json:"expires_at,omitempty"`
}

func cmdSubscription() *cli.Command {
	var storeCfg config.Store

	var (
		name        string
		cookiesFile string
		apiURL      string
		curlFile    string
		expiresAt   string
	)
	add := &cli.Command{
		Name:  "add",
		Usage: "Register a subscription with its captured session",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "name",
				Usage:       "Display name of the subscription",
				Required:    true,
				Destination: &name,
			},
			&cli.StringFlag{
				Name:        "cookies-file",
				Usage:       "File holding the captured Cookie header",
				Destination: &cookiesFile,
			},
			&cli.StringFlag{
				Name:        "api-url",
				Usage:       "User management API URL of the admin portal",
				Destination: &apiURL,
			},
			&cli.StringFlag{
				Name:        "curl-file",
				Usage:       "File holding the captured user creation curl command",
				Destination: &curlFile,
			},
			&cli.StringFlag{
				Name:        "expires-at",
				Usage:       "Expiry date (YYYY-MM-DD)",
				Destination: &expiresAt,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			sub := &model.Subscription{
				ID:   types.NewSubscriptionID(),
				Name: name,
			}

			if cookiesFile != "" {
				data, err := os.ReadFile(cookiesFile)
				if err != nil {
					return goerr.Wrap(err, "failed to read cookies file", goerr.V("path", cookiesFile))
				}
				sub.Cookies = strings.TrimSpace(string(data))
			}
			if curlFile != "" {
				data, err := os.ReadFile(curlFile)
				if err != nil {
					return goerr.Wrap(err, "failed to read curl file", goerr.V("path", curlFile))
				}
				sub.UserCreateCurl = string(data)
			}
			if apiURL != "" {
				sub.UserCreateConfig = &model.UserCreateConfig{
					Headers: map[string]string{},
					APIURL:  apiURL,
				}
			}
			if expiresAt != "" {
				t, err := time.Parse(time.DateOnly, expiresAt)
				if err != nil {
					return goerr.Wrap(err, "invalid expiry date", goerr.V("expires_at", expiresAt))
				}
				sub.ExpiresAt = &t
			}

			store, err := storeCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.PutSubscription(ctx, sub); err != nil {
				return err
			}
			ctxlog.From(ctx).Info("Subscription added", "id", sub.ID, "name", sub.Name)
			return printJSON(c, summarize(sub))
		},
	}

	list := &cli.Command{
		Name:  "list",
		Usage: "List registered subscriptions",
		Action: func(ctx context.Context, c *cli.Command) error {
			store, err := storeCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			subs, err := store.ListSubscriptions(ctx)
			if err != nil {
				return err
			}

			summaries := make([]subscriptionSummary, 0, len(subs))
			for _, sub := range subs {
				summaries = append(summaries, summarize(sub))
			}
			return printJSON(c, summaries)
		},
	}

	return &cli.Command{
		Name:     "subscription",
		Usage:    "Manage subscriptions",
		Flags:    storeCfg.Flags(),
		Commands: []*cli.Command{add, list},
	}
}

func summarize(sub *model.Subscription) subscriptionSummary {
	return subscriptionSummary{
		ID:                sub.ID,
		Name:              sub.Name,
		HasCookies:        sub.Cookies != "",
		HasUserManagement: sub.HasUserManagement(),
		HasCapture:        sub.HasCapture(),
		Skus:              len(sub.SubscriptionData.Skus),
		ExpiresAt:         sub.ExpiresAt,
	}
}
