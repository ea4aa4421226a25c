package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/o365ops/pkg/domain/interfaces"
	"github.com/secmon-lab/o365ops/pkg/domain/model"
	"github.com/secmon-lab/o365ops/pkg/service/webhook"
	"github.com/urfave/cli/v3"
)

// Notification holds webhook overrides. Unset values fall back to the store's settings.
type Notification struct {
	WebhookURL  string
	WebhookJSON string
	Format      string
	WarningDays int
}

// Flags returns CLI flags for Notification configuration
func (n *Notification) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "webhook-url",
			Usage:       "Notification webhook URL",
			Category:    "Notification",
			Sources:     cli.EnvVars("O365OPS_WEBHOOK_URL"),
			Destination: &n.WebhookURL,
		},
		&cli.StringFlag{
			Name:        "webhook-json",
			Usage:       "Webhook JSON template with {title}, {content} placeholders",
			Category:    "Notification",
			Sources:     cli.EnvVars("O365OPS_WEBHOOK_JSON"),
			Destination: &n.WebhookJSON,
		},
		&cli.StringFlag{
			Name:        "webhook-format",
			Usage:       "Webhook payload format (json, slack)",
			Category:    "Notification",
			Sources:     cli.EnvVars("O365OPS_WEBHOOK_FORMAT"),
			Destination: &n.Format,
		},
		&cli.IntFlag{
			Name:        "expiration-warning-days",
			Usage:       "Warn about subscriptions expiring within this many days",
			Category:    "Notification",
			Sources:     cli.EnvVars("O365OPS_EXPIRATION_WARNING_DAYS"),
			Destination: &n.WarningDays,
		},
	}
}

// Settings merges the overrides onto the stored settings
func (n *Notification) Settings(ctx context.Context, store interfaces.SubscriptionStore) (*model.NotificationSettings, error) {
	settings, err := store.GetNotificationSettings(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get notification settings")
	}

	merged := *settings
	if n.WebhookURL != "" {
		merged.WebhookURL = n.WebhookURL
	}
	if n.WebhookJSON != "" {
		merged.WebhookJSON = n.WebhookJSON
	}
	if n.Format != "" {
		merged.Format = n.Format
	}
	if n.WarningDays > 0 {
		merged.ExpirationWarningDays = n.WarningDays
	}

	if err := merged.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid notification settings")
	}
	return &merged, nil
}

// Configure creates the notifier
func (n *Notification) Configure(ctx context.Context, store interfaces.SubscriptionStore) (*webhook.Notifier, error) {
	settings, err := n.Settings(ctx, store)
	if err != nil {
		return nil, err
	}
	return webhook.NewNotifier(*settings, webhook.NewSender()), nil
}

// LogValue returns structured log value. The URL may embed a token and is not logged.
func (n Notification) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_webhook_url", n.WebhookURL != ""),
		slog.Bool("has_webhook_json", n.WebhookJSON != ""),
		slog.String("format", n.Format),
		slog.Int("warning_days", n.WarningDays),
	)
}
