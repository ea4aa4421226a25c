package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/o365ops/pkg/domain/types"
)

// DefaultExpirationWarningDays is the warning window for subscriptions close to expiry
const DefaultExpirationWarningDays = 30

// Webhook payload formats
const (
	WebhookFormatJSON  = "json"
	WebhookFormatSlack = "slack"
)

// Config is the persisted configuration document of the subscription store
type Config struct {
	Subscriptions []Subscription       `json:"subscriptions" yaml:"subscriptions"`
	Notification  NotificationSettings `json:"notification" yaml:"notification"`
}

// NotificationSettings configures the outbound webhook
type NotificationSettings struct {
	WebhookURL            string `json:"webhook_url" yaml:"webhook_url"`
	WebhookJSON           string `json:"webhook_json" yaml:"webhook_json"`
	Format                string `json:"format,omitempty" yaml:"format,omitempty"`
	ExpirationWarningDays int    `json:"expiration_warning_days" yaml:"expiration_warning_days"`
}

// DefaultConfig returns an empty configuration document
func DefaultConfig() *Config {
	return &Config{
		Subscriptions: []Subscription{},
		Notification: NotificationSettings{
			Format:                WebhookFormatJSON,
			ExpirationWarningDays: DefaultExpirationWarningDays,
		},
	}
}

// Validate validates the entire configuration
func (c *Config) Validate() error {
	idMap := make(map[types.SubscriptionID]bool)
	for i, sub := range c.Subscriptions {
		if err := sub.Validate(); err != nil {
			return goerr.Wrap(err, "invalid subscription at index",
				goerr.V("index", i),
				goerr.V("id", sub.ID))
		}

		if idMap[sub.ID] {
			return goerr.New("duplicate subscription ID",
				goerr.V("id", sub.ID))
		}
		idMap[sub.ID] = true
	}

	if err := c.Notification.Validate(); err != nil {
		return goerr.Wrap(err, "invalid notification settings")
	}

	return nil
}

// Validate validates the notification settings
func (n *NotificationSettings) Validate() error {
	switch n.Format {
	case "", WebhookFormatJSON, WebhookFormatSlack:
	default:
		return goerr.New("invalid webhook format", goerr.V("format", n.Format))
	}
	if n.ExpirationWarningDays < 0 {
		return goerr.New("expiration_warning_days must not be negative",
			goerr.V("days", n.ExpirationWarningDays))
	}
	return nil
}

// WarningDays returns ExpirationWarningDays, or the default when unset
func (n *NotificationSettings) WarningDays() int {
	if n.ExpirationWarningDays == 0 {
		return DefaultExpirationWarningDays
	}
	return n.ExpirationWarningDays
}

// FindSubscription finds a subscription by its ID
func (c *Config) FindSubscription(id types.SubscriptionID) *Subscription {
	for _, sub := range c.Subscriptions {
		if sub.ID == id {
			// Return a copy to prevent modification
			result := sub
			return &result
		}
	}
	return nil
}
