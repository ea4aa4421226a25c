package webhook

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/o365ops/pkg/domain/model"
)

// Notifier renders messages into the configured webhook shape and delivers them
type Notifier struct {
	settings model.NotificationSettings
	sender   *Sender
}

// NewNotifier creates a Notifier for the given settings
func NewNotifier(settings model.NotificationSettings, sender *Sender) *Notifier {
	if sender == nil {
		sender = NewSender()
	}
	return &Notifier{
		settings: settings,
		sender:   sender,
	}
}

// Configured reports whether a webhook URL is set
func (n *Notifier) Configured() bool {
	return n.settings.WebhookURL != ""
}

// Notify delivers message. The returned error is informational; callers treat delivery
// failure as non-fatal.
func (n *Notifier) Notify(ctx context.Context, message string) error {
	logger := ctxlog.From(ctx)

	if !n.Configured() {
		logger.Info("Webhook not configured, skipping notification")
		return model.NewFailure(model.KindWebhookNotConfigured, "webhook URL is not configured")
	}

	var err error
	if n.settings.Format == model.WebhookFormatSlack {
		err = n.sender.SendSlack(ctx, n.settings.WebhookURL, message)
	} else {
		payload, ok := Render(n.settings.WebhookJSON, message)
		if !ok {
			logger.Warn("Webhook template is not valid JSON, using default payload",
				"template", snippet(n.settings.WebhookJSON, 100))
		}
		err = n.sender.Send(ctx, n.settings.WebhookURL, payload)
	}

	if err != nil {
		logger.Warn("Failed to deliver notification", "error", err)
		return err
	}
	logger.Info("Notification delivered", "message", snippet(message, 50))
	return nil
}

// NotifyAuthFailure reports an expired session cookie
func (n *Notifier) NotifyAuthFailure(ctx context.Context, subscriptionName string) error {
	return n.Notify(ctx, AuthFailureMessage(subscriptionName))
}

// NotifySubscriptionExpired reports an expired subscription
func (n *Notifier) NotifySubscriptionExpired(ctx context.Context, subscriptionName string) error {
	return n.Notify(ctx, SubscriptionExpiredMessage(subscriptionName))
}

// NotifyExpirationWarning reports a subscription that expires within the warning window
func (n *Notifier) NotifyExpirationWarning(ctx context.Context, subscriptionName string, daysRemaining int) error {
	return n.Notify(ctx, ExpirationWarningMessage(subscriptionName, daysRemaining))
}

func AuthFailureMessage(subscriptionName string) string {
	return fmt.Sprintf("⚠️ Office 365 subscription alert\n\n"+
		"Subscription: %s\n"+
		"Status: cookie expired\n"+
		"Reason: authentication failed, please update the cookie", subscriptionName)
}

func SubscriptionExpiredMessage(subscriptionName string) string {
	return fmt.Sprintf("❌ Office 365 subscription alert\n\n"+
		"Subscription: %s\n"+
		"Status: subscription expired\n"+
		"Please take action", subscriptionName)
}

func ExpirationWarningMessage(subscriptionName string, daysRemaining int) string {
	return fmt.Sprintf("⏰ Office 365 subscription reminder\n\n"+
		"Subscription: %s\n"+
		"Status: expiring soon\n"+
		"Days remaining: %d\n"+
		"Please renew in time", subscriptionName, daysRemaining)
}

func snippet(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
