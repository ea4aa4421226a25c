package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/o365ops/pkg/domain/interfaces"
	"github.com/secmon-lab/o365ops/pkg/domain/types"
	"github.com/secmon-lab/o365ops/pkg/service/webhook"
)

// ExpirationStatus is the outcome of an expiration check for one subscription
type ExpirationStatus string

const (
	ExpirationStatusExpired  ExpirationStatus = "expired"
	ExpirationStatusExpiring ExpirationStatus = "expiring"
)

// ExpirationNotice describes a subscription that needed a notification
type ExpirationNotice struct {
	SubscriptionID types.SubscriptionID `json:"subscription_id"`
	Name           string               `json:"name"`
	Status         ExpirationStatus     `json:"status"`
	DaysRemaining  int                  `json:"days_remaining"`
	Notified       bool                 `json:"notified"`
}

// Monitor watches subscription expiry dates
type Monitor struct {
	store       interfaces.SubscriptionStore
	notifier    interfaces.Notifier
	warningDays int
}

// MonitorOption configures a Monitor
type MonitorOption func(*Monitor)

// WithWarningDays overrides the stored warning window
func WithWarningDays(days int) MonitorOption {
	return func(m *Monitor) {
		m.warningDays = days
	}
}

// NewMonitor creates a new Monitor
func NewMonitor(store interfaces.SubscriptionStore, notifier interfaces.Notifier, opts ...MonitorOption) *Monitor {
	m := &Monitor{
		store:    store,
		notifier: notifier,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CheckExpirations notifies about subscriptions that have expired or expire within the
// configured warning window. Subscriptions without an expiry date are skipped.
func (m *Monitor) CheckExpirations(ctx context.Context, now time.Time) ([]ExpirationNotice, error) {
	logger := ctxlog.From(ctx)

	settings, err := m.store.GetNotificationSettings(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get notification settings")
	}
	warningDays := settings.WarningDays()
	if m.warningDays > 0 {
		warningDays = m.warningDays
	}

	subs, err := m.store.ListSubscriptions(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list subscriptions")
	}

	notices := []ExpirationNotice{}
	for _, sub := range subs {
		days, ok := sub.DaysUntilExpiry(now)
		if !ok {
			continue
		}

		notice := ExpirationNotice{
			SubscriptionID: sub.ID,
			Name:           sub.Name,
			DaysRemaining:  days,
		}

		var message string
		switch {
		case !now.Before(*sub.ExpiresAt):
			notice.Status = ExpirationStatusExpired
			message = webhook.SubscriptionExpiredMessage(sub.Name)
		case days <= warningDays:
			notice.Status = ExpirationStatusExpiring
			message = webhook.ExpirationWarningMessage(sub.Name, days)
		default:
			continue
		}

		if m.notifier != nil {
			if err := m.notifier.Notify(ctx, message); err != nil {
				logger.Warn("Failed to send expiration notification",
					"subscription", sub.ID,
					"error", err)
			} else {
				notice.Notified = true
			}
		}

		logger.Info("Subscription expiration detected",
			"subscription", sub.ID,
			"status", notice.Status,
			"days_remaining", days)
		notices = append(notices, notice)
	}

	return notices, nil
}
