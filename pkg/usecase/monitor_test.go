package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/o365ops/pkg/domain/model"
	"github.com/secmon-lab/o365ops/pkg/domain/types"
	"github.com/secmon-lab/o365ops/pkg/usecase"
)

func subscriptionExpiring(id, name string, at *time.Time) *model.Subscription {
	return &model.Subscription{ID: types.SubscriptionID(id), Name: name, ExpiresAt: at}
}

func TestMonitorCheckExpirations(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	soon := now.Add(10 * 24 * time.Hour)
	later := now.Add(90 * 24 * time.Hour)

	store := setupStore(t,
		subscriptionExpiring("expired", "Expired Tenant", &past),
		subscriptionExpiring("soon", "Soon Tenant", &soon),
		subscriptionExpiring("later", "Later Tenant", &later),
		subscriptionExpiring("none", "No Expiry", nil),
	)

	t.Run("default window", func(t *testing.T) {
		notifier := okNotifier()
		notices, err := usecase.NewMonitor(store, notifier).CheckExpirations(ctx, now)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(notices), 2)

		gt.Equal(t, notices[0].SubscriptionID, types.SubscriptionID("expired"))
		gt.Equal(t, notices[0].Status, usecase.ExpirationStatusExpired)
		gt.True(t, notices[0].Notified)

		gt.Equal(t, notices[1].SubscriptionID, types.SubscriptionID("soon"))
		gt.Equal(t, notices[1].Status, usecase.ExpirationStatusExpiring)
		gt.Equal(t, notices[1].DaysRemaining, 10)

		calls := notifier.NotifyCalls()
		gt.Equal(t, len(calls), 2)
		gt.S(t, calls[1].Message).Contains("Days remaining: 10")
	})

	t.Run("narrow window", func(t *testing.T) {
		gt.NoError(t, store.PutNotificationSettings(ctx, &model.NotificationSettings{ExpirationWarningDays: 5})).Required()

		notices, err := usecase.NewMonitor(store, okNotifier()).CheckExpirations(ctx, now)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(notices), 1)
		gt.Equal(t, notices[0].Status, usecase.ExpirationStatusExpired)
	})

	t.Run("window override", func(t *testing.T) {
		notices, err := usecase.NewMonitor(store, okNotifier(), usecase.WithWarningDays(100)).CheckExpirations(ctx, now)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(notices), 3)
		gt.Equal(t, notices[2].SubscriptionID, types.SubscriptionID("later"))
	})
}
