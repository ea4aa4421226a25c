package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/o365ops/pkg/cli/config"
	"github.com/secmon-lab/o365ops/pkg/domain/model"
	"github.com/secmon-lab/o365ops/pkg/repository"
)

func TestNotificationSettings(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemory()
	gt.NoError(t, store.PutNotificationSettings(ctx, &model.NotificationSettings{
		WebhookURL:            "https://stored.example",
		WebhookJSON:           `{"t":"{content}"}`,
		ExpirationWarningDays: 10,
	})).Required()

	t.Run("stored values are used when unset", func(t *testing.T) {
		var cfg config.Notification
		settings, err := cfg.Settings(ctx, store)
		gt.NoError(t, err).Required()
		gt.Equal(t, settings.WebhookURL, "https://stored.example")
		gt.Equal(t, settings.ExpirationWarningDays, 10)
	})

	t.Run("flags override", func(t *testing.T) {
		cfg := config.Notification{WebhookURL: "https://flag.example", Format: model.WebhookFormatSlack, WarningDays: 3}
		settings, err := cfg.Settings(ctx, store)
		gt.NoError(t, err).Required()
		gt.Equal(t, settings.WebhookURL, "https://flag.example")
		gt.Equal(t, settings.WebhookJSON, `{"t":"{content}"}`)
		gt.Equal(t, settings.Format, model.WebhookFormatSlack)
		gt.Equal(t, settings.ExpirationWarningDays, 3)
	})

	t.Run("invalid format", func(t *testing.T) {
		cfg := config.Notification{Format: "carrier-pigeon"}
		_, err := cfg.Settings(ctx, store)
		gt.Error(t, err)
	})
}

func TestLoggerValidate(t *testing.T) {
	gt.NoError(t, (&config.Logger{Level: "debug", Format: "json"}).Validate())
	gt.Error(t, (&config.Logger{Level: "verbose"}).Validate())
	gt.Error(t, (&config.Logger{Level: "info", Format: "xml"}).Validate())
}
