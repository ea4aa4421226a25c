package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/o365ops/pkg/domain/model"
)

func getTestConfig() *model.Config {
	return &model.Config{
		Subscriptions: []model.Subscription{
			{
				ID:      "sub-1",
				Name:    "Contoso E3",
				Cookies: "a=1; b=2",
				UserCreateConfig: &model.UserCreateConfig{
					Headers: map[string]string{"x-ms-client": "portal"},
					APIURL:  "https://admin.example.com/admin/api/users",
				},
			},
			{
				ID:   "sub-2",
				Name: "Fabrikam",
			},
		},
		Notification: model.NotificationSettings{
			WebhookURL:            "https://hooks.example.com/x",
			ExpirationWarningDays: 14,
		},
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		gt.NoError(t, getTestConfig().Validate())
	})

	t.Run("default config is valid", func(t *testing.T) {
		gt.NoError(t, model.DefaultConfig().Validate())
	})

	t.Run("duplicate subscription ID", func(t *testing.T) {
		cfg := getTestConfig()
		cfg.Subscriptions[1].ID = "sub-1"
		gt.Error(t, cfg.Validate())
	})

	t.Run("subscription without name", func(t *testing.T) {
		cfg := getTestConfig()
		cfg.Subscriptions[0].Name = ""
		gt.Error(t, cfg.Validate())
	})

	t.Run("user create config without api url", func(t *testing.T) {
		cfg := getTestConfig()
		cfg.Subscriptions[0].UserCreateConfig.APIURL = ""
		gt.Error(t, cfg.Validate())
	})

	t.Run("unknown webhook format", func(t *testing.T) {
		cfg := getTestConfig()
		cfg.Notification.Format = "teams"
		gt.Error(t, cfg.Validate())
	})

	t.Run("negative warning days", func(t *testing.T) {
		cfg := getTestConfig()
		cfg.Notification.ExpirationWarningDays = -1
		gt.Error(t, cfg.Validate())
	})
}

func TestConfigFindSubscription(t *testing.T) {
	cfg := getTestConfig()

	sub := cfg.FindSubscription("sub-2")
	gt.V(t, sub).NotNil()
	gt.Equal(t, sub.Name, "Fabrikam")

	// returned value is a copy
	sub.Name = "changed"
	gt.Equal(t, cfg.Subscriptions[1].Name, "Fabrikam")

	gt.V(t, cfg.FindSubscription("missing")).Nil()
}

func TestNotificationWarningDays(t *testing.T) {
	n := model.NotificationSettings{}
	gt.Equal(t, n.WarningDays(), model.DefaultExpirationWarningDays)

	n.ExpirationWarningDays = 7
	gt.Equal(t, n.WarningDays(), 7)
}
