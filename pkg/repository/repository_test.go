package repository_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/o365ops/pkg/domain/interfaces"
	"github.com/secmon-lab/o365ops/pkg/domain/model"
	"github.com/secmon-lab/o365ops/pkg/domain/types"
	"github.com/secmon-lab/o365ops/pkg/repository"
)

func newTestSubscription(suffix string) *model.Subscription {
	expires := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	return &model.Subscription{
		ID:      types.SubscriptionID(fmt.Sprintf("sub-%s-%d", suffix, time.Now().UnixNano())),
		Name:    "Tenant " + suffix,
		Cookies: "sid=1; tok=2",
		UserCreateConfig: &model.UserCreateConfig{
			Headers: map[string]string{"x-portal": "yes"},
			APIURL:  "https://portal.example/admin/api/users",
		},
		UserCreateCurl: "curl 'https://portal.example' --data-raw '{}'",
		SubscriptionData: model.SubscriptionData{
			Skus: []model.Sku{{SkuID: "sku-1", SkuPartNumber: "E3", Available: 3}},
		},
		ExpiresAt: &expires,
	}
}

func testStore(t *testing.T, newStore func(t *testing.T) interfaces.SubscriptionStore) {
	t.Run("PutSubscription and GetSubscription", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		ctx := context.Background()
		sub := newTestSubscription("put")
		gt.NoError(t, store.PutSubscription(ctx, sub)).Required()

		retrieved, err := store.GetSubscription(ctx, sub.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, retrieved.ID, sub.ID)
		gt.Equal(t, retrieved.Name, sub.Name)
		gt.Equal(t, retrieved.Cookies, sub.Cookies)
		gt.V(t, retrieved.UserCreateConfig).NotNil().Required()
		gt.Equal(t, retrieved.UserCreateConfig.APIURL, sub.UserCreateConfig.APIURL)
		gt.Equal(t, retrieved.UserCreateConfig.Headers["x-portal"], "yes")
		gt.Equal(t, retrieved.UserCreateCurl, sub.UserCreateCurl)
		gt.Equal(t, len(retrieved.SubscriptionData.Skus), 1)
		gt.Equal(t, retrieved.SubscriptionData.Skus[0].Available, 3)
		gt.V(t, retrieved.ExpiresAt).NotNil().Required()
		gt.True(t, retrieved.ExpiresAt.Equal(*sub.ExpiresAt))
	})

	t.Run("GetSubscription returns copy", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		ctx := context.Background()
		sub := newTestSubscription("copy")
		gt.NoError(t, store.PutSubscription(ctx, sub)).Required()

		retrieved, err := store.GetSubscription(ctx, sub.ID)
		gt.NoError(t, err).Required()
		retrieved.UserCreateConfig.Headers["x-portal"] = "changed"

		again, err := store.GetSubscription(ctx, sub.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, again.UserCreateConfig.Headers["x-portal"], "yes")
	})

	t.Run("GetSubscription_NotFound", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		_, err := store.GetSubscription(context.Background(), "sub-missing")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrSubscriptionNotFound))
	})

	t.Run("ListSubscriptions", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		ctx := context.Background()
		a := newTestSubscription("list-a")
		b := newTestSubscription("list-b")
		gt.NoError(t, store.PutSubscription(ctx, a)).Required()
		gt.NoError(t, store.PutSubscription(ctx, b)).Required()

		subs, err := store.ListSubscriptions(ctx)
		gt.NoError(t, err).Required()

		found := map[types.SubscriptionID]bool{}
		for _, sub := range subs {
			found[sub.ID] = true
		}
		gt.True(t, found[a.ID])
		gt.True(t, found[b.ID])
	})

	t.Run("PutSubscription rejects invalid", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		err := store.PutSubscription(context.Background(), &model.Subscription{ID: "no-name"})
		gt.Error(t, err)
	})

	t.Run("DeleteSubscription", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		ctx := context.Background()
		sub := newTestSubscription("del")
		gt.NoError(t, store.PutSubscription(ctx, sub)).Required()
		gt.NoError(t, store.DeleteSubscription(ctx, sub.ID)).Required()

		_, err := store.GetSubscription(ctx, sub.ID)
		gt.True(t, errors.Is(err, model.ErrSubscriptionNotFound))

		err = store.DeleteSubscription(ctx, sub.ID)
		gt.Error(t, err)
	})

	t.Run("NotificationSettings", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		ctx := context.Background()
		settings := &model.NotificationSettings{
			WebhookURL:            "https://hooks.example/abc",
			WebhookJSON:           `{"text":"{content}"}`,
			Format:                model.WebhookFormatJSON,
			ExpirationWarningDays: 14,
		}
		gt.NoError(t, store.PutNotificationSettings(ctx, settings)).Required()

		retrieved, err := store.GetNotificationSettings(ctx)
		gt.NoError(t, err).Required()
		gt.Equal(t, *retrieved, *settings)
	})
}

func TestMemoryStore(t *testing.T) {
	testStore(t, func(t *testing.T) interfaces.SubscriptionStore {
		return repository.NewMemory()
	})

	t.Run("default notification settings", func(t *testing.T) {
		settings, err := repository.NewMemory().GetNotificationSettings(context.Background())
		gt.NoError(t, err).Required()
		gt.Equal(t, settings.WarningDays(), model.DefaultExpirationWarningDays)
	})
}

func TestFileStore(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.json"} {
		t.Run(name, func(t *testing.T) {
			testStore(t, func(t *testing.T) interfaces.SubscriptionStore {
				store, err := repository.NewFile(context.Background(), filepath.Join(t.TempDir(), name))
				gt.NoError(t, err).Required()
				return store
			})
		})
	}

	t.Run("persists across reopen", func(t *testing.T) {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "config.yml")

		store, err := repository.NewFile(ctx, path)
		gt.NoError(t, err).Required()
		sub := newTestSubscription("reopen")
		gt.NoError(t, store.PutSubscription(ctx, sub)).Required()

		reopened, err := repository.NewFile(ctx, path)
		gt.NoError(t, err).Required()
		retrieved, err := reopened.GetSubscription(ctx, sub.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, retrieved.Name, sub.Name)
	})

	t.Run("reads JSON with comments", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		doc := `{
			// tenants
			"subscriptions": [
				{
					"id": "sub-1",
					"name": "Tenant",
					"cookies": "a=b",
					"subscription_data": {"Skus": [{"SkuId": "s", "SkuPartNumber": "E3", "Available": 1,},]},
				},
			],
			/* webhook */
			"notification": {"webhook_url": "https://hooks.example"},
		}`
		gt.NoError(t, os.WriteFile(path, []byte(doc), 0600)).Required()

		cfg, err := repository.LoadConfigFile(path)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(cfg.Subscriptions), 1)
		gt.Equal(t, cfg.Subscriptions[0].SubscriptionData.Skus[0].SkuPartNumber, "E3")
		gt.Equal(t, cfg.Notification.WebhookURL, "https://hooks.example")
		gt.Equal(t, cfg.Notification.ExpirationWarningDays, model.DefaultExpirationWarningDays)
	})

	t.Run("rejects duplicate IDs", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		doc := "subscriptions:\n  - id: a\n    name: one\n  - id: a\n    name: two\n"
		gt.NoError(t, os.WriteFile(path, []byte(doc), 0600)).Required()

		_, err := repository.NewFile(context.Background(), path)
		gt.Error(t, err)
	})
}

func TestFirestoreStore(t *testing.T) {
	// Skip test if Firestore test environment variables are not set
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT")
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE")

	if projectID == "" || databaseID == "" {
		t.Skip("Skipping Firestore test: TEST_FIRESTORE_PROJECT and TEST_FIRESTORE_DATABASE must be set")
	}

	testStore(t, func(t *testing.T) interfaces.SubscriptionStore {
		ctx := context.Background()
		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		ctx = ctxlog.With(ctx, logger)

		store, err := repository.NewFirestore(ctx, projectID, databaseID)
		gt.NoError(t, err).Required()
		return store
	})
}
