package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . SubscriptionStore

import (
	"context"

	"github.com/secmon-lab/o365ops/pkg/domain/model"
	"github.com/secmon-lab/o365ops/pkg/domain/types"
)

// SubscriptionStore persists subscriptions and their captured credentials
type SubscriptionStore interface {
	// GetSubscription returns the subscription, or an error wrapping model.ErrSubscriptionNotFound
	GetSubscription(ctx context.Context, id types.SubscriptionID) (*model.Subscription, error)
	ListSubscriptions(ctx context.Context) ([]*model.Subscription, error)
	PutSubscription(ctx context.Context, sub *model.Subscription) error
	DeleteSubscription(ctx context.Context, id types.SubscriptionID) error

	// Notification settings
	GetNotificationSettings(ctx context.Context) (*model.NotificationSettings, error)
	PutNotificationSettings(ctx context.Context, settings *model.NotificationSettings) error

	// Close closes the store connection
	Close() error
}
