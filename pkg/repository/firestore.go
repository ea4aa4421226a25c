package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/o365ops/pkg/domain/interfaces"
	"github.com/secmon-lab/o365ops/pkg/domain/model"
	"github.com/secmon-lab/o365ops/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Collection names
	subscriptionsCollection = "subscriptions"
	settingsCollection      = "settings"

	// Document IDs
	notificationDocID = "notification"
)

// Firestore implements SubscriptionStore with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore store
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.SubscriptionStore, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on invalid project or missing permission
	_, err = client.Collection(subscriptionsCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore store initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

// GetSubscription retrieves a subscription by ID
func (f *Firestore) GetSubscription(ctx context.Context, id types.SubscriptionID) (*model.Subscription, error) {
	if id == "" {
		return nil, goerr.New("subscription ID is empty")
	}

	doc, err := f.client.Collection(subscriptionsCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrSubscriptionNotFound, "failed to get subscription",
				goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get subscription from firestore",
			goerr.V("id", id))
	}

	var sub model.Subscription
	if err := doc.DataTo(&sub); err != nil {
		return nil, goerr.Wrap(err, "failed to decode subscription", goerr.V("id", id))
	}
	return &sub, nil
}

// ListSubscriptions lists subscriptions ordered by ID
func (f *Firestore) ListSubscriptions(ctx context.Context) ([]*model.Subscription, error) {
	iter := f.client.Collection(subscriptionsCollection).
		OrderBy(firestore.DocumentID, firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var subs []*model.Subscription
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate subscriptions")
		}

		var sub model.Subscription
		if err := doc.DataTo(&sub); err != nil {
			ctxlog.From(ctx).Warn("Failed to decode subscription, skipping",
				"docID", doc.Ref.ID,
				"error", err)
			continue
		}
		subs = append(subs, &sub)
	}

	return subs, nil
}

// PutSubscription creates or replaces a subscription
func (f *Firestore) PutSubscription(ctx context.Context, sub *model.Subscription) error {
	if sub == nil {
		return goerr.New("subscription is nil")
	}
	if err := sub.Validate(); err != nil {
		return goerr.Wrap(err, "invalid subscription")
	}

	if _, err := f.client.Collection(subscriptionsCollection).Doc(sub.ID.String()).Set(ctx, sub); err != nil {
		return goerr.Wrap(err, "failed to save subscription to firestore", goerr.V("id", sub.ID))
	}
	return nil
}

// DeleteSubscription removes a subscription
func (f *Firestore) DeleteSubscription(ctx context.Context, id types.SubscriptionID) error {
	ref := f.client.Collection(subscriptionsCollection).Doc(id.String())

	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(ref); err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(model.ErrSubscriptionNotFound, "failed to delete subscription",
					goerr.V("id", id))
			}
			return goerr.Wrap(err, "failed to get subscription in transaction")
		}
		return tx.Delete(ref)
	})
	if err != nil {
		return goerr.Wrap(err, "failed to delete subscription from firestore", goerr.V("id", id))
	}
	return nil
}

// GetNotificationSettings returns the webhook settings, or the defaults when none are stored
func (f *Firestore) GetNotificationSettings(ctx context.Context) (*model.NotificationSettings, error) {
	doc, err := f.client.Collection(settingsCollection).Doc(notificationDocID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			settings := model.DefaultConfig().Notification
			return &settings, nil
		}
		return nil, goerr.Wrap(err, "failed to get notification settings from firestore")
	}

	var settings model.NotificationSettings
	if err := doc.DataTo(&settings); err != nil {
		return nil, goerr.Wrap(err, "failed to decode notification settings")
	}
	return &settings, nil
}

// PutNotificationSettings replaces the webhook settings
func (f *Firestore) PutNotificationSettings(ctx context.Context, settings *model.NotificationSettings) error {
	if settings == nil {
		return goerr.New("notification settings is nil")
	}
	if err := settings.Validate(); err != nil {
		return goerr.Wrap(err, "invalid notification settings")
	}

	if _, err := f.client.Collection(settingsCollection).Doc(notificationDocID).Set(ctx, settings); err != nil {
		return goerr.Wrap(err, "failed to save notification settings to firestore")
	}
	return nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	return f.client.Close()
}
