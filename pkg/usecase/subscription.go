package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/o365ops/pkg/domain/interfaces"
	"github.com/secmon-lab/o365ops/pkg/domain/model"
	"github.com/secmon-lab/o365ops/pkg/domain/types"
	"github.com/secmon-lab/o365ops/pkg/service/webhook"
)

// lookupSubscription resolves id into a subscription or a classified failure
func lookupSubscription(ctx context.Context, store interfaces.SubscriptionStore, id types.SubscriptionID) (*model.Subscription, error) {
	sub, err := store.GetSubscription(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrSubscriptionNotFound) {
			return nil, model.WrapFailure(err, model.KindSubscriptionNotFound, "subscription does not exist",
				goerr.V("subscription", id))
		}
		return nil, model.WrapFailure(err, model.KindUnknownError, "failed to get subscription",
			goerr.V("subscription", id))
	}
	return sub, nil
}

// requireUserManagement rejects subscriptions without a user management configuration
func requireUserManagement(sub *model.Subscription) error {
	if !sub.HasUserManagement() {
		return model.NewFailure(model.KindMissingUserManagementConfig,
			"user management is not configured for subscription",
			goerr.V("subscription", sub.ID))
	}
	return nil
}

// reportAuthFailure sends the expired-cookie notification when err is an auth failure.
// Delivery problems are logged and never change the caller's result.
func reportAuthFailure(ctx context.Context, notifier interfaces.Notifier, sub *model.Subscription, err error) {
	if notifier == nil || model.KindOf(err) != model.KindAuthFailure {
		return
	}
	if nErr := notifier.Notify(ctx, webhook.AuthFailureMessage(sub.Name)); nErr != nil {
		ctxlog.From(ctx).Warn("Failed to send auth failure notification",
			"subscription", sub.ID,
			"error", nErr)
	}
}
