package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/o365ops/pkg/domain/interfaces"
	"github.com/secmon-lab/o365ops/pkg/domain/model"
	"github.com/secmon-lab/o365ops/pkg/domain/types"
)

// Users manages directory accounts of a subscription
type Users struct {
	store    interfaces.SubscriptionStore
	admin    interfaces.AdminAPI
	notifier interfaces.Notifier
}

// NewUsers creates a new user management usecase. notifier may be nil.
func NewUsers(store interfaces.SubscriptionStore, admin interfaces.AdminAPI, notifier interfaces.Notifier) *Users {
	return &Users{
		store:    store,
		admin:    admin,
		notifier: notifier,
	}
}

// List lists directory users matching search
func (u *Users) List(ctx context.Context, subID types.SubscriptionID, search string) (*model.UserPage, error) {
	sub, err := lookupSubscription(ctx, u.store, subID)
	if err != nil {
		return nil, err
	}
	if err := requireUserManagement(sub); err != nil {
		return nil, err
	}

	page, err := u.admin.ListUsers(ctx, sub, search)
	if err != nil {
		reportAuthFailure(ctx, u.notifier, sub, err)
		return nil, err
	}
	return page, nil
}

// Create provisions an account. When assign is set and the captured template grants no
// product, the first SKU with free seats is assigned afterwards; a failed assignment is
// reported in the result and does not undo the creation.
func (u *Users) Create(ctx context.Context, subID types.SubscriptionID, username, password string, assign bool) (*model.UserCreation, error) {
	logger := ctxlog.From(ctx)

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, model.NewFailure(model.KindCreationFailed, "username and password are required")
	}

	sub, err := lookupSubscription(ctx, u.store, subID)
	if err != nil {
		return nil, err
	}
	if err := requireUserManagement(sub); err != nil {
		return nil, err
	}

	created, err := u.admin.CreateUser(ctx, sub, username, password)
	if err != nil {
		reportAuthFailure(ctx, u.notifier, sub, err)
		return nil, err
	}
	logger.Info("User created",
		"subscription", sub.ID,
		"user_principal_name", created.UserPrincipalName,
		"object_id", created.ObjectID)

	result := &model.UserCreation{User: created}
	if !assign || len(created.Licenses) > 0 {
		return result, nil
	}

	if created.ObjectID == "" {
		result.LicenseError = model.FailureOf(model.NewFailure(model.KindAPIError,
			"created user has no object ID, license not assigned"))
		return result, nil
	}

	license, err := u.admin.AssignLicense(ctx, sub, created.ObjectID)
	if err != nil {
		logger.Warn("License assignment after creation failed",
			"subscription", sub.ID,
			"object_id", created.ObjectID,
			"error", err)
		reportAuthFailure(ctx, u.notifier, sub, err)
		result.LicenseError = model.FailureOf(err)
		return result, nil
	}
	result.License = license
	return result, nil
}

// AssignLicense grants the first SKU with free seats to an existing user
func (u *Users) AssignLicense(ctx context.Context, subID types.SubscriptionID, objectID types.ObjectID) (*model.AssignedLicense, error) {
	sub, err := lookupSubscription(ctx, u.store, subID)
	if err != nil {
		return nil, err
	}
	if err := requireUserManagement(sub); err != nil {
		return nil, err
	}

	license, err := u.admin.AssignLicense(ctx, sub, objectID)
	if err != nil {
		reportAuthFailure(ctx, u.notifier, sub, err)
		return nil, err
	}
	return license, nil
}
