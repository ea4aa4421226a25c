package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/o365ops/pkg/domain/interfaces"
	"github.com/secmon-lab/o365ops/pkg/domain/model"
	"github.com/secmon-lab/o365ops/pkg/domain/types"
	"github.com/secmon-lab/o365ops/pkg/service/adminapi"
)

// Activation reads software activation telemetry of directory users
type Activation struct {
	store    interfaces.SubscriptionStore
	admin    interfaces.AdminAPI
	notifier interfaces.Notifier
}

// NewActivation creates a new activation usecase. notifier may be nil.
func NewActivation(store interfaces.SubscriptionStore, admin interfaces.AdminAPI, notifier interfaces.Notifier) *Activation {
	return &Activation{
		store:    store,
		admin:    admin,
		notifier: notifier,
	}
}

// QueryAll queries activation of every listed user, one at a time, and keeps the users that
// report any signal. Per-user failures count as no signal.
func (a *Activation) QueryAll(ctx context.Context, subID types.SubscriptionID) (*model.BatchActivation, error) {
	logger := ctxlog.From(ctx)

	sub, err := lookupSubscription(ctx, a.store, subID)
	if err != nil {
		return nil, err
	}
	if err := requireUserManagement(sub); err != nil {
		return nil, err
	}

	page, err := a.admin.ListUsers(ctx, sub, "")
	if err != nil {
		reportAuthFailure(ctx, a.notifier, sub, err)
		return nil, err
	}

	result := &model.BatchActivation{
		SubscriptionName:    sub.Name,
		TotalUsers:          len(page.Users),
		UsersWithActivation: []model.UserActivation{},
	}

	for i, user := range page.Users {
		if user.ObjectID == "" {
			continue
		}

		logger.Debug("Querying activation",
			"subscription", sub.ID,
			"progress", fmt.Sprintf("%d/%d", i+1, len(page.Users)),
			"user", user.UserPrincipalName)

		record, err := a.fetchActivation(ctx, sub, user.ObjectID)
		if err != nil {
			logger.Warn("Activation query failed, treating as no data",
				"subscription", sub.ID,
				"object_id", user.ObjectID,
				"error", err)
			continue
		}
		if record.HasSignal() {
			result.UsersWithActivation = append(result.UsersWithActivation, model.UserActivation{
				User:       user,
				Activation: record,
			})
		}
	}

	logger.Info("Activation query completed",
		"subscription", sub.ID,
		"total_users", result.TotalUsers,
		"users_with_activation", result.UsersWithActivationCount())
	return result, nil
}

// QueryUser finds the first user whose principal name or display name contains username,
// ignoring case, and returns its activation.
func (a *Activation) QueryUser(ctx context.Context, subID types.SubscriptionID, username string) (*model.UserActivation, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, model.NewFailure(model.KindUserNotFound, "username is required")
	}

	sub, err := lookupSubscription(ctx, a.store, subID)
	if err != nil {
		return nil, err
	}
	if err := requireUserManagement(sub); err != nil {
		return nil, err
	}

	page, err := a.admin.ListUsers(ctx, sub, username)
	if err != nil {
		reportAuthFailure(ctx, a.notifier, sub, err)
		return nil, err
	}

	user := matchUser(page.Users, username)
	if user == nil {
		return nil, model.NewFailure(model.KindUserNotFound, "user not found",
			goerr.V("subscription", sub.ID),
			goerr.V("username", username))
	}

	record, err := a.fetchActivation(ctx, sub, user.ObjectID)
	if err != nil {
		reportAuthFailure(ctx, a.notifier, sub, err)
		return nil, err
	}

	return &model.UserActivation{
		User:       *user,
		Activation: record,
	}, nil
}

func (a *Activation) fetchActivation(ctx context.Context, sub *model.Subscription, objectID types.ObjectID) (model.ActivationRecord, error) {
	raw, err := a.admin.FetchActivationData(ctx, sub, objectID)
	if err != nil {
		return model.EmptyActivation(), err
	}

	record, ok := adminapi.ParseActivation(raw)
	if !ok {
		ctxlog.From(ctx).Warn("Failed to parse activation data, using empty record",
			"subscription", sub.ID,
			"object_id", objectID)
	}
	return record, nil
}

func matchUser(users []model.UserRecord, username string) *model.UserRecord {
	needle := strings.ToLower(username)
	for i := range users {
		if strings.Contains(strings.ToLower(users[i].UserPrincipalName), needle) ||
			strings.Contains(strings.ToLower(users[i].DisplayName), needle) {
			return &users[i]
		}
	}
	return nil
}

// FormatActivationMessage renders the activation of one user for notifications
func FormatActivationMessage(ua *model.UserActivation) string {
	rec := ua.Activation
	lines := []string{
		"📱 Office 365 activation\n",
		"👤 User: " + ua.User.DisplayName,
		"📧 Email: " + ua.User.UserPrincipalName + "\n",
		"💻 Device activation",
		fmt.Sprintf("Activated: %d / %d computers", rec.ActiveComputers, rec.TotalComputers),
		fmt.Sprintf("Activated: %d / %d mobile devices\n", rec.ActiveDevices, rec.TotalDevices),
	}

	if len(rec.Machines) == 0 {
		lines = append(lines, "No activated devices")
		return strings.Join(lines, "\n")
	}

	lines = append(lines, "📋 Devices:")
	for i, m := range rec.Machines {
		icon := "❌"
		if m.LicenseStatus.IsActivated() {
			icon = "✅"
		}
		lines = append(lines, fmt.Sprintf("%d. %s\n   %s\n   %s %s\n   Last request: %s",
			i+1, m.MachineName, m.MachineOS, icon, m.LicenseStatus, formatRequestTime(m.LastLicenseRequested)))
	}
	return strings.Join(lines, "\n")
}

// FormatBatchActivationMessage summarizes a QueryAll result for notifications
func FormatBatchActivationMessage(subscriptionName string, batch *model.BatchActivation) string {
	lines := []string{
		"📱 Office 365 activation summary\n",
		"Subscription: " + subscriptionName,
		fmt.Sprintf("Users: %d, with activation: %d", batch.TotalUsers, batch.UsersWithActivationCount()),
	}
	for _, ua := range batch.UsersWithActivation {
		rec := ua.Activation
		lines = append(lines, fmt.Sprintf("- %s: %d/%d computers, %d/%d devices",
			ua.User.UserPrincipalName, rec.ActiveComputers, rec.TotalComputers, rec.ActiveDevices, rec.TotalDevices))
	}
	return strings.Join(lines, "\n")
}

func formatRequestTime(value string) string {
	if value == "" {
		return "Unknown"
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.Format("2006-01-02 15:04")
	}
	if len(value) > 16 {
		value = value[:16]
	}
	return strings.Replace(value, "T", " ", 1)
}
