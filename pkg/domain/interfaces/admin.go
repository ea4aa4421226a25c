package interfaces

//go:generate moq -out mocks/admin_mock.go -pkg mocks . AdminAPI Notifier

import (
	"context"
	"encoding/json"

	"github.com/secmon-lab/o365ops/pkg/domain/model"
	"github.com/secmon-lab/o365ops/pkg/domain/types"
)

// AdminAPI is the tenant administration portal API.
// Every error carries a model.FailureKind.
type AdminAPI interface {
	ListUsers(ctx context.Context, sub *model.Subscription, searchText string) (*model.UserPage, error)
	CreateUser(ctx context.Context, sub *model.Subscription, username, password string) (*model.CreatedUser, error)
	AssignLicense(ctx context.Context, sub *model.Subscription, objectID types.ObjectID) (*model.AssignedLicense, error)
	// FetchActivationData returns the raw officeInstalls payload
	FetchActivationData(ctx context.Context, sub *model.Subscription, objectID types.ObjectID) (json.RawMessage, error)
}

// Notifier delivers human-readable messages to the configured webhook
type Notifier interface {
	Notify(ctx context.Context, message string) error
}
