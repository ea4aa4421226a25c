package interfaces

import (
	"context"

	"github.com/secmon-lab/o365ops/pkg/domain/model"
	"github.com/secmon-lab/o365ops/pkg/domain/types"
)

// Users is the user management usecase
type Users interface {
	List(ctx context.Context, subID types.SubscriptionID, search string) (*model.UserPage, error)
	Create(ctx context.Context, subID types.SubscriptionID, username, password string, assign bool) (*model.UserCreation, error)
	AssignLicense(ctx context.Context, subID types.SubscriptionID, objectID types.ObjectID) (*model.AssignedLicense, error)
}

// Activation is the activation telemetry usecase
type Activation interface {
	QueryAll(ctx context.Context, subID types.SubscriptionID) (*model.BatchActivation, error)
	QueryUser(ctx context.Context, subID types.SubscriptionID, username string) (*model.UserActivation, error)
}
