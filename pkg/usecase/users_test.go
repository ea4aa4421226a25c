package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/o365ops/pkg/domain/interfaces"
	"github.com/secmon-lab/o365ops/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/o365ops/pkg/domain/model"
	"github.com/secmon-lab/o365ops/pkg/domain/types"
	"github.com/secmon-lab/o365ops/pkg/repository"
	"github.com/secmon-lab/o365ops/pkg/usecase"
)

func setupStore(t *testing.T, subs ...*model.Subscription) interfaces.SubscriptionStore {
	store := repository.NewMemory()
	for _, sub := range subs {
		gt.NoError(t, store.PutSubscription(context.Background(), sub)).Required()
	}
	return store
}

func managedSubscription() *model.Subscription {
	return &model.Subscription{
		ID:      "sub-1",
		Name:    "Tenant A",
		Cookies: "sid=1",
		UserCreateConfig: &model.UserCreateConfig{
			APIURL: "https://portal.example/admin/api/users",
		},
		UserCreateCurl: "curl x --data-raw '{}'",
	}
}

func okNotifier() *mocks.NotifierMock {
	return &mocks.NotifierMock{
		NotifyFunc: func(ctx context.Context, message string) error { return nil },
	}
}

func TestUsersList(t *testing.T) {
	ctx := context.Background()

	t.Run("lists users", func(t *testing.T) {
		admin := &mocks.AdminAPIMock{
			ListUsersFunc: func(ctx context.Context, sub *model.Subscription, searchText string) (*model.UserPage, error) {
				return &model.UserPage{Users: []model.UserRecord{{ObjectID: "o1"}}, TotalCount: 1, IsLastPage: true}, nil
			},
		}
		uc := usecase.NewUsers(setupStore(t, managedSubscription()), admin, okNotifier())

		page, err := uc.List(ctx, "sub-1", "ali")
		gt.NoError(t, err).Required()
		gt.Equal(t, page.TotalCount, 1)
		gt.Equal(t, admin.ListUsersCalls()[0].SearchText, "ali")
	})

	t.Run("unknown subscription", func(t *testing.T) {
		uc := usecase.NewUsers(setupStore(t), &mocks.AdminAPIMock{}, nil)
		_, err := uc.List(ctx, "missing", "")
		gt.Equal(t, model.KindOf(err), model.KindSubscriptionNotFound)
	})

	t.Run("missing user management config", func(t *testing.T) {
		sub := managedSubscription()
		sub.UserCreateConfig = nil
		admin := &mocks.AdminAPIMock{}
		uc := usecase.NewUsers(setupStore(t, sub), admin, nil)

		_, err := uc.List(ctx, "sub-1", "")
		gt.Equal(t, model.KindOf(err), model.KindMissingUserManagementConfig)
		gt.Equal(t, len(admin.ListUsersCalls()), 0)
	})

	t.Run("auth failure triggers notification", func(t *testing.T) {
		admin := &mocks.AdminAPIMock{
			ListUsersFunc: func(ctx context.Context, sub *model.Subscription, searchText string) (*model.UserPage, error) {
				return nil, model.NewFailure(model.KindAuthFailure, "expired")
			},
		}
		notifier := okNotifier()
		uc := usecase.NewUsers(setupStore(t, managedSubscription()), admin, notifier)

		_, err := uc.List(ctx, "sub-1", "")
		gt.Equal(t, model.KindOf(err), model.KindAuthFailure)
		calls := notifier.NotifyCalls()
		gt.Equal(t, len(calls), 1)
		gt.S(t, calls[0].Message).Contains("Tenant A")
	})

	t.Run("other failures do not notify", func(t *testing.T) {
		admin := &mocks.AdminAPIMock{
			ListUsersFunc: func(ctx context.Context, sub *model.Subscription, searchText string) (*model.UserPage, error) {
				return nil, model.NewFailure(model.KindTimeout, "slow")
			},
		}
		notifier := okNotifier()
		uc := usecase.NewUsers(setupStore(t, managedSubscription()), admin, notifier)

		_, err := uc.List(ctx, "sub-1", "")
		gt.Equal(t, model.KindOf(err), model.KindTimeout)
		gt.Equal(t, len(notifier.NotifyCalls()), 0)
	})
}

func TestUsersCreate(t *testing.T) {
	ctx := context.Background()

	created := func(licenses ...string) func(ctx context.Context, sub *model.Subscription, username, password string) (*model.CreatedUser, error) {
		return func(ctx context.Context, sub *model.Subscription, username, password string) (*model.CreatedUser, error) {
			return &model.CreatedUser{
				Username:          username,
				UserPrincipalName: username + "@contoso.example",
				ObjectID:          "new-id",
				Password:          password,
				Licenses:          licenses,
			}, nil
		}
	}

	t.Run("creates and assigns license", func(t *testing.T) {
		admin := &mocks.AdminAPIMock{
			CreateUserFunc: created(),
			AssignLicenseFunc: func(ctx context.Context, sub *model.Subscription, objectID types.ObjectID) (*model.AssignedLicense, error) {
				return &model.AssignedLicense{SkuID: "sku", SkuPartNumber: "E3"}, nil
			},
		}
		uc := usecase.NewUsers(setupStore(t, managedSubscription()), admin, nil)

		result, err := uc.Create(ctx, "sub-1", "carol", "pw", true)
		gt.NoError(t, err).Required()
		gt.Equal(t, result.User.ObjectID, types.ObjectID("new-id"))
		gt.V(t, result.License).NotNil().Required()
		gt.Equal(t, result.License.SkuPartNumber, "E3")
		gt.Equal(t, admin.AssignLicenseCalls()[0].ObjectID, types.ObjectID("new-id"))
	})

	t.Run("template products skip assignment", func(t *testing.T) {
		admin := &mocks.AdminAPIMock{CreateUserFunc: created("E5")}
		uc := usecase.NewUsers(setupStore(t, managedSubscription()), admin, nil)

		result, err := uc.Create(ctx, "sub-1", "carol", "pw", true)
		gt.NoError(t, err).Required()
		gt.V(t, result.License).Nil()
		gt.Equal(t, len(admin.AssignLicenseCalls()), 0)
	})

	t.Run("assignment failure keeps created user", func(t *testing.T) {
		admin := &mocks.AdminAPIMock{
			CreateUserFunc: created(),
			AssignLicenseFunc: func(ctx context.Context, sub *model.Subscription, objectID types.ObjectID) (*model.AssignedLicense, error) {
				return nil, model.NewFailure(model.KindNoLicenseAvailable, "no seats")
			},
		}
		uc := usecase.NewUsers(setupStore(t, managedSubscription()), admin, nil)

		result, err := uc.Create(ctx, "sub-1", "carol", "pw", true)
		gt.NoError(t, err).Required()
		gt.V(t, result.User).NotNil()
		gt.V(t, result.LicenseError).NotNil().Required()
		gt.Equal(t, result.LicenseError.Kind, model.KindNoLicenseAvailable)
	})

	t.Run("creation failure is returned", func(t *testing.T) {
		admin := &mocks.AdminAPIMock{
			CreateUserFunc: func(ctx context.Context, sub *model.Subscription, username, password string) (*model.CreatedUser, error) {
				return nil, model.NewFailure(model.KindCreationFailed, "exists")
			},
		}
		uc := usecase.NewUsers(setupStore(t, managedSubscription()), admin, nil)

		_, err := uc.Create(ctx, "sub-1", "carol", "pw", true)
		gt.Equal(t, model.KindOf(err), model.KindCreationFailed)
		gt.Equal(t, len(admin.AssignLicenseCalls()), 0)
	})

	t.Run("blank username", func(t *testing.T) {
		admin := &mocks.AdminAPIMock{}
		uc := usecase.NewUsers(setupStore(t, managedSubscription()), admin, nil)

		_, err := uc.Create(ctx, "sub-1", "  ", "pw", false)
		gt.Error(t, err)
		gt.Equal(t, len(admin.CreateUserCalls()), 0)
	})
}

func TestUsersAssignLicense(t *testing.T) {
	admin := &mocks.AdminAPIMock{
		AssignLicenseFunc: func(ctx context.Context, sub *model.Subscription, objectID types.ObjectID) (*model.AssignedLicense, error) {
			return &model.AssignedLicense{SkuID: "sku"}, nil
		},
	}
	uc := usecase.NewUsers(setupStore(t, managedSubscription()), admin, nil)

	license, err := uc.AssignLicense(context.Background(), "sub-1", "obj")
	gt.NoError(t, err).Required()
	gt.Equal(t, license.SkuID, "sku")
}
