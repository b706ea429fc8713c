package ports

import (
	"context"

	"vg-ms-user/internal/domain/user"
)

type UserService interface {
	ActiveRoleResolver
	FindUsers(ctx context.Context, f user.Filter) (user.Users, error)
	FindUserByID(ctx context.Context, id string) (*user.User, error)
	CreateUser(ctx context.Context, u user.User) (*user.User, error)
	CreateUsersBatch(ctx context.Context, us user.Users) (user.Users, error)
	UpdateUser(ctx context.Context, id string, p user.Patch) (*user.User, error)
	ActivateUser(ctx context.Context, id string) (*user.User, error)
	DeactivateUser(ctx context.Context, id string) (*user.User, error)
	AddPermission(ctx context.Context, id string, p user.Permission) (*user.User, error)
	AddPermissions(ctx context.Context, id string, ps user.Permissions) (*user.User, error)
	RemovePermission(ctx context.Context, id string, p user.Permission) (*user.User, error)
	SetPermissions(ctx context.Context, id string, ps user.Permissions) (*user.User, error)
	MigrateUsersWithDefaultPermissions(ctx context.Context) (user.Users, error)
}

// ActiveRoleResolver reports the role of an active user; ok is false when
// the user is missing or inactive.
type ActiveRoleResolver interface {
	GetActiveRoleByUserID(ctx context.Context, id string) (role user.Role, ok bool, err error)
}
