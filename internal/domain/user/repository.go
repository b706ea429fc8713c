package user

import (
	"context"
)

// Repository finders return (nil, nil) when nothing matches.
type Repository interface {
	FindAll(ctx context.Context) (Users, error)
	FindByID(ctx context.Context, id string) (*User, error)
	FindByStatus(ctx context.Context, status Status) (Users, error)
	FindByRole(ctx context.Context, role Role) (Users, error)
	FindByRoleAndStatus(ctx context.Context, role Role, status Status) (Users, error)
	Save(ctx context.Context, u *User) (*User, error)
	SaveAll(ctx context.Context, us Users) (Users, error)
}
