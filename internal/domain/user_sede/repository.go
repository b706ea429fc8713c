package user_sede

import (
	"context"
)

type Repository interface {
	FindAll(ctx context.Context) (UserSedes, error)
	FindByID(ctx context.Context, id string) (*UserSede, error)
	FindByStatus(ctx context.Context, status Status) (UserSedes, error)
	Save(ctx context.Context, us *UserSede) (*UserSede, error)
}
