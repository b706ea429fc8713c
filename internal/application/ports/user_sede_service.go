package ports

import (
	"context"

	"vg-ms-user/internal/domain/user_sede"
)

type UserSedeService interface {
	FindUserSedes(ctx context.Context, status user_sede.Status) (user_sede.UserSedes, error)
	FindUserSedeByID(ctx context.Context, id string) (*user_sede.UserSede, error)
	CreateUserSede(ctx context.Context, in user_sede.UserSede) (*user_sede.UserSede, error)
	UpdateUserSede(ctx context.Context, id string, in user_sede.UserSede) (*user_sede.UserSede, error)
	DeleteUserSede(ctx context.Context, id string) error
	ActivateUserSede(ctx context.Context, id string) (*user_sede.UserSede, error)
}
