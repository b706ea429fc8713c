package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domain "vg-ms-user/internal/domain/user"
	"vg-ms-user/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func scanUser(row pgx.Row) (*User, error) {
	u := new(User)
	err := row.Scan(
		&u.ID,
		&u.UserName,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.Phone,
		&u.DocumentType,
		&u.DocumentNumber,
		&u.Password,
		&u.Role,
		&u.Status,
		&u.InstitutionID,
		&u.Permissions,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) (domain.Users, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(us), nil
}

func (r *Repository) FindAll(ctx context.Context) (domain.Users, error) {
	return r.list(ctx, SelectUsers)
}

func (r *Repository) FindByStatus(ctx context.Context, status domain.Status) (domain.Users, error) {
	return r.list(ctx, SelectUsersByStatus, string(status))
}

func (r *Repository) FindByRole(ctx context.Context, role domain.Role) (domain.Users, error) {
	return r.list(ctx, SelectUsersByRole, string(role))
}

func (r *Repository) FindByRoleAndStatus(ctx context.Context, role domain.Role, status domain.Status) (domain.Users, error) {
	return r.list(ctx, SelectUsersByRoleAndStatus, string(role), string(status))
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, SelectUserByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) Save(ctx context.Context, in *domain.User) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, UpsertUser, upsertArgs(idOrNew(in.ID), in)...))
	if err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	return fromDBModel(u), nil
}

// SaveAll writes every user in one transaction: either all rows land or none.
func (r *Repository) SaveAll(ctx context.Context, in domain.Users) (domain.Users, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("save users: begin: %w", err)
	}

	out := make(Users, 0, len(in))
	for _, du := range in {
		u, err := scanUser(tx.QueryRow(ctx, UpsertUser, upsertArgs(idOrNew(du.ID), du)...))
		if err != nil {
			_ = tx.Rollback(ctx)
			return nil, fmt.Errorf("save users: %w", err)
		}
		out = append(out, u)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("save users: commit: %w", err)
	}

	return fromDBModels(out), nil
}

func idOrNew(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}
