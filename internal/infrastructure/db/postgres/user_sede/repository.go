package user_sede

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domain "vg-ms-user/internal/domain/user_sede"
	"vg-ms-user/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func scanUserSede(row pgx.Row) (*UserSede, error) {
	us := new(UserSede)
	if err := row.Scan(
		&us.ID,
		&us.UserID,
		&us.AssignmentReason,
		&us.Observations,
		&us.Status,
		&us.Details,
	); err != nil {
		return nil, err
	}
	return us, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) (domain.UserSedes, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out UserSedes
	for rows.Next() {
		us, err := scanUserSede(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, us)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(out)
}

func (r *Repository) FindAll(ctx context.Context) (domain.UserSedes, error) {
	return r.list(ctx, SelectUserSedes)
}

func (r *Repository) FindByStatus(ctx context.Context, status domain.Status) (domain.UserSedes, error) {
	return r.list(ctx, SelectUserSedesByStatus, string(status))
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.UserSede, error) {
	us, err := scanUserSede(r.db.QueryRow(ctx, SelectUserSedeByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(us)
}

func (r *Repository) Save(ctx context.Context, in *domain.UserSede) (*domain.UserSede, error) {
	details, err := encodeDetails(in.Details)
	if err != nil {
		return nil, fmt.Errorf("encode details: %w", err)
	}

	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}

	us, err := scanUserSede(r.db.QueryRow(ctx, UpsertUserSede,
		id, in.UserID, in.AssignmentReason, in.Observations, string(in.Status), details,
	))
	if err != nil {
		return nil, fmt.Errorf("save user sede: %w", err)
	}

	return fromDBModel(us)
}
