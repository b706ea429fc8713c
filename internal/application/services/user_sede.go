package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"vg-ms-user/internal/application/ports"
	"vg-ms-user/internal/domain"
	"vg-ms-user/internal/domain/user"
	"vg-ms-user/internal/domain/user_sede"
	"vg-ms-user/internal/infrastructure/mq"
)

type UserSedeService struct {
	userSedeRepository user_sede.Repository
	registry           ports.Registry
	roles              ports.ActiveRoleResolver
	events             ports.EventSink
	mCounter           *prometheus.CounterVec
}

func NewUserSedeService(
	userSedeRepository user_sede.Repository,
	registry ports.Registry,
	roles ports.ActiveRoleResolver,
	events ports.EventSink,
	mCounter *prometheus.CounterVec,
) ports.UserSedeService {
	return &UserSedeService{
		userSedeRepository: userSedeRepository,
		registry:           registry,
		roles:              roles,
		events:             events,
		mCounter:           mCounter,
	}
}

// FindUserSedes lists everything, inactive records included, unless status narrows it.
func (s *UserSedeService) FindUserSedes(ctx context.Context, status user_sede.Status) (user_sede.UserSedes, error) {
	if status != "" {
		return s.userSedeRepository.FindByStatus(ctx, status)
	}
	return s.userSedeRepository.FindAll(ctx)
}

// FindUserSedeByID hides soft-deleted records.
func (s *UserSedeService) FindUserSedeByID(ctx context.Context, id string) (*user_sede.UserSede, error) {
	us, err := s.userSedeRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if us == nil || !us.IsActive() {
		return nil, domain.ErrNotFound("user sede not found with id: %s", id)
	}
	return us, nil
}

func (s *UserSedeService) CreateUserSede(ctx context.Context, in user_sede.UserSede) (*user_sede.UserSede, error) {
	if err := s.checkHeadquarters(ctx, in.Details); err != nil {
		return nil, err
	}
	role, err := s.activeRole(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	in.Details = user_sede.FillMissingRoles(in.Details, role)
	in.Status = user_sede.StatusActive

	saved, err := s.userSedeRepository.Save(ctx, &in)
	if err != nil {
		return nil, err
	}

	emit(ctx, s.events, mq.NewEvent(mq.EventUserSedeCreated, saved.ID, toUserSedePayload(saved)))
	s.mCounter.WithLabelValues("user_sede_created_total").Inc()

	return saved, nil
}

// UpdateUserSede overwrites the basic fields verbatim and replaces the details.
// The record does not have to be active, and the role is resolved for the
// incoming assignee. An empty status keeps the current one.
func (s *UserSedeService) UpdateUserSede(ctx context.Context, id string, in user_sede.UserSede) (*user_sede.UserSede, error) {
	if in.Status != "" && !in.Status.Valid() {
		return nil, domain.ErrValidation("invalid user sede status: %s", in.Status)
	}

	existing, err := s.userSedeRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound("user sede not found with id: %s", id)
	}

	if err = s.checkHeadquarters(ctx, in.Details); err != nil {
		return nil, err
	}
	role, err := s.activeRole(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	existing.UserID = in.UserID
	existing.AssignmentReason = in.AssignmentReason
	existing.Observations = in.Observations
	if in.Status != "" {
		existing.Status = in.Status
	}
	if in.Details != nil {
		existing.Details = user_sede.FillMissingRoles(in.Details, role)
	}

	saved, err := s.userSedeRepository.Save(ctx, existing)
	if err != nil {
		return nil, err
	}

	emit(ctx, s.events, mq.NewEvent(mq.EventUserSedeUpdated, saved.ID, toUserSedePayload(saved)))
	s.mCounter.WithLabelValues("user_sede_updated_total").Inc()

	return saved, nil
}

func (s *UserSedeService) DeleteUserSede(ctx context.Context, id string) error {
	_, err := s.setStatus(ctx, id, user_sede.StatusInactive, mq.EventUserSedeDeleted)
	return err
}

func (s *UserSedeService) ActivateUserSede(ctx context.Context, id string) (*user_sede.UserSede, error) {
	return s.setStatus(ctx, id, user_sede.StatusActive, mq.EventUserSedeActivated)
}

func (s *UserSedeService) setStatus(ctx context.Context, id string, status user_sede.Status, action string) (*user_sede.UserSede, error) {
	us, err := s.userSedeRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if us == nil {
		return nil, domain.ErrNotFound("user sede not found with id: %s", id)
	}
	us.Status = status

	saved, err := s.userSedeRepository.Save(ctx, us)
	if err != nil {
		return nil, err
	}

	emit(ctx, s.events, mq.NewEvent(action, saved.ID, toUserSedePayload(saved)))
	s.mCounter.WithLabelValues("user_sede_status_changed_total").Inc()

	return saved, nil
}

// checkHeadquarters stops at the first detail whose headquarter is missing or inactive.
func (s *UserSedeService) checkHeadquarters(ctx context.Context, ds user_sede.Details) error {
	for _, d := range ds {
		hq, err := s.registry.FetchHeadquarter(ctx, d.SedeID)
		if err != nil {
			return err
		}
		if hq == nil {
			return domain.ErrInvalidReference("headquarter not found with id: %s", d.SedeID)
		}
		if !hq.IsActive() {
			return domain.ErrInactiveReference("headquarter with id %s is not active", d.SedeID)
		}
	}
	return nil
}

func (s *UserSedeService) activeRole(ctx context.Context, userID string) (user.Role, error) {
	role, ok, err := s.roles.GetActiveRoleByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.ErrUserNotActive("user not found or not active with id: %s", userID)
	}
	return role, nil
}
