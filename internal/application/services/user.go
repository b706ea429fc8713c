package services

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"vg-ms-user/internal/application/ports"
	"vg-ms-user/internal/domain"
	"vg-ms-user/internal/domain/user"
	"vg-ms-user/internal/infrastructure/mq"
)

type UserService struct {
	userRepository user.Repository
	registry       ports.Registry
	policy         user.PermissionPolicy
	events         ports.EventSink
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository user.Repository,
	registry ports.Registry,
	policy user.PermissionPolicy,
	events ports.EventSink,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		registry:       registry,
		policy:         policy,
		events:         events,
		mCounter:       mCounter,
	}
}

func (us *UserService) FindUsers(ctx context.Context, f user.Filter) (user.Users, error) {
	switch {
	case f.Role != "" && f.Status != "":
		return us.userRepository.FindByRoleAndStatus(ctx, f.Role, f.Status)
	case f.Role != "":
		return us.userRepository.FindByRole(ctx, f.Role)
	case f.Status != "":
		return us.userRepository.FindByStatus(ctx, f.Status)
	default:
		return us.userRepository.FindAll(ctx)
	}
}

func (us *UserService) FindUserByID(ctx context.Context, id string) (*user.User, error) {
	return us.fetch(ctx, id)
}

func (us *UserService) CreateUser(ctx context.Context, u user.User) (*user.User, error) {
	if err := us.checkInstitution(ctx, u.InstitutionID); err != nil {
		return nil, err
	}
	us.prepareNew(&u)

	uRet, err := us.userRepository.Save(ctx, &u)
	if err != nil {
		return nil, err
	}

	emit(ctx, us.events, mq.NewEvent(mq.EventUserCreated, uRet.ID, toUserPayload(uRet)))
	us.mCounter.WithLabelValues("user_created_total").Inc()

	return uRet, nil
}

// CreateUsersBatch validates every user in order before the single write;
// the first failure aborts the whole batch.
func (us *UserService) CreateUsersBatch(ctx context.Context, in user.Users) (user.Users, error) {
	prepared := make(user.Users, 0, len(in))
	for i, u := range in {
		if u == nil {
			return nil, domain.ErrValidation("user at position %d is empty", i)
		}
		cp := *u
		if err := us.checkInstitution(ctx, cp.InstitutionID); err != nil {
			return nil, fmt.Errorf("user %s: %w", cp.UserName, err)
		}
		us.prepareNew(&cp)
		prepared = append(prepared, &cp)
	}
	if len(prepared) == 0 {
		return user.Users{}, nil
	}

	saved, err := us.userRepository.SaveAll(ctx, prepared)
	if err != nil {
		return nil, err
	}

	for _, u := range saved {
		emit(ctx, us.events, mq.NewEvent(mq.EventUserCreated, u.ID, toUserPayload(u)))
	}
	us.mCounter.WithLabelValues("user_batch_created_total").Inc()

	return saved, nil
}

func (us *UserService) UpdateUser(ctx context.Context, id string, p user.Patch) (*user.User, error) {
	existing, err := us.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.InstitutionID != nil {
		if err = us.checkInstitution(ctx, *p.InstitutionID); err != nil {
			return nil, fmt.Errorf("update failed: %w", err)
		}
	}
	existing.Apply(p)

	uRet, err := us.userRepository.Save(ctx, existing)
	if err != nil {
		return nil, err
	}

	emit(ctx, us.events, mq.NewEvent(mq.EventUserUpdated, uRet.ID, toUserPayload(uRet)))
	us.mCounter.WithLabelValues("user_updated_total").Inc()

	return uRet, nil
}

func (us *UserService) ActivateUser(ctx context.Context, id string) (*user.User, error) {
	return us.setStatus(ctx, id, user.StatusActive, mq.EventUserActivated)
}

func (us *UserService) DeactivateUser(ctx context.Context, id string) (*user.User, error) {
	return us.setStatus(ctx, id, user.StatusInactive, mq.EventUserDeactivated)
}

func (us *UserService) GetActiveRoleByUserID(ctx context.Context, id string) (user.Role, bool, error) {
	u, err := us.userRepository.FindByID(ctx, id)
	if err != nil {
		return "", false, err
	}
	if u == nil || !u.IsActive() {
		return "", false, nil
	}
	if u.Role == "" {
		return user.RoleNone, true, nil
	}

	return u.Role, true, nil
}

func (us *UserService) AddPermission(ctx context.Context, id string, p user.Permission) (*user.User, error) {
	return us.changePermissions(ctx, id, func(cur user.Permissions) user.Permissions {
		return cur.Union(p)
	})
}

func (us *UserService) AddPermissions(ctx context.Context, id string, ps user.Permissions) (*user.User, error) {
	return us.changePermissions(ctx, id, func(cur user.Permissions) user.Permissions {
		return cur.Union(ps...)
	})
}

func (us *UserService) RemovePermission(ctx context.Context, id string, p user.Permission) (*user.User, error) {
	return us.changePermissions(ctx, id, func(cur user.Permissions) user.Permissions {
		return cur.Without(p)
	})
}

func (us *UserService) SetPermissions(ctx context.Context, id string, ps user.Permissions) (*user.User, error) {
	return us.changePermissions(ctx, id, func(user.Permissions) user.Permissions {
		return user.NewPermissions(ps...)
	})
}

// MigrateUsersWithDefaultPermissions gives every user without permissions the
// defaults of its role. Running it twice changes nothing the second time.
func (us *UserService) MigrateUsersWithDefaultPermissions(ctx context.Context) (user.Users, error) {
	all, err := us.userRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for i, u := range all {
		if len(u.Permissions) > 0 {
			continue
		}
		u.Permissions = us.policy.DefaultsFor(u.Role)
		saved, err := us.userRepository.Save(ctx, u)
		if err != nil {
			return nil, fmt.Errorf("migrate permissions of user %s: %w", u.ID, err)
		}
		all[i] = saved

		emit(ctx, us.events, mq.NewEvent(mq.EventUserPermissionsChanged, saved.ID, toUserPayload(saved)))
		us.mCounter.WithLabelValues("user_permissions_migrated_total").Inc()
	}

	return all, nil
}

func (us *UserService) fetch(ctx context.Context, id string) (*user.User, error) {
	u, err := us.userRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound("user not found with id: %s", id)
	}
	return u, nil
}

func (us *UserService) checkInstitution(ctx context.Context, id string) error {
	inst, err := us.registry.FetchInstitution(ctx, id)
	if err != nil {
		return err
	}
	if inst == nil {
		return domain.ErrInvalidReference("institution with id %s not found", id)
	}
	if !inst.IsActive() {
		return domain.ErrInactiveReference("institution with id %s is not active", id)
	}
	return nil
}

func (us *UserService) prepareNew(u *user.User) {
	u.Status = user.StatusActive
	if len(u.Permissions) == 0 {
		u.Permissions = us.policy.DefaultsFor(u.Role)
		return
	}
	u.Permissions = user.NewPermissions(u.Permissions...)
}

func (us *UserService) setStatus(ctx context.Context, id string, status user.Status, action string) (*user.User, error) {
	u, err := us.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Status = status

	uRet, err := us.userRepository.Save(ctx, u)
	if err != nil {
		return nil, err
	}

	emit(ctx, us.events, mq.NewEvent(action, uRet.ID, toUserPayload(uRet)))
	us.mCounter.WithLabelValues("user_status_changed_total").Inc()

	return uRet, nil
}

func (us *UserService) changePermissions(ctx context.Context, id string, fn func(user.Permissions) user.Permissions) (*user.User, error) {
	u, err := us.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Permissions = fn(u.Permissions)

	uRet, err := us.userRepository.Save(ctx, u)
	if err != nil {
		return nil, err
	}

	emit(ctx, us.events, mq.NewEvent(mq.EventUserPermissionsChanged, uRet.ID, toUserPayload(uRet)))
	us.mCounter.WithLabelValues("user_permissions_changed_total").Inc()

	return uRet, nil
}
