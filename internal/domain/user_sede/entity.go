package user_sede

import (
	"time"

	"vg-ms-user/internal/domain/user"
)

// Assignment statuses keep the vocabulary of the assignment records; they are
// unrelated to user.Status.
const (
	StatusActive   Status = "Activo"
	StatusInactive Status = "Inactivo"
)

type (
	Status string

	UserSede struct {
		ID               string
		UserID           string
		AssignmentReason string
		Observations     string
		Status           Status
		Details          Details
	}
	UserSedes []*UserSede

	Detail struct {
		SedeID           string
		SortOrder        *int
		Role             user.Role
		Schedule         string
		AssignedAt       *time.Time
		ActiveUntil      *time.Time
		Responsibilities []string
	}
	Details []Detail
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

func (us *UserSede) IsActive() bool { return us.Status == StatusActive }

// FillMissingRoles returns a copy of ds where every detail without a role
// carries role. Details with an explicit role are left alone.
func FillMissingRoles(ds Details, role user.Role) Details {
	if ds == nil {
		return nil
	}
	out := make(Details, len(ds))
	for i, d := range ds {
		if d.Role == "" {
			d.Role = role
		}
		out[i] = d
	}
	return out
}
