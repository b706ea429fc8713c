package user_sede

import (
	"vg-ms-user/internal/domain/user"
	"vg-ms-user/internal/domain/user_sede"
)

func ToResponseUserSede(d user_sede.UserSede) UserSede {
	details := make([]Detail, len(d.Details))
	for i, det := range d.Details {
		details[i] = Detail{
			SedeID:           det.SedeID,
			SortOrder:        det.SortOrder,
			Role:             string(det.Role),
			Schedule:         det.Schedule,
			AssignedAt:       det.AssignedAt,
			ActiveUntil:      det.ActiveUntil,
			Responsibilities: det.Responsibilities,
		}
	}

	return UserSede{
		ID:               d.ID,
		UserID:           d.UserID,
		AssignmentReason: d.AssignmentReason,
		Observations:     d.Observations,
		Status:           string(d.Status),
		Details:          details,
	}
}

func ToResponseUserSedes(ds user_sede.UserSedes) UserSedes {
	out := make(UserSedes, len(ds))
	for idx, d := range ds {
		out[idx] = ToResponseUserSede(*d)
	}

	return out
}

// ToDomainUserSede keeps a missing details list nil so an update leaves the
// stored details alone.
func ToDomainUserSede(r Request) user_sede.UserSede {
	us := user_sede.UserSede{
		UserID:           r.UserID,
		AssignmentReason: r.AssignmentReason,
		Observations:     r.Observations,
		Status:           user_sede.Status(r.Status),
	}
	if r.Details == nil {
		return us
	}

	us.Details = make(user_sede.Details, len(r.Details))
	for i, det := range r.Details {
		us.Details[i] = user_sede.Detail{
			SedeID:           det.SedeID,
			SortOrder:        det.SortOrder,
			Role:             user.Role(det.Role),
			Schedule:         det.Schedule,
			AssignedAt:       det.AssignedAt,
			ActiveUntil:      det.ActiveUntil,
			Responsibilities: det.Responsibilities,
		}
	}

	return us
}
