package user_sede

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vg-ms-user/internal/domain/user"
	domain "vg-ms-user/internal/domain/user_sede"
)

func fromDocument(d *userSedeDocument) *domain.UserSede {
	details := make(domain.Details, len(d.Details))
	for i, dd := range d.Details {
		details[i] = domain.Detail{
			SedeID:           dd.SedeID,
			SortOrder:        dd.SortOrder,
			Role:             user.Role(dd.Role),
			Schedule:         dd.Schedule,
			AssignedAt:       dd.AssignedAt,
			ActiveUntil:      dd.ActiveUntil,
			Responsibilities: dd.Responsibilities,
		}
	}

	return &domain.UserSede{
		ID:               d.ID.Hex(),
		UserID:           d.UserID,
		AssignmentReason: d.AssignmentReason,
		Observations:     d.Observations,
		Status:           domain.Status(d.Status),
		Details:          details,
	}
}

func toDocument(id primitive.ObjectID, us *domain.UserSede) *userSedeDocument {
	details := make([]detailDocument, len(us.Details))
	for i, d := range us.Details {
		details[i] = detailDocument{
			SedeID:           d.SedeID,
			SortOrder:        d.SortOrder,
			Role:             string(d.Role),
			Schedule:         d.Schedule,
			AssignedAt:       d.AssignedAt,
			ActiveUntil:      d.ActiveUntil,
			Responsibilities: d.Responsibilities,
		}
	}

	return &userSedeDocument{
		ID:               id,
		UserID:           us.UserID,
		AssignmentReason: us.AssignmentReason,
		Observations:     us.Observations,
		Status:           string(us.Status),
		Details:          details,
	}
}
