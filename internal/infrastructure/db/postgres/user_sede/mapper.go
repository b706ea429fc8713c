package user_sede

import (
	"encoding/json"
	"fmt"

	"vg-ms-user/internal/domain/user"
	domain "vg-ms-user/internal/domain/user_sede"
)

func fromDBModel(model *UserSede) (*domain.UserSede, error) {
	var ds []Detail
	if len(model.Details) > 0 {
		if err := json.Unmarshal(model.Details, &ds); err != nil {
			return nil, fmt.Errorf("decode details of user sede %s: %w", model.ID, err)
		}
	}

	details := make(domain.Details, len(ds))
	for i, d := range ds {
		details[i] = domain.Detail{
			SedeID:           d.SedeID,
			SortOrder:        d.SortOrder,
			Role:             user.Role(d.Role),
			Schedule:         d.Schedule,
			AssignedAt:       d.AssignedAt,
			ActiveUntil:      d.ActiveUntil,
			Responsibilities: d.Responsibilities,
		}
	}

	return &domain.UserSede{
		ID:               model.ID,
		UserID:           model.UserID,
		AssignmentReason: model.AssignmentReason,
		Observations:     model.Observations,
		Status:           domain.Status(model.Status),
		Details:          details,
	}, nil
}

func fromDBModels(models UserSedes) (domain.UserSedes, error) {
	out := make(domain.UserSedes, len(models))
	for idx, m := range models {
		us, err := fromDBModel(m)
		if err != nil {
			return nil, err
		}
		out[idx] = us
	}

	return out, nil
}

func encodeDetails(ds domain.Details) ([]byte, error) {
	out := make([]Detail, len(ds))
	for i, d := range ds {
		out[i] = Detail{
			SedeID:           d.SedeID,
			SortOrder:        d.SortOrder,
			Role:             string(d.Role),
			Schedule:         d.Schedule,
			AssignedAt:       d.AssignedAt,
			ActiveUntil:      d.ActiveUntil,
			Responsibilities: d.Responsibilities,
		}
	}
	return json.Marshal(out)
}
