package user_sede

import "time"

type (
	UserSede struct {
		ID               string
		UserID           string
		AssignmentReason string
		Observations     string
		Status           string
		Details          []byte
	}
	UserSedes []*UserSede

	// Detail is the element shape stored in the details jsonb column.
	Detail struct {
		SedeID           string     `json:"sedeId"`
		SortOrder        *int       `json:"sortOrder,omitempty"`
		Role             string     `json:"role,omitempty"`
		Schedule         string     `json:"schedule,omitempty"`
		AssignedAt       *time.Time `json:"assignedAt,omitempty"`
		ActiveUntil      *time.Time `json:"activeUntil,omitempty"`
		Responsibilities []string   `json:"responsibilities,omitempty"`
	}
)
