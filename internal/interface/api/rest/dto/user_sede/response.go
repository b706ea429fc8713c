package user_sede

import "time"

type (
	UserSede struct {
		ID               string   `json:"id"`
		UserID           string   `json:"userId"`
		AssignmentReason string   `json:"assignmentReason"`
		Observations     string   `json:"observations"`
		Status           string   `json:"status"`
		Details          []Detail `json:"details"`
	}
	UserSedes    []UserSede
	ResponseData struct {
		Data UserSedes `json:"data"`
	}

	Detail struct {
		SedeID           string     `json:"sedeId"`
		SortOrder        *int       `json:"sortOrder,omitempty"`
		Role             string     `json:"role"`
		Schedule         string     `json:"schedule,omitempty"`
		AssignedAt       *time.Time `json:"assignedAt,omitempty"`
		ActiveUntil      *time.Time `json:"activeUntil,omitempty"`
		Responsibilities []string   `json:"responsibilities,omitempty"`
	}
)
