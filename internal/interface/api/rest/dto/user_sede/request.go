package user_sede

import "time"

type (
	Request struct {
		UserID           string          `json:"userId"`
		AssignmentReason string          `json:"assignmentReason"`
		Observations     string          `json:"observations"`
		Status           string          `json:"status"`
		Details          []DetailRequest `json:"details"`
	}

	DetailRequest struct {
		SedeID           string     `json:"sedeId"`
		SortOrder        *int       `json:"sortOrder"`
		Role             string     `json:"role"`
		Schedule         string     `json:"schedule"`
		AssignedAt       *time.Time `json:"assignedAt"`
		ActiveUntil      *time.Time `json:"activeUntil"`
		Responsibilities []string   `json:"responsibilities"`
	}
)
