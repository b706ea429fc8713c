package services

import (
	"context"
	"time"

	"vg-ms-user/internal/application/ports"
	"vg-ms-user/internal/domain/user"
	"vg-ms-user/internal/domain/user_sede"
	"vg-ms-user/internal/infrastructure/mq"
)

type (
	userPayload struct {
		ID             string   `json:"id"`
		UserName       string   `json:"userName"`
		FirstName      string   `json:"firstName"`
		LastName       string   `json:"lastName"`
		Email          string   `json:"email"`
		DocumentType   string   `json:"documentType"`
		DocumentNumber string   `json:"documentNumber"`
		Role           string   `json:"role"`
		Status         string   `json:"status"`
		InstitutionID  string   `json:"institutionId"`
		Permissions    []string `json:"permissions"`
	}
	userSedePayload struct {
		ID               string         `json:"id"`
		UserID           string         `json:"userId"`
		AssignmentReason string         `json:"assignmentReason"`
		Status           string         `json:"status"`
		Details          []detailRecord `json:"details"`
	}
	detailRecord struct {
		SedeID      string     `json:"sedeId"`
		Role        string     `json:"role"`
		AssignedAt  *time.Time `json:"assignedAt,omitempty"`
		ActiveUntil *time.Time `json:"activeUntil,omitempty"`
	}
)

// password never leaves the service
func toUserPayload(u *user.User) userPayload {
	return userPayload{
		ID:             u.ID,
		UserName:       u.UserName,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Email:          u.Email,
		DocumentType:   u.DocumentType,
		DocumentNumber: u.DocumentNumber,
		Role:           string(u.Role),
		Status:         string(u.Status),
		InstitutionID:  u.InstitutionID,
		Permissions:    u.Permissions.Strings(),
	}
}

func toUserSedePayload(us *user_sede.UserSede) userSedePayload {
	ds := make([]detailRecord, len(us.Details))
	for i, d := range us.Details {
		ds[i] = detailRecord{
			SedeID:      d.SedeID,
			Role:        string(d.Role),
			AssignedAt:  d.AssignedAt,
			ActiveUntil: d.ActiveUntil,
		}
	}
	return userSedePayload{
		ID:               us.ID,
		UserID:           us.UserID,
		AssignmentReason: us.AssignmentReason,
		Status:           string(us.Status),
		Details:          ds,
	}
}

// emit hands e to the publisher. It gives up when the request is gone rather
// than blocking on a full buffer forever.
func emit(ctx context.Context, sink ports.EventSink, e mq.Event) {
	select {
	case sink.GetInputChan() <- e:
	case <-ctx.Done():
	}
}
