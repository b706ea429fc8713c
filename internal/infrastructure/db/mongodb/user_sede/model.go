package user_sede

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type (
	userSedeDocument struct {
		ID               primitive.ObjectID `bson:"_id"`
		UserID           string             `bson:"userId"`
		AssignmentReason string             `bson:"assignmentReason"`
		Observations     string             `bson:"observations"`
		Status           string             `bson:"status"`
		Details          []detailDocument   `bson:"details"`
	}
	detailDocument struct {
		SedeID           string     `bson:"sedeId"`
		SortOrder        *int       `bson:"sortOrder,omitempty"`
		Role             string     `bson:"role,omitempty"`
		Schedule         string     `bson:"schedule,omitempty"`
		AssignedAt       *time.Time `bson:"assignedAt,omitempty"`
		ActiveUntil      *time.Time `bson:"activeUntil,omitempty"`
		Responsibilities []string   `bson:"responsibilities,omitempty"`
	}
)
