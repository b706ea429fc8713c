package user

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	domain "vg-ms-user/internal/domain/user"
)

func fromDocument(d *userDocument) *domain.User {
	return &domain.User{
		ID:             d.ID.Hex(),
		UserName:       d.UserName,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		Email:          d.Email,
		Phone:          d.Phone,
		DocumentType:   d.DocumentType,
		DocumentNumber: d.DocumentNumber,
		Password:       d.Password,
		Role:           domain.Role(d.Role),
		Status:         domain.Status(d.Status),
		InstitutionID:  d.InstitutionID,
		Permissions:    domain.PermissionsFromStrings(d.Permissions),
	}
}

func toDocument(id primitive.ObjectID, u *domain.User) *userDocument {
	return &userDocument{
		ID:             id,
		UserName:       u.UserName,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Email:          u.Email,
		Phone:          u.Phone,
		DocumentType:   u.DocumentType,
		DocumentNumber: u.DocumentNumber,
		Password:       u.Password,
		Role:           string(u.Role),
		Status:         string(u.Status),
		InstitutionID:  u.InstitutionID,
		Permissions:    u.Permissions.Strings(),
	}
}
