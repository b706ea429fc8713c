package user

import (
	domain "vg-ms-user/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	return &domain.User{
		ID:             model.ID,
		UserName:       model.UserName,
		FirstName:      model.FirstName,
		LastName:       model.LastName,
		Email:          model.Email,
		Phone:          model.Phone,
		DocumentType:   model.DocumentType,
		DocumentNumber: model.DocumentNumber,
		Password:       model.Password,
		Role:           domain.Role(model.Role),
		Status:         domain.Status(model.Status),
		InstitutionID:  model.InstitutionID,
		Permissions:    domain.PermissionsFromStrings(model.Permissions),
	}
}

func fromDBModels(models Users) domain.Users {
	us := make(domain.Users, len(models))
	for idx, u := range models {
		us[idx] = fromDBModel(u)
	}

	return us
}

// upsertArgs follows the column order of UpsertUser.
func upsertArgs(id string, u *domain.User) []any {
	return []any{
		id,
		u.UserName,
		u.FirstName,
		u.LastName,
		u.Email,
		u.Phone,
		u.DocumentType,
		u.DocumentNumber,
		u.Password,
		string(u.Role),
		string(u.Status),
		u.InstitutionID,
		u.Permissions.Strings(),
	}
}
