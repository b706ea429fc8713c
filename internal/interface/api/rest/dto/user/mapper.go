package user

import (
	"vg-ms-user/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	return User{
		ID:             uDomain.ID,
		UserName:       uDomain.UserName,
		FirstName:      uDomain.FirstName,
		LastName:       uDomain.LastName,
		Email:          uDomain.Email,
		Phone:          uDomain.Phone,
		DocumentType:   uDomain.DocumentType,
		DocumentNumber: uDomain.DocumentNumber,
		Role:           string(uDomain.Role),
		Status:         string(uDomain.Status),
		InstitutionID:  uDomain.InstitutionID,
		Permissions:    uDomain.Permissions.Strings(),
	}
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

func ToDomainUser(r Request) user.User {
	u := user.User{
		UserName:       deref(r.UserName),
		FirstName:      deref(r.FirstName),
		LastName:       deref(r.LastName),
		Email:          deref(r.Email),
		Phone:          deref(r.Phone),
		DocumentType:   deref(r.DocumentType),
		DocumentNumber: deref(r.DocumentNumber),
		Password:       deref(r.Password),
		Role:           user.Role(deref(r.Role)),
		Status:         user.Status(deref(r.Status)),
		InstitutionID:  deref(r.InstitutionID),
	}
	if r.Permissions != nil {
		u.Permissions = user.PermissionsFromStrings(r.Permissions)
	}

	return u
}

func ToDomainUsers(rs Requests) user.Users {
	us := make(user.Users, len(rs))
	for idx, r := range rs {
		u := ToDomainUser(r)
		us[idx] = &u
	}

	return us
}

func ToDomainPatch(r Request) user.Patch {
	p := user.Patch{
		UserName:       r.UserName,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		DocumentType:   r.DocumentType,
		DocumentNumber: r.DocumentNumber,
		Password:       r.Password,
		InstitutionID:  r.InstitutionID,
	}
	if r.Role != nil {
		role := user.Role(*r.Role)
		p.Role = &role
	}
	if r.Status != nil {
		status := user.Status(*r.Status)
		p.Status = &status
	}
	if r.Permissions != nil {
		ps := user.PermissionsFromStrings(r.Permissions)
		p.Permissions = &ps
	}

	return p
}

func ToDomainPermissions(ss []string) user.Permissions {
	return user.PermissionsFromStrings(ss)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
