package user

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"

	RoleDirector Role = "DIRECTOR"
	RoleProfesor Role = "PROFESOR"
	RoleAuxiliar Role = "AUXILIAR"
	// RoleNone is reported for an active user that carries no role.
	RoleNone Role = "SIN_ROL"
)

type (
	Status string
	// Role is free-form; the constants above are the values the policy knows about.
	Role string

	User struct {
		ID             string
		UserName       string
		FirstName      string
		LastName       string
		Email          string
		Phone          string
		DocumentType   string
		DocumentNumber string
		Password       string
		Role           Role
		Status         Status
		InstitutionID  string
		Permissions    Permissions
	}
	Users []*User

	// Patch carries a partial update: a nil field keeps the stored value.
	Patch struct {
		UserName       *string
		FirstName      *string
		LastName       *string
		Email          *string
		Phone          *string
		DocumentType   *string
		DocumentNumber *string
		Password       *string
		Role           *Role
		Status         *Status
		InstitutionID  *string
		Permissions    *Permissions
	}

	// Filter narrows listings; empty fields match everything.
	Filter struct {
		Role   Role
		Status Status
	}
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

func (u *User) IsActive() bool { return u.Status == StatusActive }

// Apply merges p into u. Password is only replaced by a non-empty value.
func (u *User) Apply(p Patch) {
	setIf(&u.UserName, p.UserName)
	setIf(&u.FirstName, p.FirstName)
	setIf(&u.LastName, p.LastName)
	setIf(&u.Email, p.Email)
	setIf(&u.Phone, p.Phone)
	setIf(&u.DocumentType, p.DocumentType)
	setIf(&u.DocumentNumber, p.DocumentNumber)
	setIf(&u.Role, p.Role)
	setIf(&u.Status, p.Status)
	setIf(&u.InstitutionID, p.InstitutionID)
	if p.Permissions != nil {
		u.Permissions = NewPermissions(*p.Permissions...)
	}
	if p.Password != nil && *p.Password != "" {
		u.Password = *p.Password
	}
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
