package user

type (
	// Request serves create and update. On update an absent field keeps the
	// stored value.
	Request struct {
		UserName       *string  `json:"userName"`
		FirstName      *string  `json:"firstName"`
		LastName       *string  `json:"lastName"`
		Email          *string  `json:"email"`
		Phone          *string  `json:"phone"`
		DocumentType   *string  `json:"documentType"`
		DocumentNumber *string  `json:"documentNumber"`
		Password       *string  `json:"password"`
		Role           *string  `json:"role"`
		Status         *string  `json:"status"`
		InstitutionID  *string  `json:"institutionId"`
		Permissions    []string `json:"permissions"`
	}
	Requests []Request

	PermissionsRequest struct {
		Permission  string   `json:"permission"`
		Permissions []string `json:"permissions"`
	}
)
