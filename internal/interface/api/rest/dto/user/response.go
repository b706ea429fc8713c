package user

type (
	User struct {
		ID             string   `json:"id"`
		UserName       string   `json:"userName"`
		FirstName      string   `json:"firstName"`
		LastName       string   `json:"lastName"`
		Email          string   `json:"email"`
		Phone          string   `json:"phone"`
		DocumentType   string   `json:"documentType"`
		DocumentNumber string   `json:"documentNumber"`
		Role           string   `json:"role"`
		Status         string   `json:"status"`
		InstitutionID  string   `json:"institutionId"`
		Permissions    []string `json:"permissions"`
	}
	Users        []User
	ResponseData struct {
		Data Users `json:"data"`
	}

	ActiveRole struct {
		UserID string `json:"userId"`
		Role   string `json:"role"`
	}
)
