package user

type (
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
		Role           string
		Status         string
		InstitutionID  string
		Permissions    []string
	}
	Users []*User
)
