package validator

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	domainUser "vg-ms-user/internal/domain/user"
	domainUserSede "vg-ms-user/internal/domain/user_sede"
	"vg-ms-user/internal/interface/api/rest/dto/user"
	"vg-ms-user/internal/interface/api/rest/dto/user_sede"
)

var (
	phoneRe      = regexp.MustCompile(`^\+?[0-9]{6,15}$`)
	permissionRe = regexp.MustCompile(`^[A-Z][A-Z_]*$`)
)

// ValidateUser checks a create request.
func ValidateUser(r user.Request) map[string]string {
	errs := make(map[string]string)

	requireName(errs, "userName", r.UserName, false)
	requireName(errs, "firstName", r.FirstName, true)
	requireName(errs, "lastName", r.LastName, true)

	if r.Email == nil || strings.TrimSpace(*r.Email) == "" {
		errs["email"] = "email is required"
	}
	if r.InstitutionID == nil || strings.TrimSpace(*r.InstitutionID) == "" {
		errs["institutionId"] = "institutionId is required"
	}

	checkOptional(errs, r)

	if len(errs) == 0 {
		return nil
	}

	return errs
}

// ValidatePatch checks only the fields an update carries.
func ValidatePatch(r user.Request) map[string]string {
	errs := make(map[string]string)

	if r.UserName != nil {
		requireName(errs, "userName", r.UserName, false)
	}
	if r.FirstName != nil {
		requireName(errs, "firstName", r.FirstName, true)
	}
	if r.LastName != nil {
		requireName(errs, "lastName", r.LastName, true)
	}
	if r.InstitutionID != nil && strings.TrimSpace(*r.InstitutionID) == "" {
		errs["institutionId"] = "institutionId must not be empty"
	}

	checkOptional(errs, r)

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateUserStatus(s string) error {
	if s != "" && !domainUser.Status(s).Valid() {
		return fmt.Errorf("invalid user status: %s", s)
	}
	return nil
}

func ValidateUserSedeStatus(s string) error {
	if s != "" && !domainUserSede.Status(s).Valid() {
		return fmt.Errorf("invalid user sede status: %s", s)
	}
	return nil
}

func ValidatePermission(p string) error {
	if !permissionRe.MatchString(p) {
		return fmt.Errorf("invalid permission: %q", p)
	}
	return nil
}

func ValidatePermissions(r user.PermissionsRequest) map[string]string {
	errs := make(map[string]string)

	if r.Permission == "" && r.Permissions == nil {
		errs["permission"] = "permission or permissions is required"
	}
	if r.Permission != "" {
		if err := ValidatePermission(r.Permission); err != nil {
			errs["permission"] = err.Error()
		}
	}
	for i, p := range r.Permissions {
		if err := ValidatePermission(p); err != nil {
			errs[fmt.Sprintf("permissions[%d]", i)] = err.Error()
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

// ValidateUserSede checks an assignment request. On create at least one
// detail is required; on update a missing list keeps the stored one.
func ValidateUserSede(r user_sede.Request, create bool) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.UserID) == "" {
		errs["userId"] = "userId is required"
	}
	if err := ValidateUserSedeStatus(r.Status); err != nil {
		errs["status"] = err.Error()
	}
	if create && len(r.Details) == 0 {
		errs["details"] = "at least one detail is required"
	}
	for i, d := range r.Details {
		if strings.TrimSpace(d.SedeID) == "" {
			errs[fmt.Sprintf("details[%d].sedeId", i)] = "sedeId is required"
		}
		if d.AssignedAt != nil && d.ActiveUntil != nil && d.ActiveUntil.Before(*d.AssignedAt) {
			errs[fmt.Sprintf("details[%d].activeUntil", i)] = "activeUntil must not precede assignedAt"
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func checkOptional(errs map[string]string, r user.Request) {
	if r.Email != nil && strings.TrimSpace(*r.Email) != "" {
		if _, err := mail.ParseAddress(strings.TrimSpace(*r.Email)); err != nil {
			errs["email"] = "invalid email format"
		}
	} else if r.Email != nil {
		errs["email"] = "email is required"
	}
	if r.Phone != nil && *r.Phone != "" && !phoneRe.MatchString(strings.TrimSpace(*r.Phone)) {
		errs["phone"] = "phone must contain 6-15 digits"
	}
	if r.Status != nil {
		if err := ValidateUserStatus(*r.Status); err != nil || *r.Status == "" {
			errs["status"] = "status must be ACTIVE or INACTIVE"
		}
	}
	for i, p := range r.Permissions {
		if err := ValidatePermission(p); err != nil {
			errs[fmt.Sprintf("permissions[%d]", i)] = err.Error()
		}
	}
}

func requireName(errs map[string]string, field string, v *string, human bool) {
	s := ""
	if v != nil {
		s = strings.TrimSpace(*v)
	}

	switch {
	case s == "":
		errs[field] = field + " is required"
	case utf8.RuneCountInString(s) > 64:
		errs[field] = field + " must be at most 64 characters"
	case human && !isHumanName(s):
		errs[field] = "allowed characters: letters, space, '-', '''"
	}
}

func isHumanName(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' {
			continue
		}
		return false
	}
	return true
}
