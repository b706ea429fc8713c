// Package registry describes the read-only views of records owned by the
// institution service.
package registry

import (
	"golang.org/x/text/cases"
)

// StatusActive is the registry's active marker, compared case-insensitively.
const StatusActive StatusCode = "A"

type (
	StatusCode string

	Institution struct {
		ID             string
		Name           string
		CodeName       string
		ModularCode    string
		Address        string
		ContactEmail   string
		ContactPhone   string
		Status         StatusCode
		HeadquarterIDs []string
	}

	Headquarter struct {
		ID            string
		InstitutionID string
		Name          string
		Code          string
		Address       string
		ContactPerson string
		ContactEmail  string
		ContactPhone  string
		Status        StatusCode
	}
)

// IsActive folds both sides; a Caser is stateful so one is built per call.
func (c StatusCode) IsActive() bool {
	fold := cases.Fold()
	return fold.String(string(c)) == fold.String(string(StatusActive))
}

func (i *Institution) IsActive() bool { return i.Status.IsActive() }
func (h *Headquarter) IsActive() bool { return h.Status.IsActive() }
