package user

import (
	"slices"
)

const (
	PermissionCreate  Permission = "CREATE"
	PermissionEdit    Permission = "EDIT"
	PermissionView    Permission = "VIEW"
	PermissionDelete  Permission = "DELETE"
	PermissionRestore Permission = "RESTORE"
)

type (
	Permission string
	// Permissions is a set: NewPermissions keeps it sorted and free of duplicates.
	Permissions []Permission
)

func NewPermissions(ps ...Permission) Permissions {
	out := make(Permissions, 0, len(ps))
	for _, p := range ps {
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func (ps Permissions) Contains(p Permission) bool {
	_, ok := slices.BinarySearch(ps, p)
	return ok
}

func (ps Permissions) Union(others ...Permission) Permissions {
	all := make([]Permission, 0, len(ps)+len(others))
	all = append(all, ps...)
	all = append(all, others...)
	return NewPermissions(all...)
}

func (ps Permissions) Without(p Permission) Permissions {
	out := make(Permissions, 0, len(ps))
	for _, cur := range ps {
		if cur != p {
			out = append(out, cur)
		}
	}
	return out
}

func (ps Permissions) Strings() []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = string(p)
	}
	return out
}

func PermissionsFromStrings(ss []string) Permissions {
	ps := make([]Permission, len(ss))
	for i, s := range ss {
		ps[i] = Permission(s)
	}
	return NewPermissions(ps...)
}

// PermissionPolicy yields the permission set a role starts with.
type PermissionPolicy interface {
	DefaultsFor(role Role) Permissions
}

// RolePolicy is a lookup table with a fallback for unknown roles.
type RolePolicy struct {
	table    map[Role]Permissions
	fallback Permissions
}

func DefaultPolicy() RolePolicy {
	return RolePolicy{
		table: map[Role]Permissions{
			RoleDirector: NewPermissions(PermissionCreate, PermissionEdit, PermissionView, PermissionDelete, PermissionRestore),
			RoleProfesor: NewPermissions(PermissionView, PermissionEdit),
			RoleAuxiliar: NewPermissions(PermissionView, PermissionEdit),
		},
		fallback: NewPermissions(PermissionView),
	}
}

// DefaultsFor returns a fresh copy so callers may mutate the result.
func (p RolePolicy) DefaultsFor(role Role) Permissions {
	if ps, ok := p.table[role]; ok {
		return slices.Clone(ps)
	}
	return slices.Clone(p.fallback)
}
