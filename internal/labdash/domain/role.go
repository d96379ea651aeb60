package domain

import "strings"

// Role is a user's job function. It selects which dashboard modules the user
// can see.
type Role string

const (
	RoleUnknown        Role = ""
	RoleOperator       Role = "operator"
	RoleTechnician     Role = "technician"
	RoleAdministration Role = "administration"
	RoleCoordination   Role = "coordination"
)

// Roles lists the known roles in display order.
var Roles = []Role{RoleOperator, RoleTechnician, RoleAdministration, RoleCoordination}

// legacy role names written by the first dashboard deployment.
var roleAliases = map[string]Role{
	"operario":       RoleOperator,
	"tecnico":        RoleTechnician,
	"técnico":        RoleTechnician,
	"administracion": RoleAdministration,
	"administración": RoleAdministration,
	"coordinacion":   RoleCoordination,
	"coordinación":   RoleCoordination,
}

// ParseRole normalises a stored or submitted role. Unrecognised input yields
// RoleUnknown; it never fails.
func ParseRole(s string) Role {
	s = strings.ToLower(strings.TrimSpace(s))
	switch r := Role(s); r {
	case RoleOperator, RoleTechnician, RoleAdministration, RoleCoordination:
		return r
	}
	if r, ok := roleAliases[s]; ok {
		return r
	}
	return RoleUnknown
}

// Known reports whether r is one of the four defined roles.
func (r Role) Known() bool {
	return ParseRole(string(r)) == r && r != RoleUnknown
}

// Label is the human name shown in the role badge.
func (r Role) Label() string {
	switch r {
	case RoleOperator:
		return "Operator"
	case RoleTechnician:
		return "Technician"
	case RoleAdministration:
		return "Administration"
	case RoleCoordination:
		return "Coordination"
	default:
		return "Unassigned"
	}
}

func (r Role) String() string { return string(r) }

// CanManageUsers reports whether r may create, edit and reset other users.
func (r Role) CanManageUsers() bool {
	return r == RoleAdministration || r == RoleCoordination
}

// CanDeleteUsers reports whether r may delete other users.
func (r Role) CanDeleteUsers() bool {
	return r == RoleAdministration
}
