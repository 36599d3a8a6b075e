// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role is the single authorization attribute stored on a profile.
type Role string

const (
	// RoleUser is a storefront visitor with an account.
	RoleUser Role = "user"
	// RoleMember is a customer with at least one purchase.
	RoleMember Role = "member"
	// RoleSupport handles tickets. It is a parallel role, not a step below admin.
	RoleSupport Role = "support"
	// RoleAdmin runs the back-office.
	RoleAdmin Role = "admin"
	// RoleSuperAdmin additionally manages the team and destructive operations.
	RoleSuperAdmin Role = "super_admin"
)

// roleRanks orders the roles by privilege. Support sits between member and admin
// numerically, but admin gates compare against RoleAdmin explicitly.
var roleRanks = map[Role]int{
	RoleUser:       0,
	RoleMember:     1,
	RoleSupport:    2,
	RoleAdmin:      3,
	RoleSuperAdmin: 4,
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a known value.
func (r Role) IsValid() bool {
	_, ok := roleRanks[r]

	return ok
}

// Rank returns the privilege rank of the role, or -1 for unknown roles.
func (r Role) Rank() int {
	rank, ok := roleRanks[r]
	if !ok {
		return -1
	}

	return rank
}

// AtLeast reports whether r is privileged at least as much as min.
// Support never satisfies an admin threshold.
func (r Role) AtLeast(minRole Role) bool {
	if !r.IsValid() || !minRole.IsValid() {
		return false
	}
	if r == RoleSupport && minRole.Rank() > RoleSupport.Rank() {
		return false
	}

	return r.Rank() >= minRole.Rank()
}

// IsStaff reports whether the role belongs to the back-office team.
func (r Role) IsStaff() bool {
	return StaffRoles.Contains(r)
}

// Roles is a slice of Role for convenience.
type Roles []Role

// StaffRoles are the roles listed on the team page.
var StaffRoles = Roles{RoleSupport, RoleAdmin, RoleSuperAdmin}

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}
