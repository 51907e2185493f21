package access

import "github.com/example/giro-certo-ops/internal/models"

// Role hierarchy: USER < MODERATOR < ADMIN. Unknown roles rank below USER
// so a malformed upstream role never gains access.
var rank = map[models.Role]int{
	models.RoleUser:      1,
	models.RoleModerator: 2,
	models.RoleAdmin:     3,
}

// AtLeast reports whether role sits at or above min in the hierarchy.
func AtLeast(role, min models.Role) bool {
	return rank[role] >= rank[min] && rank[role] > 0
}

// Requirement is the minimum privilege a view demands. The zero value
// requires authentication only.
type Requirement struct {
	min   models.Role
	exact models.Role
}

// None admits any authenticated user.
func None() Requirement { return Requirement{} }

// ModeratorOrAbove admits moderators and admins.
func ModeratorOrAbove() Requirement { return Requirement{min: models.RoleModerator} }

// AdminOnly admits admins; a moderator does not pass.
func AdminOnly() Requirement { return Requirement{min: models.RoleAdmin} }

// Exactly admits only the named role. Higher roles do NOT pass: an admin
// fails Exactly(MODERATOR).
func Exactly(role models.Role) Requirement { return Requirement{exact: role} }

// Allows evaluates the requirement against a role.
func (r Requirement) Allows(role models.Role) bool {
	if r.exact != "" {
		return role == r.exact
	}
	if r.min == "" {
		return rank[role] > 0
	}
	return AtLeast(role, r.min)
}
