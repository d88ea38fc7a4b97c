package domain

import "time"

// Role is a tag granting access to a class of operations. Matching is
// case-sensitive and exact; holding one role never implies another.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
	RoleOperator   Role = "operator"
	RoleViewer     Role = "viewer"
)

// ValidRole reports whether r is one of the known role tags.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleSupervisor, RoleOperator, RoleViewer:
		return true
	}
	return false
}

// User models an authenticated actor. An account is usable only when IsActive
// is true, Disabled is false, and the role set is non-empty.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	FullName     string    `json:"full_name,omitempty"`
	PasswordHash string    `json:"-"`
	Roles        []Role    `json:"roles"`
	IsActive     bool      `json:"is_active"`
	Disabled     bool      `json:"disabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasAnyRole reports whether the user holds at least one of the given roles.
func (u *User) HasAnyRole(roles ...Role) bool {
	for _, want := range roles {
		for _, have := range u.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Elevated reports whether the user is exempt from ownership scoping.
func (u *User) Elevated() bool {
	return u.HasAnyRole(RoleAdmin, RoleSupervisor)
}

// CanAuthenticate reports whether the account may log in or present a bearer
// token.
func (u *User) CanAuthenticate() bool {
	return u.IsActive && !u.Disabled
}

// RoleStrings returns the role set as plain strings, for token claims.
func (u *User) RoleStrings() []string {
	out := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		out[i] = string(r)
	}
	return out
}

// RolesFromStrings converts raw role tags into the typed set, dropping
// unknown tags.
func RolesFromStrings(raw []string) []Role {
	out := make([]Role, 0, len(raw))
	for _, s := range raw {
		if r := Role(s); ValidRole(r) {
			out = append(out, r)
		}
	}
	return out
}
