// Package auth issues and verifies the signed tokens that carry a caller's
// identity, and defines the role set used for authorization.
package auth

import "strings"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

// Identity is the verified caller.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Roles []Role `json:"roles"`
}

// HasRole reports whether r is one of the identity's roles. Matching is exact.
func (i Identity) HasRole(r Role) bool {
	for _, have := range i.Roles {
		if have == r {
			return true
		}
	}
	return false
}

func (i Identity) IsAdmin() bool { return i.HasRole(RoleAdmin) }

// ParseRoles normalizes stored role names, dropping unknown and duplicate entries.
func ParseRoles(names []string) []Role {
	out := make([]Role, 0, len(names))
	seen := map[Role]bool{}
	for _, n := range names {
		r := Role(strings.ToUpper(strings.TrimSpace(n)))
		if r != RoleAdmin && r != RoleCustomer {
			continue
		}
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}

func RoleNames(roles []Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}
