// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the kind of account a person holds in the marketplace.
type Role string

const (
	// RoleBuyer indicates a regular buyer account.
	RoleBuyer Role = "buyer"
	// RoleArtist indicates an artist account.
	RoleArtist Role = "artist"
)

// String returns the role as its wire representation.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the role is one the marketplace recognises.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleArtist:
		return true
	default:
		return false
	}
}

// Roles is the set of roles attached to an account.
type Roles []Role

// Contains reports whether role is present in the set.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings renders the set as plain strings for token claims.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings parses token claims back into Roles, dropping any
// value that is not a known role.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
