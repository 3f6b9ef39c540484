package models

import (
	"fmt"
)

// Role is the closed set of identities a token can carry.
// RoleFacultyAdmin ("Faculty/Administrator") is a lower privilege than RoleAdministrator.
type Role int

const (
	RoleUnknown Role = iota
	RoleStudent
	RoleFacultyAdmin
	RoleAdministrator
)

var roleNames = map[Role]string{
	RoleStudent:       "Student",
	RoleFacultyAdmin:  "Faculty/Administrator",
	RoleAdministrator: "Administrator",
}

// String returns the wire name of the role
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "Unknown"
}

// ParseRole converts a wire name to a Role. The match is exact.
func ParseRole(s string) (Role, error) {
	for role, name := range roleNames {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, fmt.Errorf("unknown role %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (r Role) MarshalText() ([]byte, error) {
	if _, ok := roleNames[r]; !ok {
		return nil, fmt.Errorf("cannot marshal unknown role %d", int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *Role) UnmarshalText(text []byte) error {
	role, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = role
	return nil
}

// CompletionStatus describes whether a course has both skills and competencies mapped
type CompletionStatus string

const (
	CompletionMapped   CompletionStatus = "Mapped"
	CompletionUnmapped CompletionStatus = "Unmapped"
	CompletionAll      CompletionStatus = "All"
)
