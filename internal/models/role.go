package models

import "strings"

// Role is one of the five positions a player queues under. The numeric value
// is the team slot index.
type Role int

const (
	// RoleTop is the top lane
	RoleTop Role = iota

	// RoleJungle is the jungle
	RoleJungle

	// RoleMid is the mid lane
	RoleMid

	// RoleBot is the bot lane carry
	RoleBot

	// RoleSupport is the bot lane support
	RoleSupport
)

// RoleCount is the number of roles, and therefore the size of a team
const RoleCount = 5

// MatchSize is the number of queued players needed to attempt a match
const MatchSize = 2 * RoleCount

// Roles lists every role in slot order
var Roles = [RoleCount]Role{RoleTop, RoleJungle, RoleMid, RoleBot, RoleSupport}

var roleNames = [RoleCount]string{"Top", "Jungle", "Mid", "Bot", "Support"}

// RoleError is returned for role parsing failures
type RoleError string

// Error implements the error interface
func (e RoleError) Error() string {
	return string(e)
}

// ErrInvalidRole is returned when a role name is not one of the five roles
const ErrInvalidRole RoleError = "role not supported, choose one of Top/Jungle/Mid/Bot/Support"

// String returns the display name of the role
func (r Role) String() string {
	if !r.Valid() {
		return "Unknown"
	}
	return roleNames[r]
}

// Valid reports whether r is one of the five roles
func (r Role) Valid() bool {
	return r >= RoleTop && r <= RoleSupport
}

// ParseRole converts a role name to a Role, ignoring case and surrounding space
func ParseRole(name string) (Role, error) {
	name = strings.TrimSpace(name)
	for _, role := range Roles {
		if strings.EqualFold(roleNames[role], name) {
			return role, nil
		}
	}
	return 0, ErrInvalidRole
}

// PrimaryRole picks the role a player queues under from the set of roles they
// hold. When several are present the first in slot order wins.
func PrimaryRole(roles []Role) (Role, bool) {
	held := [RoleCount]bool{}
	for _, r := range roles {
		if r.Valid() {
			held[r] = true
		}
	}
	for _, role := range Roles {
		if held[role] {
			return role, true
		}
	}
	return 0, false
}
