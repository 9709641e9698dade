package models

// Team holds one optional player per role, indexed by Role
type Team [RoleCount]*Player

// EmptySlots returns the roles that have no player, in slot order
func (t Team) EmptySlots() []Role {
	var empty []Role
	for _, role := range Roles {
		if t[role] == nil {
			empty = append(empty, role)
		}
	}
	return empty
}

// Full reports whether every slot is filled
func (t Team) Full() bool {
	return len(t.EmptySlots()) == 0
}

// Players returns the assigned players in slot order
func (t Team) Players() []Player {
	players := make([]Player, 0, RoleCount)
	for _, p := range t {
		if p != nil {
			players = append(players, *p)
		}
	}
	return players
}

// TeamAssignment is the result of resolving a queue into two teams
type TeamAssignment struct {
	TeamA Team
	TeamB Team

	// Leftovers are queued players not placed in either team, in arrival order
	Leftovers []Player

	// Autofilled are the players placed off-role from the leftover pool
	Autofilled []Player
}

// Players returns every player placed in team A then team B
func (a *TeamAssignment) Players() []Player {
	return append(a.TeamA.Players(), a.TeamB.Players()...)
}

// IsAutofilled reports whether the player was placed off-role
func (a *TeamAssignment) IsAutofilled(playerID string) bool {
	for _, p := range a.Autofilled {
		if p.ID == playerID {
			return true
		}
	}
	return false
}
