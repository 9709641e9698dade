// Package queue holds the per-role pending queues of a single guild.
package queue

import "github.com/atharrell/LoL-Game-Queue-Bot/internal/models"

// RoleQueue keeps one ordered queue per role plus the combined arrival order.
// Every player in a role queue is in the total queue exactly once and vice
// versa. It is not safe for concurrent use.
type RoleQueue struct {
	roles [models.RoleCount][]models.Player
	total []models.Player
	index map[string]models.Role // player ID -> role queue holding them
}

// New creates an empty RoleQueue
func New() *RoleQueue {
	return &RoleQueue{
		index: make(map[string]models.Role),
	}
}

// Enqueue appends the player to the role queue and to the total queue.
// It returns the 1-based position of the player within the role queue.
func (q *RoleQueue) Enqueue(role models.Role, player models.Player) (int, error) {
	if !role.Valid() {
		return 0, ErrInvalidRole
	}
	if _, ok := q.index[player.ID]; ok {
		return 0, ErrAlreadyQueued
	}

	q.roles[role] = append(q.roles[role], player)
	q.total = append(q.total, player)
	q.index[player.ID] = role

	return len(q.roles[role]), nil
}

// Dequeue removes the player from their role queue and the total queue and
// returns the role they were queued under
func (q *RoleQueue) Dequeue(playerID string) (models.Role, error) {
	role, ok := q.index[playerID]
	if !ok {
		return 0, ErrNotQueued
	}

	q.roles[role] = without(q.roles[role], playerID)
	q.total = without(q.total, playerID)
	delete(q.index, playerID)

	return role, nil
}

// Contains reports whether the player is queued under any role
func (q *RoleQueue) Contains(playerID string) bool {
	_, ok := q.index[playerID]
	return ok
}

// RoleOf returns the role the player is queued under
func (q *RoleQueue) RoleOf(playerID string) (models.Role, bool) {
	role, ok := q.index[playerID]
	return role, ok
}

// Clear empties every queue and returns how many players were removed
func (q *RoleQueue) Clear() int {
	n := len(q.total)
	q.roles = [models.RoleCount][]models.Player{}
	q.total = nil
	q.index = make(map[string]models.Role)
	return n
}

// Len returns the number of queued players
func (q *RoleQueue) Len() int {
	return len(q.total)
}

// Snapshot returns a copy of one role queue in arrival order
func (q *RoleQueue) Snapshot(role models.Role) []models.Player {
	if !role.Valid() {
		return nil
	}
	return clone(q.roles[role])
}

// Total returns a copy of the combined queue in arrival order
func (q *RoleQueue) Total() []models.Player {
	return clone(q.total)
}

// Queues returns a copy of every role queue indexed by role
func (q *RoleQueue) Queues() [models.RoleCount][]models.Player {
	var out [models.RoleCount][]models.Player
	for _, role := range models.Roles {
		out[role] = clone(q.roles[role])
	}
	return out
}

func clone(players []models.Player) []models.Player {
	return append([]models.Player{}, players...)
}

// without returns players minus the entry with the given ID, keeping order
func without(players []models.Player, playerID string) []models.Player {
	for i, p := range players {
		if p.ID == playerID {
			return append(players[:i:i], players[i+1:]...)
		}
	}
	return players
}
