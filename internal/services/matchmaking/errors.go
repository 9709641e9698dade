package matchmaking

import (
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/queue"
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/services/teams"
)

// MatchmakingError is a custom error type for coordinator errors
type MatchmakingError string

// Error implements the error interface
func (e MatchmakingError) Error() string {
	return string(e)
}

const (
	ErrNoRoleAssigned   MatchmakingError = "player has no queue role assigned"
	ErrEmptyGuildID     MatchmakingError = "guild ID cannot be empty"
	ErrEmptyPlayerID    MatchmakingError = "player ID cannot be empty"
	ErrNilInput         MatchmakingError = "input cannot be nil"
	ErrNilConfig        MatchmakingError = "config cannot be nil"
	ErrNilSettingsRepo  MatchmakingError = "settings repository cannot be nil"
	ErrNilResolver      MatchmakingError = "team resolver cannot be nil"
	ErrNilClock         MatchmakingError = "clock cannot be nil"
	ErrNilUUIDGenerator MatchmakingError = "UUID generator cannot be nil"
)

// Queue and resolution errors surfaced by the service
const (
	ErrInvalidRole         = queue.ErrInvalidRole
	ErrAlreadyQueued       = queue.ErrAlreadyQueued
	ErrNotQueued           = queue.ErrNotQueued
	ErrInsufficientPlayers = teams.ErrInsufficientPlayers
)
