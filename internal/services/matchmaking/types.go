package matchmaking

import (
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/common/clock"
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/common/uuid"
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/models"
	settingsRepo "github.com/atharrell/LoL-Game-Queue-Bot/internal/repositories/settings"
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/services/teams"
	"github.com/sirupsen/logrus"
)

// Config holds configuration for the matchmaking service
type Config struct {
	// Autofill setting for guilds with no saved settings
	DefaultAutofill bool

	// Repository dependencies
	SettingsRepo settingsRepo.Repository

	// Service dependencies
	Resolver      teams.Resolver
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger defaults to the logrus standard logger
	Logger *logrus.Logger
}

// ProvisionGuildInput defines the input for ProvisionGuild
type ProvisionGuildInput struct {
	GuildID string
}

// ProvisionGuildOutput defines the output for ProvisionGuild
type ProvisionGuildOutput struct {
	Autofill bool

	// Created is true when no settings existed and the defaults were saved
	Created bool
}

// JoinQueueInput defines the input for JoinQueue
type JoinQueueInput struct {
	GuildID string
	Player  models.Player

	// Roles are the queue roles the member holds, in any order
	Roles []models.Role
}

// JoinQueueOutput defines the output for JoinQueue
type JoinQueueOutput struct {
	Role models.Role

	// Position is the 1-based place in the role queue
	Position int

	// QueueSize is the total queue length after the join and any match
	QueueSize int

	// Match is set when the join formed two teams
	Match *models.Match

	// Insufficient is set when enough players are queued but the roles could not be filled
	Insufficient bool
}

// LeaveQueueInput defines the input for LeaveQueue
type LeaveQueueInput struct {
	GuildID  string
	PlayerID string
}

// LeaveQueueOutput defines the output for LeaveQueue
type LeaveQueueOutput struct {
	Role      models.Role
	QueueSize int
}

// ClearQueueInput defines the input for ClearQueue
type ClearQueueInput struct {
	GuildID string
}

// ClearQueueOutput defines the output for ClearQueue
type ClearQueueOutput struct {
	Removed int
}

// ToggleAutofillInput defines the input for ToggleAutofill
type ToggleAutofillInput struct {
	GuildID string
}

// ToggleAutofillOutput defines the output for ToggleAutofill
type ToggleAutofillOutput struct {
	Autofill bool

	// Persisted is false when the new value could not be saved
	Persisted bool
}

// PeekQueueInput defines the input for PeekQueue
type PeekQueueInput struct {
	GuildID string

	// Role selects one role queue; nil selects the whole queue
	Role *models.Role
}

// PeekQueueOutput defines the output for PeekQueue
type PeekQueueOutput struct {
	Role    *models.Role
	Players []models.Player
}

// GetAutofillInput defines the input for GetAutofill
type GetAutofillInput struct {
	GuildID string
}

// GetAutofillOutput defines the output for GetAutofill
type GetAutofillOutput struct {
	Autofill bool
}
