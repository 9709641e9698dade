package teams

import (
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/models"
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/random"
)

// Config holds configuration for the resolver
type Config struct {
	// Random draws team sides and autofill picks
	Random random.Source
}

// ResolveInput is an immutable snapshot of one guild's queue state
type ResolveInput struct {
	// Queues holds each role queue in arrival order, indexed by role
	Queues [models.RoleCount][]models.Player

	// Total is the combined queue in arrival order
	Total []models.Player

	// Autofill allows empty slots to be filled from leftovers
	Autofill bool
}

// ResolveOutput contains the formed teams
type ResolveOutput struct {
	Assignment *models.TeamAssignment
}
