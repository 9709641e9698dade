package settings

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/atharrell/LoL-Game-Queue-Bot/internal/repositories/settings Repository

import (
	"context"

	"github.com/atharrell/LoL-Game-Queue-Bot/internal/models"
)

// Repository defines the interface for guild settings persistence
type Repository interface {
	// GetSettings retrieves the settings of a guild, ErrSettingsNotFound when none were saved
	GetSettings(ctx context.Context, input *GetSettingsInput) (*models.GuildSettings, error)

	// SaveSettings persists the settings of a guild, replacing any previous record
	SaveSettings(ctx context.Context, input *SaveSettingsInput) error
}
