package settings

import (
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/models"
	"github.com/pkg/errors"
)

// ErrSettingsNotFound is returned when a guild has no saved settings
var ErrSettingsNotFound = errors.New("settings not found")

// GetSettingsInput contains parameters for retrieving guild settings
type GetSettingsInput struct {
	GuildID string
}

// SaveSettingsInput contains parameters for saving guild settings
type SaveSettingsInput struct {
	Settings *models.GuildSettings
}

func validateSave(input *SaveSettingsInput) error {
	if input == nil || input.Settings == nil {
		return errors.New("input and settings cannot be nil")
	}
	if input.Settings.GuildID == "" {
		return errors.New("guild ID cannot be empty")
	}
	return nil
}
