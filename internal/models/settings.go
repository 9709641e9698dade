package models

// GuildSettings are the persisted per-guild queue settings
type GuildSettings struct {
	// GuildID is the Discord guild the settings belong to
	GuildID string `json:"guild_id"`

	// Autofill allows matches to fill role gaps with leftover players
	Autofill bool `json:"autofill"`
}
