package models

// Player is a queued participant. ID is the identity; Name is only for display.
type Player struct {
	// ID is the Discord user ID of the player
	ID string `json:"id"`

	// Name is the display name of the player
	Name string `json:"name"`
}
