package models

import "time"

// Match is a pair of teams formed from a guild's queue
type Match struct {
	// ID is the unique identifier for the match
	ID string

	// GuildID is the Discord guild the match was formed in
	GuildID string

	// Teams holds the assignment produced by the resolver
	Teams *TeamAssignment

	// FormedAt is when the match was formed
	FormedAt time.Time
}
