package matchmaking

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/atharrell/LoL-Game-Queue-Bot/internal/services/matchmaking Service

import "context"

// Service defines the interface for per-guild queue coordination
type Service interface {
	// ProvisionGuild creates the guild state and loads its settings
	ProvisionGuild(ctx context.Context, input *ProvisionGuildInput) (*ProvisionGuildOutput, error)

	// JoinQueue adds a player to their role queue and forms a match when enough players are queued
	JoinQueue(ctx context.Context, input *JoinQueueInput) (*JoinQueueOutput, error)

	// LeaveQueue removes a player from the queue
	LeaveQueue(ctx context.Context, input *LeaveQueueInput) (*LeaveQueueOutput, error)

	// ClearQueue removes every queued player
	ClearQueue(ctx context.Context, input *ClearQueueInput) (*ClearQueueOutput, error)

	// ToggleAutofill flips the guild autofill setting and persists it
	ToggleAutofill(ctx context.Context, input *ToggleAutofillInput) (*ToggleAutofillOutput, error)

	// PeekQueue returns the players waiting in one role queue or the whole queue
	PeekQueue(ctx context.Context, input *PeekQueueInput) (*PeekQueueOutput, error)

	// GetAutofill returns the current guild autofill setting
	GetAutofill(ctx context.Context, input *GetAutofillInput) (*GetAutofillOutput, error)
}
