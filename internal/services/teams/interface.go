package teams

//go:generate mockgen -package=mocks -destination=mocks/mock_resolver.go github.com/atharrell/LoL-Game-Queue-Bot/internal/services/teams Resolver

// Resolver turns a snapshot of a guild's role queues into two teams
type Resolver interface {
	// Resolve builds a team assignment without touching queue state
	Resolve(input *ResolveInput) (*ResolveOutput, error)
}
