package matchmaking

import (
	"sync"

	"github.com/atharrell/LoL-Game-Queue-Bot/internal/queue"
)

// guildState is the queue and settings of one guild. mu guards queue and
// autofill; saveMu orders settings writes and is never held with mu.
type guildState struct {
	mu       sync.Mutex
	queue    *queue.RoleQueue
	autofill bool

	saveMu sync.Mutex
}

// registry owns every guild state for the life of the process
type registry struct {
	mu     sync.Mutex
	guilds map[string]*guildState
}

func newRegistry() *registry {
	return &registry{
		guilds: make(map[string]*guildState),
	}
}

func (r *registry) get(guildID string) (*guildState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.guilds[guildID]
	return state, ok
}

// add stores a new guild state unless another caller got there first, in
// which case the existing state wins and added is false
func (r *registry) add(guildID string, autofill bool) (state *guildState, added bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.guilds[guildID]; ok {
		return existing, false
	}

	state = &guildState{
		queue:    queue.New(),
		autofill: autofill,
	}
	r.guilds[guildID] = state
	return state, true
}
