package teams

import (
	"sort"

	"github.com/atharrell/LoL-Game-Queue-Bot/internal/models"
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/random"
)

type resolver struct {
	random random.Source
}

// New creates a new team resolver
func New(cfg *Config) (*resolver, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	return &resolver{
		random: cfg.Random,
	}, nil
}

// Resolve picks two players per role, sides chosen at random, and handles
// the overflow. With autofill on, empty slots are filled from the earliest
// queued leftovers; with it off, any empty slot blocks the match.
func (r *resolver) Resolve(input *ResolveInput) (*ResolveOutput, error) {
	assignment := &models.TeamAssignment{}
	var leftovers []models.Player

	for _, role := range models.Roles {
		leftovers = append(leftovers, r.pick(assignment, role, input.Queues[role])...)
	}

	aEmpty := assignment.TeamA.EmptySlots()
	bEmpty := assignment.TeamB.EmptySlots()
	emptyCount := len(aEmpty) + len(bEmpty)
	sortByArrival(leftovers, input.Total)

	if emptyCount == 0 {
		if input.Autofill {
			assignment.Leftovers = leftovers
		} else {
			assignment.Leftovers = []models.Player{}
		}
		return &ResolveOutput{Assignment: assignment}, nil
	}

	if !input.Autofill || len(leftovers) < emptyCount {
		return nil, ErrInsufficientPlayers
	}

	pool := append([]models.Player{}, leftovers[:emptyCount]...)
	fill := func(team *models.Team, slots []models.Role) {
		for _, role := range slots {
			i := r.random.Intn(len(pool))
			chosen := pool[i]
			pool = append(pool[:i], pool[i+1:]...)
			team[role] = &chosen
			assignment.Autofilled = append(assignment.Autofilled, chosen)
		}
	}
	fill(&assignment.TeamA, aEmpty)
	fill(&assignment.TeamB, bEmpty)

	assignment.Leftovers = append([]models.Player{}, leftovers[emptyCount:]...)

	return &ResolveOutput{Assignment: assignment}, nil
}

// pick fills the role's slot on both teams from its queue and returns the
// players that did not fit
func (r *resolver) pick(assignment *models.TeamAssignment, role models.Role, queue []models.Player) []models.Player {
	switch len(queue) {
	case 0:
		return nil
	case 1:
		only := queue[0]
		if r.random.Intn(2) == 0 {
			assignment.TeamA[role] = &only
		} else {
			assignment.TeamB[role] = &only
		}
		return nil
	}

	first, second := queue[0], queue[1]
	if r.random.Intn(2) == 1 {
		first, second = second, first
	}
	assignment.TeamA[role] = &first
	assignment.TeamB[role] = &second

	return queue[2:]
}

// sortByArrival orders players by their position in the total queue
func sortByArrival(players []models.Player, total []models.Player) {
	order := make(map[string]int, len(total))
	for i, p := range total {
		order[p.ID] = i
	}
	sort.SliceStable(players, func(i, j int) bool {
		return order[players[i].ID] < order[players[j].ID]
	})
}
