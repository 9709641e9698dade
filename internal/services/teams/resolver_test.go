package teams

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/atharrell/LoL-Game-Queue-Bot/internal/models"
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/random"
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/random/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ResolverTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRandom *mocks.MockSource
	resolver   Resolver
}

func (s *ResolverTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRandom = mocks.NewMockSource(s.mockCtrl)

	r, err := New(&Config{Random: s.mockRandom})
	s.Require().NoError(err)
	s.resolver = r
}

func (s *ResolverTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func p(id string) models.Player {
	return models.Player{ID: id, Name: id}
}

// snapshot builds a resolver input from (role, player) pairs in arrival order
func snapshot(autofill bool, entries ...interface{}) *ResolveInput {
	input := &ResolveInput{Autofill: autofill}
	for i := 0; i < len(entries); i += 2 {
		role := entries[i].(models.Role)
		player := p(entries[i+1].(string))
		input.Queues[role] = append(input.Queues[role], player)
		input.Total = append(input.Total, player)
	}
	return input
}

func twoPerRole(autofill bool) *ResolveInput {
	var entries []interface{}
	for _, role := range models.Roles {
		entries = append(entries, role, fmt.Sprintf("%s-1", role), role, fmt.Sprintf("%s-2", role))
	}
	return snapshot(autofill, entries...)
}

func (s *ResolverTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilRandom)
}

func (s *ResolverTestSuite) TestResolve_TwoPerRoleKeepsOrderOnZeroDraw() {
	s.mockRandom.EXPECT().Intn(2).Return(0).Times(models.RoleCount)

	output, err := s.resolver.Resolve(twoPerRole(false))
	s.Require().NoError(err)

	a := output.Assignment
	for _, role := range models.Roles {
		s.Require().NotNil(a.TeamA[role])
		s.Require().NotNil(a.TeamB[role])
		s.Equal(fmt.Sprintf("%s-1", role), a.TeamA[role].ID)
		s.Equal(fmt.Sprintf("%s-2", role), a.TeamB[role].ID)
	}
	s.Empty(a.Leftovers)
	s.Empty(a.Autofilled)
}

func (s *ResolverTestSuite) TestResolve_OneDrawSwapsSides() {
	s.mockRandom.EXPECT().Intn(2).Return(1).Times(models.RoleCount)

	output, err := s.resolver.Resolve(twoPerRole(true))
	s.Require().NoError(err)

	s.Equal("Top-2", output.Assignment.TeamA[models.RoleTop].ID)
	s.Equal("Top-1", output.Assignment.TeamB[models.RoleTop].ID)
}

func (s *ResolverTestSuite) TestResolve_SinglePlayerSide() {
	input := snapshot(true,
		models.RoleTop, "t1",
		models.RoleJungle, "j1", models.RoleJungle, "j2",
		models.RoleMid, "m1", models.RoleMid, "m2",
		models.RoleBot, "b1", models.RoleBot, "b2",
		models.RoleSupport, "s1", models.RoleSupport, "s2", models.RoleSupport, "s3",
	)

	// top goes to team B, every pair keeps its order, autofill takes the only candidate
	gomock.InOrder(
		s.mockRandom.EXPECT().Intn(2).Return(1),
		s.mockRandom.EXPECT().Intn(2).Return(0).Times(4),
		s.mockRandom.EXPECT().Intn(1).Return(0),
	)

	output, err := s.resolver.Resolve(input)
	s.Require().NoError(err)

	a := output.Assignment
	s.Equal("t1", a.TeamB[models.RoleTop].ID)
	s.Equal("s3", a.TeamA[models.RoleTop].ID)
	s.Equal([]models.Player{p("s3")}, a.Autofilled)
	s.True(a.IsAutofilled("s3"))
	s.Empty(a.Leftovers)
}

func (s *ResolverTestSuite) TestResolve_OverflowIsFIFOAndSortedByArrival() {
	input := snapshot(true,
		models.RoleMid, "m1",
		models.RoleMid, "m2",
		models.RoleTop, "t1",
		models.RoleTop, "t2",
		models.RoleMid, "m3",
		models.RoleJungle, "j1",
		models.RoleJungle, "j2",
		models.RoleBot, "b1",
		models.RoleBot, "b2",
		models.RoleTop, "t3",
		models.RoleMid, "m4",
	)
	// four role pairs, then the first autofill draw over a pool of two
	s.mockRandom.EXPECT().Intn(2).Return(0).Times(5)
	s.mockRandom.EXPECT().Intn(1).Return(0)

	output, err := s.resolver.Resolve(input)
	s.Require().NoError(err)

	a := output.Assignment
	s.Equal("m1", a.TeamA[models.RoleMid].ID)
	s.Equal("m2", a.TeamB[models.RoleMid].ID)
	s.Equal("t1", a.TeamA[models.RoleTop].ID)
	s.Equal("t2", a.TeamB[models.RoleTop].ID)

	// leftovers sorted: m3, t3, m4; pool = m3, t3
	s.Equal("m3", a.TeamA[models.RoleSupport].ID)
	s.Equal("t3", a.TeamB[models.RoleSupport].ID)
	s.Equal([]models.Player{p("m3"), p("t3")}, a.Autofilled)
	s.Equal([]models.Player{p("m4")}, a.Leftovers)
}

func (s *ResolverTestSuite) TestResolve_AutofillOffBlocksOnGap() {
	input := snapshot(false,
		models.RoleTop, "t1", models.RoleTop, "t2",
		models.RoleJungle, "j1", models.RoleJungle, "j2",
		models.RoleMid, "m1", models.RoleMid, "m2", models.RoleMid, "m3",
		models.RoleBot, "b1", models.RoleBot, "b2",
		models.RoleSupport, "s1",
	)
	s.mockRandom.EXPECT().Intn(2).Return(0).AnyTimes()

	output, err := s.resolver.Resolve(input)
	s.ErrorIs(err, ErrInsufficientPlayers)
	s.Nil(output)
}

func (s *ResolverTestSuite) TestResolve_AutofillOffFullTeamsDropLeftovers() {
	input := twoPerRole(false)
	extra := p("extra")
	input.Queues[models.RoleBot] = append(input.Queues[models.RoleBot], extra)
	input.Total = append(input.Total, extra)
	s.mockRandom.EXPECT().Intn(2).Return(0).Times(models.RoleCount)

	output, err := s.resolver.Resolve(input)
	s.Require().NoError(err)
	s.NotNil(output.Assignment.Leftovers)
	s.Empty(output.Assignment.Leftovers)
}

func (s *ResolverTestSuite) TestResolve_AutofillOnFullTeamsKeepLeftovers() {
	input := twoPerRole(true)
	extra := p("extra")
	input.Queues[models.RoleBot] = append(input.Queues[models.RoleBot], extra)
	input.Total = append(input.Total, extra)
	s.mockRandom.EXPECT().Intn(2).Return(0).Times(models.RoleCount)

	output, err := s.resolver.Resolve(input)
	s.Require().NoError(err)
	s.Equal([]models.Player{extra}, output.Assignment.Leftovers)
	s.Empty(output.Assignment.Autofilled)
}

func (s *ResolverTestSuite) TestResolve_NotEnoughLeftoversIsInsufficient() {
	input := snapshot(true,
		models.RoleTop, "P1",
		models.RoleMid, "P2",
		models.RoleMid, "P3",
		models.RoleMid, "P4",
	)
	s.mockRandom.EXPECT().Intn(2).Return(0).Times(2)

	output, err := s.resolver.Resolve(input)
	s.ErrorIs(err, ErrInsufficientPlayers)
	s.Nil(output)
}

func (s *ResolverTestSuite) TestResolve_DoesNotMutateInput() {
	input := snapshot(true,
		models.RoleTop, "t1", models.RoleTop, "t2", models.RoleTop, "t3",
		models.RoleTop, "t4", models.RoleTop, "t5", models.RoleTop, "t6",
		models.RoleTop, "t7", models.RoleTop, "t8", models.RoleTop, "t9",
		models.RoleTop, "t10",
	)
	before := append([]models.Player{}, input.Queues[models.RoleTop]...)
	beforeTotal := append([]models.Player{}, input.Total...)
	s.mockRandom.EXPECT().Intn(gomock.Any()).Return(0).AnyTimes()

	_, err := s.resolver.Resolve(input)
	s.Require().NoError(err)
	s.Equal(before, input.Queues[models.RoleTop])
	s.Equal(beforeTotal, input.Total)
}

func TestResolve_TwoPerRoleAlwaysFull(t *testing.T) {
	r, err := New(&Config{Random: random.New(&random.Config{Seed: 99})})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 500; i++ {
		for _, autofill := range []bool{true, false} {
			output, err := r.Resolve(twoPerRole(autofill))
			if err != nil {
				t.Fatalf("iteration %d autofill=%t: %v", i, autofill, err)
			}
			a := output.Assignment
			if !a.TeamA.Full() || !a.TeamB.Full() {
				t.Fatalf("iteration %d: teams not full", i)
			}
			if len(a.Leftovers) != 0 || len(a.Autofilled) != 0 {
				t.Fatalf("iteration %d: unexpected leftovers %v autofilled %v", i, a.Leftovers, a.Autofilled)
			}
		}
	}
}

func TestResolve_AutofillPropertiesOnRandomQueues(t *testing.T) {
	r, err := New(&Config{Random: random.New(&random.Config{Seed: 3})})
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 500; i++ {
		size := models.MatchSize + rng.Intn(8)
		var entries []interface{}
		for n := 0; n < size; n++ {
			entries = append(entries, models.Roles[rng.Intn(models.RoleCount)], fmt.Sprintf("p%d", n))
		}
		input := snapshot(true, entries...)

		output, err := r.Resolve(input)
		if err != nil {
			t.Fatalf("iteration %d: %v", i, err)
		}
		a := output.Assignment

		roleOf := make(map[string]models.Role)
		for _, role := range models.Roles {
			for _, pl := range input.Queues[role] {
				roleOf[pl.ID] = role
			}
		}

		seen := make(map[string]int)
		for _, team := range []models.Team{a.TeamA, a.TeamB} {
			for _, role := range models.Roles {
				slot := team[role]
				if slot == nil {
					t.Fatalf("iteration %d: empty slot %s", i, role)
				}
				seen[slot.ID]++
				if roleOf[slot.ID] != role && !a.IsAutofilled(slot.ID) {
					t.Fatalf("iteration %d: %s in %s slot without autofill", i, slot.ID, role)
				}
			}
		}
		if len(seen) != models.MatchSize {
			t.Fatalf("iteration %d: %d distinct players placed", i, len(seen))
		}
		for _, pl := range a.Leftovers {
			if seen[pl.ID] > 0 {
				t.Fatalf("iteration %d: leftover %s also placed", i, pl.ID)
			}
		}
		if len(a.Leftovers) != size-models.MatchSize {
			t.Fatalf("iteration %d: %d leftovers for %d queued", i, len(a.Leftovers), size)
		}
		for n := 1; n < len(a.Leftovers); n++ {
			var prev, cur int
			fmt.Sscanf(a.Leftovers[n-1].ID, "p%d", &prev)
			fmt.Sscanf(a.Leftovers[n].ID, "p%d", &cur)
			if prev > cur {
				t.Fatalf("iteration %d: leftovers out of arrival order", i)
			}
		}
	}
}
