package matchmaking

import (
	"context"

	"github.com/atharrell/LoL-Game-Queue-Bot/internal/common/clock"
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/common/uuid"
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/models"
	settingsRepo "github.com/atharrell/LoL-Game-Queue-Bot/internal/repositories/settings"
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/services/teams"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// service implements the Service interface
type service struct {
	defaultAutofill bool
	settingsRepo    settingsRepo.Repository
	resolver        teams.Resolver
	clock           clock.Clock
	uuidGenerator   uuid.UUID
	logger          *logrus.Logger

	guilds *registry
}

// New creates a new matchmaking service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SettingsRepo == nil {
		return nil, ErrNilSettingsRepo
	}

	if cfg.Resolver == nil {
		return nil, ErrNilResolver
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &service{
		defaultAutofill: cfg.DefaultAutofill,
		settingsRepo:    cfg.SettingsRepo,
		resolver:        cfg.Resolver,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
		logger:          logger,
		guilds:          newRegistry(),
	}, nil
}

// ProvisionGuild creates the guild state and loads its settings
func (s *service) ProvisionGuild(ctx context.Context, input *ProvisionGuildInput) (*ProvisionGuildOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.GuildID == "" {
		return nil, ErrEmptyGuildID
	}

	state, created := s.guild(ctx, input.GuildID)

	state.mu.Lock()
	autofill := state.autofill
	state.mu.Unlock()

	return &ProvisionGuildOutput{
		Autofill: autofill,
		Created:  created,
	}, nil
}

// JoinQueue adds a player to the queue of their primary role. Once ten or
// more players are queued the guild is resolved exactly once; a formed match
// removes its players from the queue.
func (s *service) JoinQueue(ctx context.Context, input *JoinQueueInput) (*JoinQueueOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.GuildID == "" {
		return nil, ErrEmptyGuildID
	}

	if input.Player.ID == "" {
		return nil, ErrEmptyPlayerID
	}

	state, _ := s.guild(ctx, input.GuildID)

	output, err := s.join(state, input)
	if err != nil {
		return nil, err
	}

	log := s.logger.WithFields(logrus.Fields{
		"guild_id":  input.GuildID,
		"player_id": input.Player.ID,
		"role":      output.Role.String(),
	})

	switch {
	case output.Match != nil:
		log.WithFields(logrus.Fields{
			"match_id":   output.Match.ID,
			"autofilled": len(output.Match.Teams.Autofilled),
			"leftovers":  len(output.Match.Teams.Leftovers),
		}).Info("Match formed")
	case output.Insufficient:
		log.WithField("queue_size", output.QueueSize).Info("Queue full but roles could not be filled")
	default:
		log.WithField("position", output.Position).Debug("Player joined queue")
	}

	return output, nil
}

func (s *service) join(state *guildState, input *JoinQueueInput) (*JoinQueueOutput, error) {
	state.mu.Lock()
	defer state.mu.Unlock()

	q := state.queue

	if q.Contains(input.Player.ID) {
		return nil, ErrAlreadyQueued
	}

	role, ok := models.PrimaryRole(input.Roles)
	if !ok {
		return nil, ErrNoRoleAssigned
	}

	position, err := q.Enqueue(role, input.Player)
	if err != nil {
		return nil, err
	}

	output := &JoinQueueOutput{
		Role:     role,
		Position: position,
	}

	if q.Len() >= models.MatchSize {
		resolved, err := s.resolver.Resolve(&teams.ResolveInput{
			Queues:   q.Queues(),
			Total:    q.Total(),
			Autofill: state.autofill,
		})

		switch {
		case errors.Is(err, ErrInsufficientPlayers):
			output.Insufficient = true
		case err != nil:
			return nil, err
		default:
			for _, player := range resolved.Assignment.Players() {
				if _, err := q.Dequeue(player.ID); err != nil {
					return nil, errors.Wrapf(err, "failed to remove matched player %s", player.ID)
				}
			}

			output.Match = &models.Match{
				ID:       s.uuidGenerator.NewUUID(),
				GuildID:  input.GuildID,
				Teams:    resolved.Assignment,
				FormedAt: s.clock.Now(),
			}
		}
	}

	output.QueueSize = q.Len()
	return output, nil
}

// LeaveQueue removes a player from the queue
func (s *service) LeaveQueue(ctx context.Context, input *LeaveQueueInput) (*LeaveQueueOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.GuildID == "" {
		return nil, ErrEmptyGuildID
	}

	state, _ := s.guild(ctx, input.GuildID)

	state.mu.Lock()
	role, err := state.queue.Dequeue(input.PlayerID)
	size := state.queue.Len()
	state.mu.Unlock()

	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"guild_id":  input.GuildID,
		"player_id": input.PlayerID,
		"role":      role.String(),
	}).Debug("Player left queue")

	return &LeaveQueueOutput{
		Role:      role,
		QueueSize: size,
	}, nil
}

// ClearQueue removes every queued player
func (s *service) ClearQueue(ctx context.Context, input *ClearQueueInput) (*ClearQueueOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.GuildID == "" {
		return nil, ErrEmptyGuildID
	}

	state, _ := s.guild(ctx, input.GuildID)

	state.mu.Lock()
	removed := state.queue.Clear()
	state.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"guild_id": input.GuildID,
		"removed":  removed,
	}).Info("Queue cleared")

	return &ClearQueueOutput{
		Removed: removed,
	}, nil
}

// ToggleAutofill flips the autofill flag and persists the result. A failed
// save is logged and reported through Persisted; the in-memory flag keeps
// its new value.
func (s *service) ToggleAutofill(ctx context.Context, input *ToggleAutofillInput) (*ToggleAutofillOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.GuildID == "" {
		return nil, ErrEmptyGuildID
	}

	state, _ := s.guild(ctx, input.GuildID)

	state.mu.Lock()
	state.autofill = !state.autofill
	autofill := state.autofill
	state.mu.Unlock()

	persisted := s.persist(ctx, input.GuildID, state)

	return &ToggleAutofillOutput{
		Autofill:  autofill,
		Persisted: persisted,
	}, nil
}

// persist saves the latest autofill value. Saves are serialized per guild and
// always write the value current at save time, so the last save wins with the
// last toggle.
func (s *service) persist(ctx context.Context, guildID string, state *guildState) bool {
	state.saveMu.Lock()
	defer state.saveMu.Unlock()

	state.mu.Lock()
	autofill := state.autofill
	state.mu.Unlock()

	err := s.settingsRepo.SaveSettings(ctx, &settingsRepo.SaveSettingsInput{
		Settings: &models.GuildSettings{
			GuildID:  guildID,
			Autofill: autofill,
		},
	})
	if err != nil {
		s.logger.WithError(err).WithField("guild_id", guildID).Warn("Failed to persist guild settings")
		return false
	}

	s.logger.WithFields(logrus.Fields{
		"guild_id": guildID,
		"autofill": autofill,
	}).Info("Guild settings saved")

	return true
}

// PeekQueue returns a copy of one role queue, or of the whole queue when no role is given
func (s *service) PeekQueue(ctx context.Context, input *PeekQueueInput) (*PeekQueueOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.GuildID == "" {
		return nil, ErrEmptyGuildID
	}

	if input.Role != nil && !input.Role.Valid() {
		return nil, ErrInvalidRole
	}

	state, _ := s.guild(ctx, input.GuildID)

	state.mu.Lock()
	defer state.mu.Unlock()

	output := &PeekQueueOutput{Role: input.Role}
	if input.Role != nil {
		output.Players = state.queue.Snapshot(*input.Role)
	} else {
		output.Players = state.queue.Total()
	}

	return output, nil
}

// GetAutofill returns the current autofill flag
func (s *service) GetAutofill(ctx context.Context, input *GetAutofillInput) (*GetAutofillOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.GuildID == "" {
		return nil, ErrEmptyGuildID
	}

	state, _ := s.guild(ctx, input.GuildID)

	state.mu.Lock()
	defer state.mu.Unlock()

	return &GetAutofillOutput{
		Autofill: state.autofill,
	}, nil
}

// guild returns the state of a guild, creating it on first use. Settings are
// loaded before any lock is taken; when two callers race, the first state
// added is kept. created reports whether default settings were written.
func (s *service) guild(ctx context.Context, guildID string) (state *guildState, created bool) {
	if state, ok := s.guilds.get(guildID); ok {
		return state, false
	}

	autofill, missing := s.loadAutofill(ctx, guildID)

	state, added := s.guilds.add(guildID, autofill)
	if !added || !missing {
		return state, false
	}

	return state, s.persist(ctx, guildID, state)
}

// loadAutofill reads the saved autofill flag, falling back to the default.
// missing is true when the guild has no saved settings.
func (s *service) loadAutofill(ctx context.Context, guildID string) (autofill bool, missing bool) {
	saved, err := s.settingsRepo.GetSettings(ctx, &settingsRepo.GetSettingsInput{
		GuildID: guildID,
	})
	switch {
	case errors.Is(err, settingsRepo.ErrSettingsNotFound):
		return s.defaultAutofill, true
	case err != nil:
		s.logger.WithError(err).WithField("guild_id", guildID).Warn("Failed to load guild settings, using defaults")
		return s.defaultAutofill, false
	}

	return saved.Autofill, false
}
