package discord

import (
	"context"

	"github.com/atharrell/LoL-Game-Queue-Bot/internal/services/matchmaking"
	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Bot represents the Discord bot instance
type Bot struct {
	session      *discordgo.Session
	commands     map[string]CommandHandler
	commandIDs   map[string]string // Maps command name to command ID
	queueService matchmaking.Service
	config       *Config
	logger       *logrus.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Queue service
	QueueService matchmaking.Service

	Logger *logrus.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.QueueService == nil {
		return nil, errors.New("queue service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Discord session")
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	bot := &Bot{
		session:      session,
		commands:     make(map[string]CommandHandler),
		commandIDs:   make(map[string]string),
		queueService: cfg.QueueService,
		config:       cfg,
		logger:       logger,
	}

	session.AddHandler(bot.handleInteraction)
	session.AddHandler(bot.handleGuildCreate)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return errors.Wrap(err, "failed to open Discord connection")
	}

	queueCmd := NewQueueCommand(b.queueService, b.session, b.logger)
	if err := b.RegisterCommand(queueCmd); err != nil {
		return errors.Wrap(err, "failed to register lol command")
	}

	b.logger.Info("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop removes the registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		log := b.logger.WithFields(logrus.Fields{"command": cmdName, "command_id": cmdID})
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.WithError(err).Warn("Failed to delete command")
		} else {
			log.Info("Deleted command")
		}
	}

	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord, for the configured guild
// when one is set and globally otherwise
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	log := b.logger.WithField("command", cmd.GetName())
	if b.config.GuildID != "" {
		log = log.WithField("guild_id", b.config.GuildID)
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return errors.Wrapf(err, "failed to create command %s", cmd.GetName())
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.WithField("command_id", createdCmd.ID).Info("Registered command")

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.WithError(err).WithField("command", name).Error("Error handling command")
			}
		}
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		for _, cmd := range b.commands {
			h, ok := cmd.(ComponentHandler)
			if !ok || !h.OwnsComponent(customID) {
				continue
			}
			if err := h.HandleComponent(s, i); err != nil {
				b.logger.WithError(err).WithField("component", customID).Error("Error handling component interaction")
			}
			return
		}
		if err := RespondWithError(s, i, "Unknown button: "+customID); err != nil {
			b.logger.WithError(err).Error("Failed to respond to unknown component")
		}
	}
}

// handleGuildCreate sets up the queue roles and settings of every guild the
// bot joins or finds on connect
func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	if g.Unavailable {
		return
	}

	log := b.logger.WithFields(logrus.Fields{
		"guild_id":   g.ID,
		"guild_name": g.Name,
	})

	created, err := ensureGuildRoles(s, g.ID)
	if err != nil {
		log.WithError(err).Warn("Failed to create queue roles")
	} else if len(created) > 0 {
		log.WithField("roles", created).Info("Created queue roles")
	}

	output, err := b.queueService.ProvisionGuild(context.Background(), &matchmaking.ProvisionGuildInput{
		GuildID: g.ID,
	})
	if err != nil {
		log.WithError(err).Error("Failed to provision guild")
		return
	}

	log.WithFields(logrus.Fields{
		"autofill":         output.Autofill,
		"default_settings": output.Created,
	}).Infof("%s has connected to %s!", s.State.User.Username, g.Name)
}
