package discord

import (
	"context"

	"github.com/atharrell/LoL-Game-Queue-Bot/internal/models"
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/services/matchmaking"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// Button IDs
const (
	ButtonJoinQueue  = "lol_join_queue"
	ButtonLeaveQueue = "lol_leave_queue"
)

// QueueCommand handles the /lol command and the queue buttons
type QueueCommand struct {
	BaseCommand
	queueService matchmaking.Service
	guilds       guildAPI
	logger       *logrus.Logger
}

func roleChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, models.RoleCount)
	for _, role := range models.Roles {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  role.String(),
			Value: role.String(),
		})
	}
	return choices
}

// NewQueueCommand creates a new queue command handler
func NewQueueCommand(queueService matchmaking.Service, guilds guildAPI, logger *logrus.Logger) *QueueCommand {
	return &QueueCommand{
		BaseCommand: BaseCommand{
			Name:        "lol",
			Description: "League of Legends 5v5 role queue",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "join",
					Description: "Join the queue as your primary role",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leave",
					Description: "Leave the queue",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "queue",
					Description: "Show the queue for every player or a single role",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "role",
							Description: "Only show this role",
							Choices:     roleChoices(),
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "clear",
					Description: "Clear the entire queue",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "autofill",
					Description: "Toggle autofill for game creation in this server",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "role",
					Description: "Switch your queue role",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Top/Jungle/Mid/Bot/Support",
							Required:    true,
							Choices:     roleChoices(),
						},
					},
				},
			},
		},
		queueService: queueService,
		guilds:       guilds,
		logger:       logger,
	}
}

// Handle processes a Discord interaction for the lol command
func (c *QueueCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	return s.InteractionRespond(i.Interaction, c.respond(context.Background(), i))
}

// OwnsComponent reports whether the button belongs to the queue
func (c *QueueCommand) OwnsComponent(customID string) bool {
	return customID == ButtonJoinQueue || customID == ButtonLeaveQueue
}

// HandleComponent processes the join and leave buttons on the queue message
func (c *QueueCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, c.respondComponent(context.Background(), i))
}

func (c *QueueCommand) respond(ctx context.Context, i *discordgo.InteractionCreate) *discordgo.InteractionResponse {
	if i.GuildID == "" || i.Member == nil {
		return ephemeralResponse("This command only works in a server.")
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return ephemeralResponse("Unknown command.")
	}

	sub := data.Options[0]
	switch sub.Name {
	case "join":
		return c.handleJoin(ctx, i)
	case "leave":
		return c.handleLeave(ctx, i)
	case "queue":
		return c.handleQueue(ctx, i, sub.Options)
	case "clear":
		return c.handleClear(ctx, i)
	case "autofill":
		return c.handleAutofill(ctx, i)
	case "role":
		return c.handleRole(i, sub.Options)
	}

	return ephemeralResponse("Unknown subcommand.")
}

func (c *QueueCommand) respondComponent(ctx context.Context, i *discordgo.InteractionCreate) *discordgo.InteractionResponse {
	if i.GuildID == "" || i.Member == nil {
		return ephemeralResponse("This button only works in a server.")
	}

	switch i.MessageComponentData().CustomID {
	case ButtonJoinQueue:
		return c.handleJoin(ctx, i)
	case ButtonLeaveQueue:
		return c.handleLeave(ctx, i)
	}

	return ephemeralResponse("Unknown button.")
}

// fail logs unexpected errors and turns err into an ephemeral reply
func (c *QueueCommand) fail(i *discordgo.InteractionCreate, action string, err error) *discordgo.InteractionResponse {
	if !isUserError(err) {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"guild_id":  i.GuildID,
			"player_id": i.Member.User.ID,
			"action":    action,
		}).Error("Queue command failed")
	}
	return ephemeralResponse(errorMessage(err))
}

func (c *QueueCommand) handleJoin(ctx context.Context, i *discordgo.InteractionCreate) *discordgo.InteractionResponse {
	roles, err := memberQueueRoles(c.guilds, i.GuildID, i.Member)
	if err != nil {
		return c.fail(i, "join", err)
	}

	output, err := c.queueService.JoinQueue(ctx, &matchmaking.JoinQueueInput{
		GuildID: i.GuildID,
		Player: models.Player{
			ID:   i.Member.User.ID,
			Name: displayName(i.Member),
		},
		Roles: roles,
	})
	if err != nil {
		return c.fail(i, "join", err)
	}

	if output.Match != nil {
		content := renderJoin(output) + "\n" + renderMatchPing(output.Match)
		return embedResponse(content, renderMatch(output.Match), nil)
	}

	return messageResponse(renderJoin(output))
}

func (c *QueueCommand) handleLeave(ctx context.Context, i *discordgo.InteractionCreate) *discordgo.InteractionResponse {
	output, err := c.queueService.LeaveQueue(ctx, &matchmaking.LeaveQueueInput{
		GuildID:  i.GuildID,
		PlayerID: i.Member.User.ID,
	})
	if err != nil {
		return c.fail(i, "leave", err)
	}

	return messageResponse(renderLeave(output))
}

func (c *QueueCommand) handleQueue(ctx context.Context, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionResponse {
	input := &matchmaking.PeekQueueInput{GuildID: i.GuildID}

	for _, opt := range options {
		if opt.Name != "role" {
			continue
		}
		role, err := models.ParseRole(opt.StringValue())
		if err != nil {
			return c.fail(i, "queue", err)
		}
		input.Role = &role
	}

	output, err := c.queueService.PeekQueue(ctx, input)
	if err != nil {
		return c.fail(i, "queue", err)
	}

	buttons := []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Join",
			Style:    discordgo.SuccessButton,
			CustomID: ButtonJoinQueue,
		},
		discordgo.Button{
			Label:    "Leave",
			Style:    discordgo.SecondaryButton,
			CustomID: ButtonLeaveQueue,
		},
	}

	return embedResponse("", renderQueue(output), buttons)
}

func (c *QueueCommand) handleClear(ctx context.Context, i *discordgo.InteractionCreate) *discordgo.InteractionResponse {
	output, err := c.queueService.ClearQueue(ctx, &matchmaking.ClearQueueInput{
		GuildID: i.GuildID,
	})
	if err != nil {
		return c.fail(i, "clear", err)
	}

	return messageResponse(renderClear(output))
}

func (c *QueueCommand) handleAutofill(ctx context.Context, i *discordgo.InteractionCreate) *discordgo.InteractionResponse {
	output, err := c.queueService.ToggleAutofill(ctx, &matchmaking.ToggleAutofillInput{
		GuildID: i.GuildID,
	})
	if err != nil {
		return c.fail(i, "autofill", err)
	}

	return messageResponse(renderAutofill(output))
}

func (c *QueueCommand) handleRole(i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionResponse {
	var name string
	for _, opt := range options {
		if opt.Name == "name" {
			name = opt.StringValue()
		}
	}

	role, err := models.ParseRole(name)
	if err != nil {
		return c.fail(i, "role", err)
	}

	previous, err := switchRole(c.guilds, i.GuildID, i.Member, role)
	if err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"guild_id":  i.GuildID,
			"player_id": i.Member.User.ID,
			"role":      role.String(),
		}).Warn("Role switch failed")
		return ephemeralResponse("Failed to join role, please check that the role exists in this server and that the bot can manage it.")
	}

	return messageResponse(renderRoleSwitch(previous, role))
}
