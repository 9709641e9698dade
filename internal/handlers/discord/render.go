package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/atharrell/LoL-Game-Queue-Bot/internal/models"
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/services/matchmaking"
	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"
)

const (
	colorMatch = 0x13c262
	colorQueue = 0x00ff00
	colorError = 0xff0000
)

// displayName is the member's server nickname, falling back to the username
func displayName(member *discordgo.Member) string {
	if member.Nick != "" {
		return member.Nick
	}
	return member.User.Username
}

func mention(p models.Player) string {
	return fmt.Sprintf("<@%s>", p.ID)
}

func renderJoin(output *matchmaking.JoinQueueOutput) string {
	msg := fmt.Sprintf("Successfully Queued, position %d of %s players.", output.Position, output.Role)
	if output.Insufficient {
		msg += fmt.Sprintf("\n%d players are queued but the roles could not be filled, waiting for more players.", output.QueueSize)
	}
	return msg
}

// renderTeam lists a team slot by slot, marking off-role players
func renderTeam(team models.Team, assignment *models.TeamAssignment) string {
	var lines []string
	for _, role := range models.Roles {
		p := team[role]
		if p == nil {
			lines = append(lines, fmt.Sprintf("**%s** - empty", role))
			continue
		}
		line := fmt.Sprintf("**%s** - %s", role, mention(*p))
		if assignment.IsAutofilled(p.ID) {
			line += " (autofill)"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// renderMatch builds the announcement embed for a formed match
func renderMatch(match *models.Match) *discordgo.MessageEmbed {
	teams := match.Teams

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Team A",
			Value:  renderTeam(teams.TeamA, teams),
			Inline: true,
		},
		{
			Name:   "Team B",
			Value:  renderTeam(teams.TeamB, teams),
			Inline: true,
		},
	}

	if len(teams.Leftovers) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Still queued",
			Value: playerNames(teams.Leftovers),
		})
	}

	return &discordgo.MessageEmbed{
		Title:     "Queue is filled and teams have been created",
		Color:     colorMatch,
		Fields:    fields,
		Timestamp: match.FormedAt.Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Match " + match.ID,
		},
	}
}

// renderMatchPing mentions every placed player so they get notified
func renderMatchPing(match *models.Match) string {
	var mentions []string
	for _, p := range match.Teams.Players() {
		mentions = append(mentions, mention(p))
	}
	return strings.Join(mentions, " ")
}

func playerNames(players []models.Player) string {
	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}

// renderQueue builds the queue listing embed
func renderQueue(output *matchmaking.PeekQueueOutput) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Queue",
		Color: colorQueue,
	}

	if output.Role != nil {
		embed.Title = fmt.Sprintf("%s queue", output.Role)
	}

	switch {
	case len(output.Players) == 0 && output.Role == nil:
		embed.Description = "Queue is empty."
	case len(output.Players) == 0:
		embed.Description = fmt.Sprintf("Nobody is in the %s queue.", strings.ToLower(output.Role.String()))
	case output.Role == nil:
		embed.Description = fmt.Sprintf("Currently %d in queue: %s", len(output.Players), playerNames(output.Players))
	default:
		embed.Description = fmt.Sprintf("Currently %d in the %s queue: %s", len(output.Players), strings.ToLower(output.Role.String()), playerNames(output.Players))
	}

	return embed
}

func renderLeave(output *matchmaking.LeaveQueueOutput) string {
	return fmt.Sprintf("Successfully removed from the %s queue.", output.Role)
}

func renderClear(output *matchmaking.ClearQueueOutput) string {
	return fmt.Sprintf("Queue successfully cleared, %d removed.", output.Removed)
}

func renderAutofill(output *matchmaking.ToggleAutofillOutput) string {
	msg := fmt.Sprintf("Autofill updated to %t.", output.Autofill)
	if !output.Persisted {
		msg += " The setting could not be saved and will reset when the bot restarts."
	}
	return msg
}

func renderRoleSwitch(previous *models.Role, role models.Role) string {
	if previous == nil {
		return fmt.Sprintf("Successfully Joined %s role.", role)
	}
	return fmt.Sprintf("Removed from %s role and joined %s role.", *previous, role)
}

// errorMessage turns a service error into text for the user
func errorMessage(err error) string {
	switch {
	case errors.Is(err, matchmaking.ErrAlreadyQueued):
		return "User is already in queue, can not be in the queue twice."
	case errors.Is(err, matchmaking.ErrNotQueued):
		return "User not in queue."
	case errors.Is(err, matchmaking.ErrNoRoleAssigned):
		return "Failed to queue please check that you have joined a role. (/lol role {Top/Jungle/Mid/Bot/Support} to join a role)"
	case errors.Is(err, models.ErrInvalidRole), errors.Is(err, matchmaking.ErrInvalidRole):
		return "Role not supported please choose a valid role (Top/Jungle/Mid/Bot/Support)."
	default:
		return "Something went wrong, please try again."
	}
}

// isUserError reports whether err is an expected outcome of user input
func isUserError(err error) bool {
	return errors.Is(err, matchmaking.ErrAlreadyQueued) ||
		errors.Is(err, matchmaking.ErrNotQueued) ||
		errors.Is(err, matchmaking.ErrNoRoleAssigned) ||
		errors.Is(err, models.ErrInvalidRole) ||
		errors.Is(err, matchmaking.ErrInvalidRole)
}
