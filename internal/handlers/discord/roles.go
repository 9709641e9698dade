package discord

import (
	"strings"

	"github.com/atharrell/LoL-Game-Queue-Bot/internal/models"
	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"
)

// queueRoleColor is the colour of the guild roles created for the queue
const queueRoleColor = 0x13c262

// guildAPI is the part of the Discord session used to manage guild roles
type guildAPI interface {
	GuildRoles(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Role, error)
	GuildRoleCreate(guildID string, data *discordgo.RoleParams, options ...discordgo.RequestOption) (*discordgo.Role, error)
	GuildMemberRoleAdd(guildID, userID, roleID string, options ...discordgo.RequestOption) error
	GuildMemberRoleRemove(guildID, userID, roleID string, options ...discordgo.RequestOption) error
}

// queueRoles maps guild role IDs to the queue role of the same name
func queueRoles(guildRoles []*discordgo.Role) map[string]models.Role {
	byID := make(map[string]models.Role)
	for _, gr := range guildRoles {
		if role, err := models.ParseRole(gr.Name); err == nil {
			byID[gr.ID] = role
		}
	}
	return byID
}

// guildRoleFor finds the guild role named after a queue role
func guildRoleFor(guildRoles []*discordgo.Role, role models.Role) (*discordgo.Role, bool) {
	for _, gr := range guildRoles {
		if strings.EqualFold(gr.Name, role.String()) {
			return gr, true
		}
	}
	return nil, false
}

// memberQueueRoles returns the queue roles a member holds
func memberQueueRoles(api guildAPI, guildID string, member *discordgo.Member) ([]models.Role, error) {
	guildRoles, err := api.GuildRoles(guildID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list roles of guild %s", guildID)
	}

	byID := queueRoles(guildRoles)

	var roles []models.Role
	for _, id := range member.Roles {
		if role, ok := byID[id]; ok {
			roles = append(roles, role)
		}
	}
	return roles, nil
}

// ensureGuildRoles creates every queue role the guild does not have yet and
// returns the names of the created roles
func ensureGuildRoles(api guildAPI, guildID string) ([]string, error) {
	guildRoles, err := api.GuildRoles(guildID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list roles of guild %s", guildID)
	}

	color := queueRoleColor
	mentionable := true

	var created []string
	for _, role := range models.Roles {
		if _, ok := guildRoleFor(guildRoles, role); ok {
			continue
		}

		_, err := api.GuildRoleCreate(guildID, &discordgo.RoleParams{
			Name:        role.String(),
			Color:       &color,
			Mentionable: &mentionable,
		})
		if err != nil {
			return created, errors.Wrapf(err, "failed to create role %s", role)
		}
		created = append(created, role.String())
	}

	return created, nil
}

// switchRole removes the member's current queue roles and grants the
// requested one. previous is the first queue role removed, if any.
func switchRole(api guildAPI, guildID string, member *discordgo.Member, role models.Role) (previous *models.Role, err error) {
	guildRoles, err := api.GuildRoles(guildID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list roles of guild %s", guildID)
	}

	target, ok := guildRoleFor(guildRoles, role)
	if !ok {
		return nil, errors.Errorf("role %s does not exist in this server", role)
	}

	byID := queueRoles(guildRoles)
	for _, id := range member.Roles {
		held, ok := byID[id]
		if !ok || id == target.ID {
			continue
		}

		if err := api.GuildMemberRoleRemove(guildID, member.User.ID, id); err != nil {
			return previous, errors.Wrapf(err, "failed to remove role %s", held)
		}
		if previous == nil || held < *previous {
			previous = &held
		}
	}

	if err := api.GuildMemberRoleAdd(guildID, member.User.ID, target.ID); err != nil {
		return previous, errors.Wrapf(err, "failed to add role %s", role)
	}

	return previous, nil
}
