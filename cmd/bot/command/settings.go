package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/atharrell/LoL-Game-Queue-Bot/internal/config"
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/infra"
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/models"
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/repositories/settings"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Settings reads and edits guild settings without connecting to Discord
type Settings struct {
	Logger *log.Logger
}

func (cmd Settings) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "settings",
		Short: "inspect or change stored guild settings",
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "get <guild-id>",
			Short: "print the stored settings of a guild",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				return cmd.get(ctx, cfg, c, args[0])
			},
		},
		&cobra.Command{
			Use:   "set-autofill <guild-id> <true|false>",
			Short: "store the autofill setting of a guild",
			Args:  cobra.ExactArgs(2),
			RunE: func(c *cobra.Command, args []string) error {
				autofill, err := strconv.ParseBool(args[1])
				if err != nil {
					return errors.Wrapf(err, "settings : invalid autofill value %q", args[1])
				}
				return cmd.setAutofill(ctx, cfg, c, args[0], autofill)
			},
		},
	)

	return root
}

func (cmd Settings) get(ctx context.Context, cfg *config.Config, c *cobra.Command, guildID string) error {
	repo, closer, err := infra.NewSettingsRepository(ctx, cfg.Settings, cmd.Logger)
	if err != nil {
		return errors.Wrap(err, "settings : failed to open settings store")
	}
	defer closer.Close()

	stored, err := repo.GetSettings(ctx, &settings.GetSettingsInput{GuildID: guildID})
	if errors.Is(err, settings.ErrSettingsNotFound) {
		fmt.Fprintf(c.OutOrStdout(), "guild %s has no stored settings (autofill defaults to %t)\n", guildID, cfg.DefaultAutofill)
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "settings : failed to read guild %s", guildID)
	}

	fmt.Fprintf(c.OutOrStdout(), "guild %s autofill=%t\n", stored.GuildID, stored.Autofill)
	return nil
}

func (cmd Settings) setAutofill(ctx context.Context, cfg *config.Config, c *cobra.Command, guildID string, autofill bool) error {
	repo, closer, err := infra.NewSettingsRepository(ctx, cfg.Settings, cmd.Logger)
	if err != nil {
		return errors.Wrap(err, "settings : failed to open settings store")
	}
	defer closer.Close()

	err = repo.SaveSettings(ctx, &settings.SaveSettingsInput{
		Settings: &models.GuildSettings{GuildID: guildID, Autofill: autofill},
	})
	if err != nil {
		return errors.Wrapf(err, "settings : failed to save guild %s", guildID)
	}

	fmt.Fprintf(c.OutOrStdout(), "guild %s autofill=%t\n", guildID, autofill)
	return nil
}
