package command

import (
	"context"

	"github.com/atharrell/LoL-Game-Queue-Bot/internal/common/clock"
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/common/uuid"
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/config"
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/handlers/discord"
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/infra"
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/random"
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/services/matchmaking"
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/services/teams"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type Run struct {
	Logger *log.Logger
}

func (cmd Run) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "connect to Discord and serve the queue",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.main(ctx, cfg)
		},
	}
}

func (cmd Run) main(ctx context.Context, cfg *config.Config) error {
	if err := cfg.RequireDiscord(); err != nil {
		return err
	}

	settingsRepo, closer, err := infra.NewSettingsRepository(ctx, cfg.Settings, cmd.Logger)
	if err != nil {
		return errors.Wrap(err, "run : failed to open settings store")
	}
	defer func() {
		if err := closer.Close(); err != nil {
			cmd.Logger.WithError(err).Warn("run : failed to close settings store")
		}
	}()

	resolver, err := teams.New(&teams.Config{
		Random: random.New(&random.Config{}),
	})
	if err != nil {
		return errors.Wrap(err, "run : failed to create team resolver")
	}

	queueService, err := matchmaking.New(&matchmaking.Config{
		DefaultAutofill: cfg.DefaultAutofill,
		SettingsRepo:    settingsRepo,
		Resolver:        resolver,
		Clock:           &clock.DefaultClock{},
		UUIDGenerator:   uuid.New(),
		Logger:          cmd.Logger,
	})
	if err != nil {
		return errors.Wrap(err, "run : failed to create queue service")
	}

	bot, err := discord.New(&discord.Config{
		Token:         cfg.Discord.Token,
		ApplicationID: cfg.Discord.ApplicationID,
		GuildID:       cfg.Discord.GuildID,
		QueueService:  queueService,
		Logger:        cmd.Logger,
	})
	if err != nil {
		return errors.Wrap(err, "run : failed to create Discord bot")
	}

	if err := bot.Start(); err != nil {
		return errors.Wrap(err, "run : failed to start Discord bot")
	}

	<-ctx.Done()

	if err := bot.Stop(); err != nil {
		cmd.Logger.WithError(err).Warn("run : error stopping bot")
	}

	cmd.Logger.Info("Bot has been shut down")
	return nil
}
