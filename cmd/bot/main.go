package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/atharrell/LoL-Game-Queue-Bot/cmd/bot/command"
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer cancel()

	const description = "League of Legends role queue bot for Discord"
	root := &cobra.Command{Use: "lolqueue", Short: description}

	cfg, err := config.Load()
	if err != nil {
		log.WithContext(ctx).Fatal(err)
	}

	logger := log.New()
	logger.SetLevel(cfg.LogLevel)
	logger.WithField("config", cfg.Redacted()).Debug("configuration loaded")

	root.AddCommand(
		command.Run{Logger: logger}.Command(ctx, cfg),
		command.Settings{Logger: logger}.Command(ctx, cfg),
	)

	if err := root.Execute(); err != nil {
		logger.WithContext(ctx).Fatalf("failed to execute root command: \n%v", err)
	}
}
