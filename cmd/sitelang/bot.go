package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"sitelang/internal/adapters/discord"
	"sitelang/internal/infrastructure/i18n"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Discord /lien command",
	RunE:  runBot,
}

func runBot(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidateBot(); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()

	translator := i18n.NewTranslator(cfg.PrimaryLang, logger)
	bot, err := discord.NewBot(cfg, a.resolver, a.catalog, translator, logger)
	if err != nil {
		return err
	}
	return bot.Start(ctx)
}
