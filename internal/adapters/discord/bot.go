package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"sitelang/internal/config"
	"sitelang/internal/ports/input"
	"sitelang/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
	logger  *zap.Logger
}

// NewBot creates a Bot and wires ports: use cases -> handler.
func NewBot(
	cfg *config.Config,
	switcher input.LanguageSwitchUseCase,
	catalog output.CatalogSource,
	translator output.Translator,
	logger *zap.Logger,
) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("création de la session Discord: %w", err)
	}

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: NewHandler(switcher, catalog, translator),
		logger:  logger,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if i.ApplicationCommandData().Name == linkCommandName {
		b.handler.HandleLinkCommand(s, i)
	}
}

// Start runs the bot until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("erreur lors de l'ouverture de la session: %w", err)
	}
	defer b.session.Close()

	for _, cmd := range []*discordgo.ApplicationCommand{linkCommand()} {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd); err != nil {
			b.logger.Warn("⚠️ Erreur lors de l'enregistrement de la commande", zap.String("command", cmd.Name), zap.Error(err))
		}
	}

	b.logger.Info("🤖 Bot en ligne")
	<-ctx.Done()
	return nil
}
