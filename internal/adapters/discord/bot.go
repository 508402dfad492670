package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"mergington/internal/ports/input"
	"mergington/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	guildID string
	handler *Handler
	logger  *zap.Logger
}

// NewBot creates a Bot and wires the activity use case into the handler.
func NewBot(token, guildID string, activityUC input.ActivityUseCase, localizer output.Localizer, logger *zap.Logger) (*Bot, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds

	bot := &Bot{
		session: s,
		guildID: guildID,
		handler: NewHandler(activityUC, localizer, logger),
		logger:  logger,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case cmdActivities:
			b.handler.HandleActivities(s, i)
		case cmdSignup:
			b.handler.HandleSignup(s, i)
		case cmdUnregister:
			b.handler.HandleUnregister(s, i)
		}
	case discordgo.InteractionApplicationCommandAutocomplete:
		b.handler.HandleAutocomplete(s, i)
	}
}

// Open connects to the gateway and registers the slash commands, replacing
// any stale ones.
func (b *Bot) Open() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	if _, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.guildID, Commands()); err != nil {
		_ = b.session.Close()
		return fmt.Errorf("register commands: %w", err)
	}
	b.logger.Info("discord bot online", zap.String("guild", b.guildID))
	return nil
}

// Close disconnects from the gateway.
func (b *Bot) Close() error {
	if err := b.session.Close(); err != nil {
		return fmt.Errorf("close discord session: %w", err)
	}
	return nil
}
