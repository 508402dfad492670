package discord

import (
	"context"
	"slices"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"mergington/internal/ports/input"
	"mergington/internal/ports/output"
	pkgdiscord "mergington/pkg/discord"
)

// Handler handles Discord interactions using the activity use case.
type Handler struct {
	activityUseCase input.ActivityUseCase
	localizer       output.Localizer
	logger          *zap.Logger
}

// NewHandler creates a Handler.
func NewHandler(
	activityUseCase input.ActivityUseCase,
	localizer output.Localizer,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		activityUseCase: activityUseCase,
		localizer:       localizer,
		logger:          logger,
	}
}

func (h *Handler) HandleActivities(s *discordgo.Session, i *discordgo.InteractionCreate) {
	respond(s, i.Interaction, h.activitiesReply(context.Background(), h.locale(i)))
}

func (h *Handler) HandleSignup(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	respondEphemeral(s, i.Interaction, h.signupReply(context.Background(), h.locale(i), data.Options))
}

func (h *Handler) HandleUnregister(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	respondEphemeral(s, i.Interaction, h.unregisterReply(context.Background(), h.locale(i), data.Options))
}

func (h *Handler) HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	respondChoices(s, i.Interaction, h.activityChoices(context.Background(), data.Options))
}

func (h *Handler) activitiesReply(ctx context.Context, locale string) *discordgo.InteractionResponseData {
	activities, err := h.activityUseCase.ListActivities(ctx)
	if err != nil {
		h.logger.Error("discord: list activities", zap.Error(err))
		return &discordgo.InteractionResponseData{
			Content: h.localizer.T(locale, pkgdiscord.ErrorMessageKey(err), nil),
			Flags:   discordgo.MessageFlagsEphemeral,
		}
	}
	if len(activities) == 0 {
		return &discordgo.InteractionResponseData{
			Content: h.localizer.T(locale, "discord.activities.empty", nil),
			Flags:   discordgo.MessageFlagsEphemeral,
		}
	}

	names := sortedNames(activities)
	fields := make([]*discordgo.MessageEmbedField, 0, len(names))
	for _, name := range names {
		a := activities[name]
		fields = append(fields, pkgdiscord.ActivityField(name, h.localizer.T(locale, "discord.activities.field", map[string]any{
			"Schedule":  a.Schedule,
			"Count":     len(a.Participants),
			"Max":       a.MaxParticipants,
			"SpotsLeft": a.SpotsLeft(),
		})))
	}
	embed := pkgdiscord.BuildActivitiesEmbed(h.localizer.T(locale, "discord.activities.title", nil), fields)
	return &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}}
}

func (h *Handler) signupReply(ctx context.Context, locale string, opts []*discordgo.ApplicationCommandInteractionDataOption) string {
	activity, email, ok := rosterArgs(opts)
	if !ok {
		return h.localizer.T(locale, "discord.option.missing", nil)
	}
	msg, err := h.activityUseCase.Signup(ctx, locale, activity, email)
	if err != nil {
		return h.errorReply(locale, err)
	}
	return msg
}

func (h *Handler) unregisterReply(ctx context.Context, locale string, opts []*discordgo.ApplicationCommandInteractionDataOption) string {
	activity, email, ok := rosterArgs(opts)
	if !ok {
		return h.localizer.T(locale, "discord.option.missing", nil)
	}
	msg, err := h.activityUseCase.Unregister(ctx, locale, activity, email)
	if err != nil {
		return h.errorReply(locale, err)
	}
	return msg
}

func (h *Handler) activityChoices(ctx context.Context, opts []*discordgo.ApplicationCommandInteractionDataOption) []*discordgo.ApplicationCommandOptionChoice {
	name, typed, ok := pkgdiscord.FocusedOption(opts)
	if !ok || name != optActivity {
		return []*discordgo.ApplicationCommandOptionChoice{}
	}
	activities, err := h.activityUseCase.ListActivities(ctx)
	if err != nil {
		h.logger.Error("discord: autocomplete", zap.Error(err))
		return []*discordgo.ApplicationCommandOptionChoice{}
	}
	return pkgdiscord.AutocompleteChoices(sortedNames(activities), typed)
}

func (h *Handler) errorReply(locale string, err error) string {
	key := pkgdiscord.ErrorMessageKey(err)
	if key == "error.internal" {
		h.logger.Error("discord: roster operation failed", zap.Error(err))
	}
	return h.localizer.T(locale, key, nil)
}

func (h *Handler) locale(i *discordgo.InteractionCreate) string {
	return h.localizer.Match(string(i.Locale))
}

func rosterArgs(opts []*discordgo.ApplicationCommandInteractionDataOption) (activity, email string, ok bool) {
	values := pkgdiscord.OptionValues(opts)
	activity, hasActivity := values[optActivity]
	email, hasEmail := values[optEmail]
	return activity, email, hasActivity && hasEmail
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
