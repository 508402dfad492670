package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

const maxAutocompleteChoices = 25

// OptionValues flattens string options of a slash command by name.
func OptionValues(opts []*discordgo.ApplicationCommandInteractionDataOption) map[string]string {
	out := make(map[string]string, len(opts))
	for _, o := range opts {
		if o == nil || o.Type != discordgo.ApplicationCommandOptionString {
			continue
		}
		out[o.Name] = o.StringValue()
	}
	return out
}

// FocusedOption returns the option the user is typing in during autocomplete.
func FocusedOption(opts []*discordgo.ApplicationCommandInteractionDataOption) (name, value string, ok bool) {
	for _, o := range opts {
		if o != nil && o.Focused {
			v, _ := o.Value.(string)
			return o.Name, v, true
		}
	}
	return "", "", false
}

// AutocompleteChoices keeps the names containing typed (case-insensitive),
// in the given order, capped at Discord's limit.
func AutocompleteChoices(names []string, typed string) []*discordgo.ApplicationCommandOptionChoice {
	needle := strings.ToLower(strings.TrimSpace(typed))
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, min(len(names), maxAutocompleteChoices))
	for _, name := range names {
		if needle != "" && !strings.Contains(strings.ToLower(name), needle) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: name, Value: name})
		if len(choices) == maxAutocompleteChoices {
			break
		}
	}
	return choices
}
