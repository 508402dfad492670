package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

const (
	embedColor = 0x5865F2

	// Discord rejects embeds above these limits.
	maxEmbedFields     = 25
	maxFieldNameLength = 256
	maxFieldValueLen   = 1024
)

// ActivityField renders one activity as an inline embed field.
func ActivityField(name, value string) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{
		Name:   truncate(name, maxFieldNameLength),
		Value:  truncate(value, maxFieldValueLen),
		Inline: true,
	}
}

// BuildActivitiesEmbed builds the roster overview. Fields past Discord's
// limit are dropped and counted in the footer.
func BuildActivitiesEmbed(title string, fields []*discordgo.MessageEmbedField) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: title,
		Color: embedColor,
	}
	if len(fields) > maxEmbedFields {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("+%d more", len(fields)-maxEmbedFields)}
		fields = fields[:maxEmbedFields]
	}
	embed.Fields = fields
	return embed
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
