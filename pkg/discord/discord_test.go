package discord

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergington/internal/domain"
)

func TestOptionValues(t *testing.T) {
	opts := []*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "activity", Type: discordgo.ApplicationCommandOptionString, Value: "Chess Club"},
		{Name: "email", Type: discordgo.ApplicationCommandOptionString, Value: "a@mergington.edu"},
		{Name: "count", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(3)},
		nil,
	}

	assert.Equal(t, map[string]string{
		"activity": "Chess Club",
		"email":    "a@mergington.edu",
	}, OptionValues(opts))
}

func TestFocusedOption(t *testing.T) {
	opts := []*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "email", Type: discordgo.ApplicationCommandOptionString, Value: "a@x"},
		{Name: "activity", Type: discordgo.ApplicationCommandOptionString, Value: "che", Focused: true},
	}

	name, value, ok := FocusedOption(opts)
	require.True(t, ok)
	assert.Equal(t, "activity", name)
	assert.Equal(t, "che", value)

	_, _, ok = FocusedOption(opts[:1])
	assert.False(t, ok)
}

func TestAutocompleteChoices(t *testing.T) {
	names := []string{"Art Club", "Chess Club", "Debate Team", "Drama Club"}

	tests := []struct {
		name  string
		typed string
		want  []string
	}{
		{"empty shows all", "", names},
		{"case-insensitive substring", "CLUB", []string{"Art Club", "Chess Club", "Drama Club"}},
		{"prefix", "de", []string{"Debate Team"}},
		{"no match", "robotics", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AutocompleteChoices(names, tt.typed)
			gotNames := make([]string, len(got))
			for i, c := range got {
				gotNames[i] = c.Name
				assert.Equal(t, c.Name, c.Value)
			}
			assert.Equal(t, tt.want, gotNames)
		})
	}
}

func TestAutocompleteChoices_Capped(t *testing.T) {
	names := make([]string, 40)
	for i := range names {
		names[i] = fmt.Sprintf("Club %02d", i)
	}

	assert.Len(t, AutocompleteChoices(names, ""), maxAutocompleteChoices)
}

func TestBuildActivitiesEmbed(t *testing.T) {
	fields := []*discordgo.MessageEmbedField{
		ActivityField("Chess Club", "Fridays"),
		ActivityField("Gym Class", "Mondays"),
	}

	embed := BuildActivitiesEmbed("Activities", fields)
	assert.Equal(t, "Activities", embed.Title)
	assert.Equal(t, embedColor, embed.Color)
	assert.Len(t, embed.Fields, 2)
	assert.Nil(t, embed.Footer)
}

func TestBuildActivitiesEmbed_TooManyFields(t *testing.T) {
	fields := make([]*discordgo.MessageEmbedField, 30)
	for i := range fields {
		fields[i] = ActivityField(fmt.Sprintf("Club %d", i), "value")
	}

	embed := BuildActivitiesEmbed("Activities", fields)
	assert.Len(t, embed.Fields, maxEmbedFields)
	require.NotNil(t, embed.Footer)
	assert.Equal(t, "+5 more", embed.Footer.Text)
}

func TestActivityField_Truncates(t *testing.T) {
	f := ActivityField(strings.Repeat("n", 300), strings.Repeat("v", 2000))

	assert.Len(t, []rune(f.Name), maxFieldNameLength)
	assert.Len(t, []rune(f.Value), maxFieldValueLen)
	assert.True(t, f.Inline)
}

func TestErrorMessageKey(t *testing.T) {
	assert.Equal(t, "", ErrorMessageKey(nil))
	assert.Equal(t, "error.activity_not_found", ErrorMessageKey(domain.ErrActivityNotFound))
	assert.Equal(t, "error.already_registered", ErrorMessageKey(fmt.Errorf("x: %w", domain.ErrAlreadyRegistered)))
	assert.Equal(t, "error.not_registered", ErrorMessageKey(domain.ErrNotRegistered))
	assert.Equal(t, "error.internal", ErrorMessageKey(errors.New("boom")))
}
