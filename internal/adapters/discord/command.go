package discord

import (
	"github.com/bwmarrin/discordgo"
)

const (
	cmdActivities = "activities"
	cmdSignup     = "signup"
	cmdUnregister = "unregister"

	optActivity = "activity"
	optEmail    = "email"
)

// Commands returns the slash commands registered by the bot.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{Name: cmdActivities, Description: "List the activities and their rosters"},
		{Name: cmdSignup, Description: "Sign a student up for an activity", Options: rosterOptions()},
		{Name: cmdUnregister, Description: "Remove a student from an activity", Options: rosterOptions()},
	}
}

func rosterOptions() []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         optActivity,
			Description:  "Activity name",
			Required:     true,
			Autocomplete: true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        optEmail,
			Description: "Student email",
			Required:    true,
		},
	}
}
