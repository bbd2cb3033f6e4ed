// Package command describes the slash commands registered with Discord.
package command

import (
	"github.com/diegoclair/discord-schedule-bot/internal/domain"
	"github.com/disgoorg/disgo/discord"
)

// Definitions returns the guild command set. It is rebuilt on every call.
func Definitions() []discord.ApplicationCommandCreate {
	return []discord.ApplicationCommandCreate{
		discord.SlashCommandCreate{
			Name:        domain.CommandName,
			Description: "Manage the shared calendar",
			Contexts: []discord.InteractionContextType{
				discord.InteractionContextTypeGuild,
			},
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionSubCommand{
					Name:        domain.SubcommandAdd,
					Description: "Add a schedule",
				},
				discord.ApplicationCommandOptionSubCommand{
					Name:        domain.SubcommandShow,
					Description: "Show the details of an upcoming schedule",
				},
				discord.ApplicationCommandOptionSubCommand{
					Name:        domain.SubcommandDelete,
					Description: "Delete an upcoming schedule",
				},
				discord.ApplicationCommandOptionSubCommand{
					Name:        domain.SubcommandList,
					Description: "List schedules",
					Options: []discord.ApplicationCommandOption{
						discord.ApplicationCommandOptionString{
							Name:        domain.OptionStartAt,
							Description: "List schedules starting from (YYYY-MM-DDTHH:mm)",
						},
						discord.ApplicationCommandOptionString{
							Name:        domain.OptionEndAt,
							Description: "List schedules starting until (YYYY-MM-DDTHH:mm)",
						},
					},
				},
			},
		},
	}
}
