package contract

import (
	"context"

	"github.com/diegoclair/discord-schedule-bot/internal/domain/entity"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
)

// DiscordClient defines the Discord REST operations used by the bot
type DiscordClient interface {
	// GetMembers returns every member of the configured guild.
	GetMembers(ctx context.Context) ([]discord.Member, error)
	GetRoles(ctx context.Context) ([]discord.Role, error)
	CreateMessage(ctx context.Context, channelID snowflake.ID, message discord.MessageCreate) error
	SetCommands(ctx context.Context, commands []discord.ApplicationCommandCreate) error
}

// CalendarClient mirrors schedules to an external calendar
type CalendarClient interface {
	CreateEvent(ctx context.Context, schedule *entity.Schedule) (string, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

// Notifier mirrors reminder posts to a secondary channel
type Notifier interface {
	Notify(ctx context.Context, content string, embeds []discord.Embed) error
}
