package service

import (
	"log/slog"
	"time"

	"github.com/diegoclair/discord-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/datetime"
	"github.com/diegoclair/discord-schedule-bot/internal/logger"
	"github.com/disgoorg/snowflake/v2"
)

// Options carries the settings shared by the services.
type Options struct {
	Dates           *datetime.Parser
	ReminderChannel snowflake.ID
	// Now defaults to time.Now.
	Now func() time.Time
}

type Instance struct {
	Command     contract.CommandService
	Modal       contract.ModalService
	Interaction contract.InteractionService
	Reminder    contract.ReminderService
	ServerInfo  contract.ServerInfoService
	Subscribe   contract.SubscribeService
}

// NewInstance wires the services. notifier may be nil.
func NewInstance(dm contract.DataManager, discord contract.DiscordClient, calendar contract.CalendarClient,
	notifier contract.Notifier, opts Options, log *slog.Logger) *Instance {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	loc := opts.Dates.Location()

	return &Instance{
		Command:     newCommandService(dm, opts.Dates, now, logger.Component(log, "command")),
		Modal:       newModalService(dm, calendar, opts.Dates, now, logger.Component(log, "modal")),
		Interaction: newInteractionService(dm, calendar, opts.Dates, logger.Component(log, "interaction")),
		Reminder:    newReminderService(dm, discord, notifier, opts.ReminderChannel, loc, now, logger.Component(log, "reminder")),
		ServerInfo:  newServerInfoService(dm, discord, logger.Component(log, "sync")),
		Subscribe:   newSubscribeService(discord, logger.Component(log, "subscribe")),
	}
}
