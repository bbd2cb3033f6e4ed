package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/diegoclair/discord-schedule-bot/internal/domain"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/datetime"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/entity"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/reply"
	"github.com/diegoclair/discord-schedule-bot/pkg/models"
	"github.com/disgoorg/disgo/discord"
)

type commandService struct {
	dm    contract.DataManager
	dates *datetime.Parser
	now   func() time.Time
	log   *slog.Logger
}

func newCommandService(dm contract.DataManager, dates *datetime.Parser, now func() time.Time, log *slog.Logger) *commandService {
	return &commandService{dm: dm, dates: dates, now: now, log: log}
}

func (s *commandService) HandleCommand(ctx context.Context, data models.CommandData) (reply.Response, error) {
	sub, ok := data.Subcommand()
	if !ok {
		return nil, domain.ErrInvalidSubcommand
	}

	switch sub.Name {
	case domain.SubcommandAdd:
		return addModal(), nil
	case domain.SubcommandShow:
		return s.selectUpcoming(ctx, domain.CustomIDShow, "Select the schedule to show")
	case domain.SubcommandDelete:
		return s.selectUpcoming(ctx, domain.CustomIDDelete, "Select the schedule to delete")
	case domain.SubcommandList:
		return s.list(ctx, sub.String(domain.OptionStartAt), sub.String(domain.OptionEndAt))
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSubcommand, sub.Name)
	}
}

func addModal() reply.Modal {
	return reply.Modal{
		CustomID: domain.CustomIDAddModal,
		Title:    "Add a schedule",
		Fields: []reply.TextInput{
			{
				CustomID:  domain.CustomIDFieldTitle,
				Label:     "Title",
				Style:     discord.TextInputStyleShort,
				Required:  true,
				MaxLength: 256,
			},
			{
				CustomID:    domain.CustomIDFieldStartAt,
				Label:       "Start",
				Style:       discord.TextInputStyleShort,
				Placeholder: "YYYY-MM-DDTHH:mm",
				Required:    true,
			},
			{
				CustomID:    domain.CustomIDFieldEndAt,
				Label:       "End",
				Style:       discord.TextInputStyleShort,
				Placeholder: "YYYY-MM-DDTHH:mm",
				Required:    true,
			},
			{
				CustomID:  domain.CustomIDFieldDesc,
				Label:     "Description",
				Style:     discord.TextInputStyleParagraph,
				MaxLength: 2000,
			},
			{
				CustomID:    domain.CustomIDFieldRemindDay,
				Label:       "Remind how many days before (optional)",
				Style:       discord.TextInputStyleShort,
				Placeholder: "1",
				MaxLength:   3,
			},
		},
	}
}

// selectUpcoming offers the upcoming schedules in a select menu identified by customID.
func (s *commandService) selectUpcoming(ctx context.Context, customID, placeholder string) (reply.Response, error) {
	schedules, err := s.dm.Schedule().List(ctx, entity.ScheduleFilter{
		StartFrom: s.now().Unix(),
		Limit:     domain.MaxSelectOptions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	if len(schedules) == 0 {
		return reply.Message{Content: "There are no upcoming schedules.", Ephemeral: true}, nil
	}

	loc := s.dates.Location()
	options := make([]reply.SelectOption, 0, len(schedules))
	for _, schedule := range schedules {
		options = append(options, reply.SelectOption{
			Label:       truncate(schedule.Title, 100),
			Value:       schedule.ID,
			Description: datetime.Format(schedule.StartAt, loc),
			Emoji:       "🗓️",
		})
	}

	return reply.Message{
		Content:   "Select a schedule.",
		Ephemeral: true,
		Selects: []reply.Select{{
			Kind:        reply.SelectString,
			CustomID:    customID,
			Placeholder: placeholder,
			Options:     options,
			MinValues:   1,
			MaxValues:   1,
		}},
	}, nil
}

// list renders schedules starting in the requested window. Each bound is optional: the lower one
// defaults to now and a missing upper one leaves the window open.
func (s *commandService) list(ctx context.Context, startAt, endAt string) (reply.Response, error) {
	now := s.now()
	filter := entity.ScheduleFilter{StartFrom: now.Unix()}

	startAt, endAt = strings.TrimSpace(startAt), strings.TrimSpace(endAt)
	switch {
	case startAt != "" && endAt != "":
		from, to, err := s.dates.ParseRange(startAt, endAt, now)
		if err != nil {
			return nil, err
		}
		filter.StartFrom, filter.StartTo = from.Unix(), to.Unix()
	case startAt != "":
		from, err := s.dates.Parse(startAt, now)
		if err != nil {
			return nil, err
		}
		filter.StartFrom = from.Unix()
	case endAt != "":
		to, err := s.dates.Parse(endAt, now)
		if err != nil {
			return nil, err
		}
		filter.StartTo = to.Unix()
	}

	schedules, err := s.dm.Schedule().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	if len(schedules) == 0 {
		return reply.Message{Content: "No schedules found.", Ephemeral: true}, nil
	}

	embeds := make([]discord.Embed, 0, len(schedules))
	for _, schedule := range schedules {
		embeds = append(embeds, scheduleEmbed(schedule, actionList, s.dates.Location(), nil))
	}
	return embedsResponse(actionList, embeds), nil
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
