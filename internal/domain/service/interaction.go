package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/diegoclair/discord-schedule-bot/internal/domain"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/datetime"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/entity"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/reply"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/token"
	"github.com/diegoclair/discord-schedule-bot/pkg/models"
	"github.com/disgoorg/disgo/discord"
)

type interactionService struct {
	dm       contract.DataManager
	calendar contract.CalendarClient
	dates    *datetime.Parser
	log      *slog.Logger
}

func newInteractionService(dm contract.DataManager, calendar contract.CalendarClient, dates *datetime.Parser, log *slog.Logger) *interactionService {
	return &interactionService{dm: dm, calendar: calendar, dates: dates, log: log}
}

func (s *interactionService) HandleInteraction(ctx context.Context, data models.ComponentData) (reply.Response, error) {
	if data.CustomID == "" {
		return nil, fmt.Errorf("%w: missing custom id", domain.ErrInvalidRequest)
	}
	if len(data.Values) == 0 {
		return nil, domain.ErrInvalidEventID
	}

	switch data.CustomID {
	case domain.CustomIDShow:
		return s.show(ctx, data.Values[0])
	case domain.CustomIDDelete:
		return s.delete(ctx, data.Values[0])
	}

	if id, ok := token.Decode(data.CustomID, domain.CustomIDMemberSelect); ok {
		return s.attach(ctx, id, data.Values, nil)
	}
	if id, ok := token.Decode(data.CustomID, domain.CustomIDRoleSelect); ok {
		return s.attach(ctx, id, nil, data.Values)
	}

	return nil, fmt.Errorf("%w: unknown custom id %q", domain.ErrInvalidRequest, data.CustomID)
}

// attach replaces the members or roles of a schedule. A nil slice leaves that relation untouched.
func (s *interactionService) attach(ctx context.Context, scheduleID string, memberIDs, roleIDs []string) (reply.Response, error) {
	var updated *entity.Schedule

	err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		schedule, err := getSchedule(ctx, dm, scheduleID)
		if err != nil {
			return err
		}

		if err := dm.Schedule().Update(ctx, schedule, memberIDs, roleIDs); err != nil {
			return fmt.Errorf("failed to update schedule: %w", err)
		}

		updated, err = getSchedule(ctx, dm, scheduleID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("schedule updated", "id", scheduleID, "members", len(updated.MemberIDs), "roles", len(updated.RoleIDs))

	return embedsResponse(actionUpdate, []discord.Embed{scheduleEmbed(updated, actionUpdate, s.dates.Location(), nil)}), nil
}

func (s *interactionService) show(ctx context.Context, scheduleID string) (reply.Response, error) {
	schedule, err := getSchedule(ctx, s.dm, scheduleID)
	if err != nil {
		return nil, err
	}
	return embedsResponse(actionShow, []discord.Embed{scheduleEmbed(schedule, actionShow, s.dates.Location(), nil)}), nil
}

func (s *interactionService) delete(ctx context.Context, scheduleID string) (reply.Response, error) {
	schedule, err := getSchedule(ctx, s.dm, scheduleID)
	if err != nil {
		return nil, err
	}

	if schedule.EventID != "" {
		if err := s.calendar.DeleteEvent(ctx, schedule.EventID); err != nil {
			return nil, fmt.Errorf("failed to delete calendar event: %w", err)
		}
	}

	err = s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		return dm.Schedule().Delete(ctx, scheduleID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete schedule: %w", err)
	}

	s.log.Info("schedule deleted", "id", scheduleID)

	return embedsResponse(actionDelete, []discord.Embed{scheduleEmbed(schedule, actionDelete, s.dates.Location(), nil)}), nil
}

func getSchedule(ctx context.Context, dm contract.DataManager, id string) (*entity.Schedule, error) {
	schedule, err := dm.Schedule().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	if schedule == nil {
		return nil, domain.ErrScheduleNotFound
	}
	return schedule, nil
}
