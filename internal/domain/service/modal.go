package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/discord-schedule-bot/internal/domain"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/datetime"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/entity"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/reply"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/token"
	"github.com/diegoclair/discord-schedule-bot/pkg/models"
	"github.com/google/uuid"
)

type modalService struct {
	dm       contract.DataManager
	calendar contract.CalendarClient
	dates    *datetime.Parser
	now      func() time.Time
	newID    func() string
	log      *slog.Logger
}

func newModalService(dm contract.DataManager, calendar contract.CalendarClient, dates *datetime.Parser, now func() time.Time, log *slog.Logger) *modalService {
	return &modalService{
		dm:       dm,
		calendar: calendar,
		dates:    dates,
		now:      now,
		newID:    uuid.NewString,
		log:      log,
	}
}

func (s *modalService) HandleModal(ctx context.Context, data models.ModalData) (reply.Response, error) {
	if data.CustomID != domain.CustomIDAddModal {
		return nil, fmt.Errorf("%w: unknown modal %q", domain.ErrInvalidRequest, data.CustomID)
	}

	schedule, err := s.scheduleFromFields(data.Fields())
	if err != nil {
		return nil, err
	}

	eventID, err := s.calendar.CreateEvent(ctx, schedule)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}
	schedule.EventID = eventID
	schedule.ID = s.newID()

	if err := s.dm.Schedule().Create(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}

	s.log.Info("schedule created", "id", schedule.ID, "title", schedule.Title)

	return reply.Message{
		Content:   fmt.Sprintf("## %s\n**%s**: pick the members and roles to notify.", actionAdd.heading, schedule.Title),
		Ephemeral: true,
		Selects: []reply.Select{
			{
				Kind:        reply.SelectUser,
				CustomID:    token.Encode(domain.CustomIDMemberSelect, schedule.ID),
				Placeholder: "Select members",
				MinValues:   0,
				MaxValues:   domain.MaxSelectOptions,
			},
			{
				Kind:        reply.SelectRole,
				CustomID:    token.Encode(domain.CustomIDRoleSelect, schedule.ID),
				Placeholder: "Select roles",
				MinValues:   0,
				MaxValues:   domain.MaxSelectOptions,
			},
		},
	}, nil
}

func (s *modalService) scheduleFromFields(fields map[string]string) (*entity.Schedule, error) {
	title := strings.TrimSpace(fields[domain.CustomIDFieldTitle])
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidRequest)
	}

	now := s.now()
	startAt, endAt, err := s.dates.ParseRange(fields[domain.CustomIDFieldStartAt], fields[domain.CustomIDFieldEndAt], now)
	if err != nil {
		return nil, err
	}
	if err := datetime.ValidateFuture(startAt, endAt, now); err != nil {
		return nil, err
	}

	schedule := &entity.Schedule{
		Title:       title,
		Description: strings.TrimSpace(fields[domain.CustomIDFieldDesc]),
		StartAt:     startAt.Unix(),
		EndAt:       endAt.Unix(),
	}

	if raw := strings.TrimSpace(fields[domain.CustomIDFieldRemindDay]); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days < 0 {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRemindDays, raw)
		}
		schedule.RemindDays = &days
	}

	return schedule, nil
}
