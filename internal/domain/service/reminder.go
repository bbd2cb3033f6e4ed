package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/diegoclair/discord-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/datetime"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/entity"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
	"github.com/google/uuid"
)

const reminderContent = "**Reminder!**"

type reminderService struct {
	dm       contract.DataManager
	discord  contract.DiscordClient
	notifier contract.Notifier
	channel  snowflake.ID
	loc      *time.Location
	now      func() time.Time
	newID    func() string
	log      *slog.Logger
}

func newReminderService(dm contract.DataManager, discord contract.DiscordClient, notifier contract.Notifier,
	channel snowflake.ID, loc *time.Location, now func() time.Time, log *slog.Logger) *reminderService {
	return &reminderService{
		dm:       dm,
		discord:  discord,
		notifier: notifier,
		channel:  channel,
		loc:      loc,
		now:      now,
		newID:    uuid.NewString,
		log:      log,
	}
}

// SendReminders notifies every schedule whose reminder falls in the current hour. A bucket that
// was already recorded is not sent again.
func (s *reminderService) SendReminders(ctx context.Context) error {
	bucket := datetime.TruncateHour(s.now(), s.loc).Unix()

	schedules, err := s.dm.Schedule().GetRemindable(ctx, bucket, bucket+3600)
	if err != nil {
		return fmt.Errorf("failed to get remindable schedules: %w", err)
	}
	if len(schedules) == 0 {
		s.log.Debug("no reminders to send", "bucket", bucket)
		return nil
	}

	embeds := make([]discord.Embed, 0, len(schedules))
	reminds := make([]*entity.Remind, 0, len(schedules))
	var mentioned []string

	for _, schedule := range schedules {
		recipients, err := s.recipients(ctx, schedule)
		if err != nil {
			return err
		}

		embed := scheduleEmbed(schedule, actionRemind, s.loc, recipients)
		text, err := json.Marshal(embed)
		if err != nil {
			return fmt.Errorf("failed to encode reminder: %w", err)
		}

		embeds = append(embeds, embed)
		reminds = append(reminds, &entity.Remind{
			ID:         s.newID(),
			ScheduleID: schedule.ID,
			Text:       string(text),
			RemindAt:   bucket,
			MemberIDs:  recipients,
		})
		mentioned = appendUnique(mentioned, recipients...)
	}

	err = s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		return dm.Remind().BulkCreate(ctx, reminds)
	})
	if err != nil {
		return fmt.Errorf("failed to save reminds: %w", err)
	}

	offset := 0
	for _, chunk := range chunkEmbeds(embeds) {
		var recipients []string
		for _, r := range reminds[offset : offset+len(chunk)] {
			recipients = appendUnique(recipients, r.MemberIDs...)
		}
		offset += len(chunk)

		content := reminderContent
		if len(recipients) > 0 {
			content += " " + mentions(recipients, "<@%s>")
		}

		err := s.discord.CreateMessage(ctx, s.channel, discord.MessageCreate{
			Content: content,
			Embeds:  chunk,
		})
		if err != nil {
			s.log.Error("failed to send reminder", "bucket", bucket, "error", err)
			return fmt.Errorf("failed to send reminder: %w", err)
		}
	}

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, strings.Trim(reminderContent, "*"), embeds); err != nil {
			s.log.Warn("failed to mirror reminder", "error", err)
		}
	}

	s.log.Info("reminders sent", "schedules", len(schedules), "recipients", len(mentioned))
	return nil
}

// recipients merges the schedule's direct members with the members of its roles, keeping the
// first occurrence of each id.
func (s *reminderService) recipients(ctx context.Context, schedule *entity.Schedule) ([]string, error) {
	ids := appendUnique(nil, schedule.MemberIDs...)
	if len(schedule.RoleIDs) == 0 {
		return ids, nil
	}

	members, err := s.dm.Member().GetByRoleIDs(ctx, schedule.RoleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get role members: %w", err)
	}
	for _, m := range members {
		ids = appendUnique(ids, m.MemberID)
	}
	return ids, nil
}

func appendUnique(dst []string, values ...string) []string {
	seen := make(map[string]struct{}, len(dst)+len(values))
	for _, v := range dst {
		seen[v] = struct{}{}
	}
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		dst = append(dst, v)
	}
	return dst
}
