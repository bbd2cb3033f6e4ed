// Package calendar holds the external calendar integration. Only a no-op client exists;
// schedules are kept in the bot's own store.
package calendar

import (
	"context"

	"github.com/diegoclair/discord-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/entity"
)

type NoopClient struct{}

var _ contract.CalendarClient = NoopClient{}

// CreateEvent returns an empty event id.
func (NoopClient) CreateEvent(context.Context, *entity.Schedule) (string, error) {
	return "", nil
}

func (NoopClient) DeleteEvent(context.Context, string) error {
	return nil
}
