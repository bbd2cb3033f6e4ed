package contract

import (
	"context"

	"github.com/diegoclair/discord-schedule-bot/internal/domain/reply"
	"github.com/diegoclair/discord-schedule-bot/pkg/models"
)

type CommandService interface {
	HandleCommand(ctx context.Context, data models.CommandData) (reply.Response, error)
}

type ModalService interface {
	HandleModal(ctx context.Context, data models.ModalData) (reply.Response, error)
}

type InteractionService interface {
	HandleInteraction(ctx context.Context, data models.ComponentData) (reply.Response, error)
}

type ReminderService interface {
	SendReminders(ctx context.Context) error
}

type ServerInfoService interface {
	SyncMembers(ctx context.Context) error
	SyncRoles(ctx context.Context) error
}

type SubscribeService interface {
	SubscribeCommand(ctx context.Context) error
}
