package service

import (
	"context"
	"log/slog"

	"github.com/diegoclair/discord-schedule-bot/internal/domain/command"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/contract"
)

type subscribeService struct {
	discord contract.DiscordClient
	log     *slog.Logger
}

func newSubscribeService(discord contract.DiscordClient, log *slog.Logger) *subscribeService {
	return &subscribeService{discord: discord, log: log}
}

// SubscribeCommand overwrites the guild's slash commands with the bot's definitions.
func (s *subscribeService) SubscribeCommand(ctx context.Context) error {
	definitions := command.Definitions()
	if err := s.discord.SetCommands(ctx, definitions); err != nil {
		return err
	}
	s.log.Info("commands registered", "count", len(definitions))
	return nil
}
