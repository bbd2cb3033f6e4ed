package service

import (
	"context"
	"testing"

	"github.com/diegoclair/discord-schedule-bot/internal/domain"
	"github.com/disgoorg/disgo/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_subscribeService_SubscribeCommand(t *testing.T) {
	t.Run("Should register the calendar command", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockDiscordClient.EXPECT().
			SetCommands(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, commands []discord.ApplicationCommandCreate) error {
				require.Len(t, commands, 1)
				slash, ok := commands[0].(discord.SlashCommandCreate)
				require.True(t, ok)
				assert.Equal(t, domain.CommandName, slash.Name)
				return nil
			}).Times(1)

		require.NoError(t, newTestInstance(t, m, nil).Subscribe.SubscribeCommand(context.Background()))
	})

	t.Run("Should return registration errors", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockDiscordClient.EXPECT().SetCommands(gomock.Any(), gomock.Any()).Return(assert.AnError).Times(1)

		err := newTestInstance(t, m, nil).Subscribe.SubscribeCommand(context.Background())
		require.ErrorIs(t, err, assert.AnError)
	})
}
