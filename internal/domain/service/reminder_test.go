package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/discord-schedule-bot/internal/domain"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/entity"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_reminderService_SendReminders(t *testing.T) {
	bucket := time.Date(2025, 6, 1, 10, 0, 0, 0, testLoc).Unix()

	remindable := func() []*entity.Schedule {
		return []*entity.Schedule{
			{
				ID: "s1", Title: "Deploy", StartAt: bucket + 86400, EndAt: bucket + 90000, RemindDays: intPtr(1),
				MemberIDs: []string{"u1", "u2"}, RoleIDs: []string{"r1"},
			},
			{
				ID: "s2", Title: "Lunch", StartAt: bucket + 1800, EndAt: bucket + 5400, RemindDays: intPtr(0),
				MemberIDs: []string{"u3"},
			},
		}
	}

	tests := []struct {
		name      string
		withSlack bool
		buildMock func(mocks allMocks)
		wantErr   bool
	}{
		{
			name: "Should do nothing when no schedule is due",
			buildMock: func(mocks allMocks) {
				mocks.mockScheduleRepo.EXPECT().GetRemindable(gomock.Any(), bucket, bucket+3600).Return(nil, nil).Times(1)
			},
		},
		{
			name: "Should record and send reminders to deduplicated recipients",
			buildMock: func(mocks allMocks) {
				mocks.mockScheduleRepo.EXPECT().GetRemindable(gomock.Any(), bucket, bucket+3600).Return(remindable(), nil).Times(1)
				mocks.mockMemberRepo.EXPECT().
					GetByRoleIDs(gomock.Any(), []string{"r1"}).
					Return([]*entity.Member{{MemberID: "u2"}, {MemberID: "u4"}}, nil).Times(1)

				mocks.mockRemindRepo.EXPECT().
					BulkCreate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, reminds []*entity.Remind) error {
						require.Len(t, reminds, 2)
						require.Equal(t, "s1", reminds[0].ScheduleID)
						require.Equal(t, bucket, reminds[0].RemindAt)
						require.Equal(t, []string{"u1", "u2", "u4"}, reminds[0].MemberIDs)
						require.Equal(t, []string{"u3"}, reminds[1].MemberIDs)
						require.NotEqual(t, reminds[0].ID, reminds[1].ID)

						var embed discord.Embed
						require.NoError(t, json.Unmarshal([]byte(reminds[0].Text), &embed))
						require.Equal(t, "Deploy", embed.Title)
						return nil
					}).Times(1)

				mocks.mockDiscordClient.EXPECT().
					CreateMessage(gomock.Any(), testChannel, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ snowflake.ID, msg discord.MessageCreate) error {
						require.Equal(t, "**Reminder!** <@u1>, <@u2>, <@u4>, <@u3>", msg.Content)
						require.Len(t, msg.Embeds, 2)
						require.Equal(t, domain.ColorRemind, msg.Embeds[0].Color)
						return nil
					}).Times(1)
			},
		},
		{
			name:      "Should mirror to slack and ignore its failure",
			withSlack: true,
			buildMock: func(mocks allMocks) {
				schedules := remindable()[1:]
				mocks.mockScheduleRepo.EXPECT().GetRemindable(gomock.Any(), bucket, bucket+3600).Return(schedules, nil).Times(1)
				mocks.mockRemindRepo.EXPECT().BulkCreate(gomock.Any(), gomock.Any()).Return(nil).Times(1)
				mocks.mockDiscordClient.EXPECT().CreateMessage(gomock.Any(), testChannel, gomock.Any()).Return(nil).Times(1)
				mocks.mockNotifier.EXPECT().Notify(gomock.Any(), "Reminder!", gomock.Len(1)).Return(assert.AnError).Times(1)
			},
		},
		{
			name: "Should not send when reminds cannot be saved",
			buildMock: func(mocks allMocks) {
				schedules := remindable()[1:]
				mocks.mockScheduleRepo.EXPECT().GetRemindable(gomock.Any(), bucket, bucket+3600).Return(schedules, nil).Times(1)
				mocks.mockRemindRepo.EXPECT().BulkCreate(gomock.Any(), gomock.Any()).Return(assert.AnError).Times(1)
			},
			wantErr: true,
		},
		{
			name: "Should return send failures",
			buildMock: func(mocks allMocks) {
				schedules := remindable()[1:]
				mocks.mockScheduleRepo.EXPECT().GetRemindable(gomock.Any(), bucket, bucket+3600).Return(schedules, nil).Times(1)
				mocks.mockRemindRepo.EXPECT().BulkCreate(gomock.Any(), gomock.Any()).Return(nil).Times(1)
				mocks.mockDiscordClient.EXPECT().CreateMessage(gomock.Any(), testChannel, gomock.Any()).Return(assert.AnError).Times(1)
			},
			wantErr: true,
		},
		{
			name: "Should return lookup failures",
			buildMock: func(mocks allMocks) {
				mocks.mockScheduleRepo.EXPECT().GetRemindable(gomock.Any(), bucket, bucket+3600).Return(nil, assert.AnError).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			var notifier contract.Notifier
			if tt.withSlack {
				notifier = m.mockNotifier
			}

			err := newTestInstance(t, m, notifier).Reminder.SendReminders(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_reminderService_ChunksEmbeds(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	bucket := time.Date(2025, 6, 1, 10, 0, 0, 0, testLoc).Unix()
	schedules := make([]*entity.Schedule, 23)
	for i := range schedules {
		schedules[i] = &entity.Schedule{
			ID: fmt.Sprintf("s%d", i), Title: "t", StartAt: bucket, EndAt: bucket + 60, RemindDays: intPtr(0),
		}
	}

	m.mockScheduleRepo.EXPECT().GetRemindable(gomock.Any(), bucket, bucket+3600).Return(schedules, nil).Times(1)
	m.mockRemindRepo.EXPECT().BulkCreate(gomock.Any(), gomock.Len(23)).Return(nil).Times(1)

	var sizes []int
	m.mockDiscordClient.EXPECT().
		CreateMessage(gomock.Any(), testChannel, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ snowflake.ID, msg discord.MessageCreate) error {
			assert.Equal(t, "**Reminder!**", msg.Content)
			sizes = append(sizes, len(msg.Embeds))
			return nil
		}).Times(3)

	require.NoError(t, newTestInstance(t, m, nil).Reminder.SendReminders(context.Background()))
	assert.Equal(t, []int{10, 10, 3}, sizes)
}

func Test_reminderService_SplitsLongReminders(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	bucket := time.Date(2025, 6, 1, 10, 0, 0, 0, testLoc).Unix()
	schedules := make([]*entity.Schedule, 4)
	for i := range schedules {
		schedules[i] = &entity.Schedule{
			ID: fmt.Sprintf("s%d", i), Title: "t", Description: strings.Repeat("あ", 2000),
			StartAt: bucket, EndAt: bucket + 60, RemindDays: intPtr(0),
			MemberIDs: []string{fmt.Sprintf("u%d", i)},
		}
	}

	m.mockScheduleRepo.EXPECT().GetRemindable(gomock.Any(), bucket, bucket+3600).Return(schedules, nil).Times(1)
	m.mockRemindRepo.EXPECT().BulkCreate(gomock.Any(), gomock.Len(4)).Return(nil).Times(1)

	var contents []string
	var sizes []int
	m.mockDiscordClient.EXPECT().
		CreateMessage(gomock.Any(), testChannel, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ snowflake.ID, msg discord.MessageCreate) error {
			total := 0
			for _, e := range msg.Embeds {
				total += embedSize(e)
			}
			assert.LessOrEqual(t, total, maxEmbedChars)
			assert.LessOrEqual(t, len(msg.Embeds), domain.MaxEmbedsPerMessage)

			contents = append(contents, msg.Content)
			sizes = append(sizes, len(msg.Embeds))
			return nil
		}).Times(2)

	require.NoError(t, newTestInstance(t, m, nil).Reminder.SendReminders(context.Background()))
	assert.Equal(t, []int{2, 2}, sizes)
	assert.Equal(t, []string{"**Reminder!** <@u0>, <@u1>", "**Reminder!** <@u2>, <@u3>"}, contents)
}
