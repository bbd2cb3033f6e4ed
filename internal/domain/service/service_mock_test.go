package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/diegoclair/discord-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/datetime"
	"github.com/diegoclair/discord-schedule-bot/internal/logger"
	"github.com/diegoclair/discord-schedule-bot/mocks"
	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testLoc     = time.FixedZone("JST", 9*3600)
	testNow     = time.Date(2025, 6, 1, 10, 20, 0, 0, testLoc)
	testChannel = snowflake.ID(1100000000000000003)
)

type allMocks struct {
	mockDataManager   *mocks.MockDataManager
	mockScheduleRepo  *mocks.MockScheduleRepo
	mockMemberRepo    *mocks.MockMemberRepo
	mockRoleRepo      *mocks.MockRoleRepo
	mockRemindRepo    *mocks.MockRemindRepo
	mockDiscordClient *mocks.MockDiscordClient
	mockCalendar      *mocks.MockCalendarClient
	mockNotifier      *mocks.MockNotifier
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	scheduleRepo := mocks.NewMockScheduleRepo(ctrl)
	dm.EXPECT().Schedule().Return(scheduleRepo).AnyTimes()

	memberRepo := mocks.NewMockMemberRepo(ctrl)
	dm.EXPECT().Member().Return(memberRepo).AnyTimes()

	roleRepo := mocks.NewMockRoleRepo(ctrl)
	dm.EXPECT().Role().Return(roleRepo).AnyTimes()

	remindRepo := mocks.NewMockRemindRepo(ctrl)
	dm.EXPECT().Remind().Return(remindRepo).AnyTimes()

	// transactions run the callback against the same mocked manager
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		},
	).AnyTimes()

	m = allMocks{
		mockDataManager:   dm,
		mockScheduleRepo:  scheduleRepo,
		mockMemberRepo:    memberRepo,
		mockRoleRepo:      roleRepo,
		mockRemindRepo:    remindRepo,
		mockDiscordClient: mocks.NewMockDiscordClient(ctrl),
		mockCalendar:      mocks.NewMockCalendarClient(ctrl),
		mockNotifier:      mocks.NewMockNotifier(ctrl),
	}

	// validate service creation
	instance := newTestInstance(t, m, m.mockNotifier)
	require.NotNil(t, instance.Command)
	require.NotNil(t, instance.Reminder)

	return
}

func testParser(t *testing.T) *datetime.Parser {
	t.Helper()

	p, err := datetime.NewParser(testLoc, false)
	require.NoError(t, err)
	return p
}

func newTestInstance(t *testing.T, m allMocks, notifier contract.Notifier) *Instance {
	t.Helper()

	return NewInstance(m.mockDataManager, m.mockDiscordClient, m.mockCalendar, notifier, Options{
		Dates:           testParser(t),
		ReminderChannel: testChannel,
		Now:             func() time.Time { return testNow },
	}, logger.New(io.Discard, logger.Options{Silent: true}))
}

func intPtr(v int) *int {
	return &v
}
