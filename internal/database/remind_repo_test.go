package database

import (
	"context"
	"testing"

	"github.com/diegoclair/discord-schedule-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemindRepo_BulkCreateAndGetBySchedule(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	schedules := newScheduleRepo(db.conn)
	repo := newRemindRepo(db.conn)

	require.NoError(t, schedules.Create(ctx, newTestSchedule("s1", 1900000000)))

	err := repo.BulkCreate(ctx, []*entity.Remind{
		{ID: "r2", ScheduleID: "s1", Text: `{"title":"b"}`, RemindAt: 1899996400, MemberIDs: []string{"m2", "m1"}},
		{ID: "r1", ScheduleID: "s1", Text: `{"title":"a"}`, RemindAt: 1899992800},
	})
	require.NoError(t, err)

	reminds, err := repo.GetBySchedule(ctx, "s1", false)
	require.NoError(t, err)
	require.Len(t, reminds, 2)

	assert.Equal(t, "r1", reminds[0].ID, "Expected reminds ordered by remind_at")
	assert.Empty(t, reminds[0].MemberIDs)
	assert.Equal(t, []string{"m1", "m2"}, reminds[1].MemberIDs)
	assert.Equal(t, `{"title":"b"}`, reminds[1].Text)

	other, err := repo.GetBySchedule(ctx, "missing", false)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestRemindRepo_RejectsDuplicateBucket(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	require.NoError(t, newScheduleRepo(db.conn).Create(ctx, newTestSchedule("s1", 1900000000)))

	repo := newRemindRepo(db.conn)
	require.NoError(t, repo.BulkCreate(ctx, []*entity.Remind{{ID: "r1", ScheduleID: "s1", RemindAt: 1899996400}}))

	err := repo.BulkCreate(ctx, []*entity.Remind{{ID: "r2", ScheduleID: "s1", RemindAt: 1899996400}})
	assert.Error(t, err, "Expected the same schedule and bucket to be recorded once")
}

func TestRemindRepo_GetBySchedule_IncludeDeleted(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	schedules := newScheduleRepo(db.conn)
	repo := newRemindRepo(db.conn)

	require.NoError(t, schedules.Create(ctx, newTestSchedule("s1", 1900000000)))
	require.NoError(t, repo.BulkCreate(ctx, []*entity.Remind{
		{ID: "r1", ScheduleID: "s1", RemindAt: 1899996400, MemberIDs: []string{"m1"}},
	}))
	require.NoError(t, schedules.Delete(ctx, "s1"))

	active, err := repo.GetBySchedule(ctx, "s1", false)
	require.NoError(t, err)
	assert.Empty(t, active)

	history, err := repo.GetBySchedule(ctx, "s1", true)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.NotNil(t, history[0].DeletedAt)
	assert.Equal(t, []string{"m1"}, history[0].MemberIDs)
}
