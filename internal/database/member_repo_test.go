package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/diegoclair/discord-schedule-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRoles(t *testing.T, db *DB, ids ...string) {
	t.Helper()

	roles := make([]*entity.Role, 0, len(ids))
	for _, id := range ids {
		roles = append(roles, &entity.Role{RoleID: id, Name: "role " + id})
	}
	require.NoError(t, newRoleRepo(db.conn).BulkCreate(context.Background(), roles))
}

func TestMemberRepo_BulkCreateAndGetAll(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newMemberRepo(db.conn)
	seedRoles(t, db, "r1", "r2")

	members := []*entity.Member{
		{MemberID: "m1", UserName: "alice", NickName: "Ali", RoleIDs: []string{"r1", "r2"}},
		{MemberID: "m2", UserName: "bob", RoleIDs: []string{"unknown"}},
	}
	require.NoError(t, repo.BulkCreate(ctx, members))

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "m1", got[0].MemberID)
	assert.Equal(t, "Ali", got[0].NickName)
	assert.Equal(t, "Ali", got[0].DisplayName())
	assert.Equal(t, []string{"r1", "r2"}, got[0].RoleIDs)

	assert.Equal(t, "bob", got[1].DisplayName())
	assert.Empty(t, got[1].RoleIDs, "Roles that were never synced are skipped")
}

func TestMemberRepo_BulkCreate_Duplicate(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newMemberRepo(db.conn)

	require.NoError(t, repo.BulkCreate(ctx, []*entity.Member{{MemberID: "m1", UserName: "alice"}}))
	err := repo.BulkCreate(ctx, []*entity.Member{{MemberID: "m1", UserName: "alice"}})
	assert.Error(t, err)
}

func TestMemberRepo_Update(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newMemberRepo(db.conn)
	seedRoles(t, db, "r1", "r2", "r3")

	require.NoError(t, repo.BulkCreate(ctx, []*entity.Member{
		{MemberID: "m1", UserName: "alice", RoleIDs: []string{"r1", "r2"}},
	}))
	require.NoError(t, repo.SoftDelete(ctx, []string{"m1"}))

	err := repo.Update(ctx, &entity.Member{MemberID: "m1", UserName: "alice2", NickName: "A", RoleIDs: []string{"r3"}})
	require.NoError(t, err)

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "alice2", got[0].UserName)
	assert.Equal(t, "A", got[0].NickName)
	assert.Equal(t, []string{"r3"}, got[0].RoleIDs, "Removed roles are written, not only added ones")
	assert.Nil(t, got[0].DeletedAt, "Update restores a member that rejoined")
}

func TestMemberRepo_GetByRoleIDs(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newMemberRepo(db.conn)
	seedRoles(t, db, "r1", "r2")

	require.NoError(t, repo.BulkCreate(ctx, []*entity.Member{
		{MemberID: "m1", UserName: "a", RoleIDs: []string{"r1", "r2"}},
		{MemberID: "m2", UserName: "b", RoleIDs: []string{"r2"}},
		{MemberID: "m3", UserName: "c"},
		{MemberID: "m4", UserName: "d", RoleIDs: []string{"r1"}},
	}))
	require.NoError(t, repo.SoftDelete(ctx, []string{"m4"}))

	got, err := repo.GetByRoleIDs(ctx, []string{"r1", "r2"})
	require.NoError(t, err)

	var ids []string
	for _, m := range got {
		ids = append(ids, m.MemberID)
	}
	assert.Equal(t, []string{"m1", "m2"}, ids)

	none, err := repo.GetByRoleIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemberRepo_SoftDelete_Cascade(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newMemberRepo(db.conn)
	schedules := newScheduleRepo(db.conn)
	reminds := newRemindRepo(db.conn)
	seedRoles(t, db, "r1")

	require.NoError(t, repo.BulkCreate(ctx, []*entity.Member{
		{MemberID: "m1", UserName: "a", RoleIDs: []string{"r1"}},
		{MemberID: "m2", UserName: "b", RoleIDs: []string{"r1"}},
	}))
	s := newTestSchedule("s1", 1900000000)
	s.MemberIDs = []string{"m1", "m2"}
	require.NoError(t, schedules.Create(ctx, s))
	require.NoError(t, reminds.BulkCreate(ctx, []*entity.Remind{
		{ID: "rm1", ScheduleID: "s1", Text: "{}", RemindAt: 1, MemberIDs: []string{"m1", "m2"}},
	}))

	require.NoError(t, repo.SoftDelete(ctx, []string{"m1"}))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2, "Soft-deleted members stay stored")
	assert.NotNil(t, all[0].DeletedAt)
	assert.Nil(t, all[1].DeletedAt)

	for _, table := range []string{"role_member", "schedule_member", "remind_member"} {
		var count int
		err := db.conn.QueryRow(fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE member_id = 'm1'`, table)).Scan(&count)
		require.NoError(t, err)
		assert.Zero(t, count, "expected no %s rows for deleted member", table)

		err = db.conn.QueryRow(fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE member_id = 'm2'`, table)).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "expected %s rows of other member to stay", table)
	}
}
