package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/diegoclair/discord-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/entity"
)

type memberRepo struct {
	db dbConn
}

func newMemberRepo(db dbConn) contract.MemberRepo {
	return &memberRepo{db: db}
}

func (r *memberRepo) GetAll(ctx context.Context) ([]*entity.Member, error) {
	query := `
		SELECT member_id, user_name, nick_name, created_at, updated_at, deleted_at
		FROM members
		ORDER BY member_id
	`

	members, err := r.query(ctx, query)
	if err != nil {
		return nil, err
	}
	if err := r.loadRoles(ctx, members); err != nil {
		return nil, err
	}
	return members, nil
}

// GetByRoleIDs returns the active members holding at least one of roleIDs.
func (r *memberRepo) GetByRoleIDs(ctx context.Context, roleIDs []string) ([]*entity.Member, error) {
	if len(roleIDs) == 0 {
		return nil, nil
	}

	in, args := inClause(roleIDs)
	query := `
		SELECT DISTINCT m.member_id, m.user_name, m.nick_name, m.created_at, m.updated_at, m.deleted_at
		FROM members m
		INNER JOIN role_member rm ON rm.member_id = m.member_id
		WHERE m.deleted_at IS NULL AND rm.role_id IN ` + in + `
		ORDER BY m.member_id
	`

	return r.query(ctx, query, args...)
}

func (r *memberRepo) BulkCreate(ctx context.Context, members []*entity.Member) error {
	if len(members) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(members))
	args := make([]any, 0, len(members)*3)
	for _, m := range members {
		placeholders = append(placeholders, "(?, ?, ?)")
		args = append(args, m.MemberID, m.UserName, m.NickName)
	}

	query := `INSERT INTO members (member_id, user_name, nick_name) VALUES ` + strings.Join(placeholders, ", ")
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create members: %w", err)
	}

	for _, m := range members {
		if err := r.insertRoles(ctx, m.MemberID, m.RoleIDs); err != nil {
			return err
		}
	}
	return nil
}

// Update overwrites the names, restores a soft-deleted member and replaces its role set.
func (r *memberRepo) Update(ctx context.Context, member *entity.Member) error {
	query := `
		UPDATE members
		SET user_name = ?, nick_name = ?, deleted_at = NULL, updated_at = CURRENT_TIMESTAMP
		WHERE member_id = ?
	`

	if _, err := r.db.ExecContext(ctx, query, member.UserName, member.NickName, member.MemberID); err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM role_member WHERE member_id = ?`, member.MemberID); err != nil {
		return fmt.Errorf("failed to clear member roles: %w", err)
	}
	return r.insertRoles(ctx, member.MemberID, member.RoleIDs)
}

// SoftDelete marks the members deleted and removes their role, schedule and remind links.
func (r *memberRepo) SoftDelete(ctx context.Context, memberIDs []string) error {
	if len(memberIDs) == 0 {
		return nil
	}

	in, args := inClause(memberIDs)
	statements := []struct {
		query string
		what  string
	}{
		{`UPDATE members SET deleted_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP WHERE deleted_at IS NULL AND member_id IN ` + in, "members"},
		{`DELETE FROM role_member WHERE member_id IN ` + in, "member roles"},
		{`DELETE FROM schedule_member WHERE member_id IN ` + in, "member schedules"},
		{`DELETE FROM remind_member WHERE member_id IN ` + in, "member reminds"},
	}

	for _, st := range statements {
		if _, err := r.db.ExecContext(ctx, st.query, args...); err != nil {
			return fmt.Errorf("failed to delete %s: %w", st.what, err)
		}
	}
	return nil
}

// insertRoles links the member to each known role. Roles not yet synced are skipped.
func (r *memberRepo) insertRoles(ctx context.Context, memberID string, roleIDs []string) error {
	query := `
		INSERT OR IGNORE INTO role_member (role_id, member_id)
		SELECT role_id, ? FROM roles WHERE role_id = ?
	`
	for _, roleID := range roleIDs {
		if _, err := r.db.ExecContext(ctx, query, memberID, roleID); err != nil {
			return fmt.Errorf("failed to insert member role: %w", err)
		}
	}
	return nil
}

func (r *memberRepo) loadRoles(ctx context.Context, members []*entity.Member) error {
	if len(members) == 0 {
		return nil
	}

	byID := make(map[string]*entity.Member, len(members))
	for _, m := range members {
		m.RoleIDs = []string{}
		byID[m.MemberID] = m
	}

	rows, err := r.db.QueryContext(ctx, `SELECT member_id, role_id FROM role_member ORDER BY member_id, role_id`)
	if err != nil {
		return fmt.Errorf("failed to get member roles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var memberID, roleID string
		if err := rows.Scan(&memberID, &roleID); err != nil {
			return fmt.Errorf("failed to scan member role: %w", err)
		}
		if m, ok := byID[memberID]; ok {
			m.RoleIDs = append(m.RoleIDs, roleID)
		}
	}
	return rows.Err()
}

func (r *memberRepo) query(ctx context.Context, query string, args ...any) ([]*entity.Member, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	var members []*entity.Member
	for rows.Next() {
		var (
			m         entity.Member
			deletedAt sql.NullTime
		)
		if err := rows.Scan(&m.MemberID, &m.UserName, &m.NickName, &m.CreatedAt, &m.UpdatedAt, &deletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		if deletedAt.Valid {
			m.DeletedAt = &deletedAt.Time
		}
		members = append(members, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}
	return members, nil
}
