package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/diegoclair/discord-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/entity"
)

type remindRepo struct {
	db dbConn
}

func newRemindRepo(db dbConn) contract.RemindRepo {
	return &remindRepo{db: db}
}

func (r *remindRepo) BulkCreate(ctx context.Context, reminds []*entity.Remind) error {
	for _, remind := range reminds {
		query := `INSERT INTO reminds (id, schedule_id, text, remind_at) VALUES (?, ?, ?, ?)`
		if _, err := r.db.ExecContext(ctx, query, remind.ID, remind.ScheduleID, remind.Text, remind.RemindAt); err != nil {
			return fmt.Errorf("failed to create remind for schedule %s: %w", remind.ScheduleID, err)
		}

		for _, memberID := range remind.MemberIDs {
			query := `INSERT OR IGNORE INTO remind_member (remind_id, member_id) VALUES (?, ?)`
			if _, err := r.db.ExecContext(ctx, query, remind.ID, memberID); err != nil {
				return fmt.Errorf("failed to create remind member: %w", err)
			}
		}
	}
	return nil
}

func (r *remindRepo) GetBySchedule(ctx context.Context, scheduleID string, includeDeleted bool) ([]*entity.Remind, error) {
	query := `
		SELECT id, schedule_id, text, remind_at, created_at, updated_at, deleted_at
		FROM reminds
		WHERE schedule_id = ?
	`
	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}
	query += " ORDER BY remind_at"

	rows, err := r.db.QueryContext(ctx, query, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reminds: %w", err)
	}

	var reminds []*entity.Remind
	for rows.Next() {
		var (
			remind    entity.Remind
			deletedAt sql.NullTime
		)
		err := rows.Scan(&remind.ID, &remind.ScheduleID, &remind.Text, &remind.RemindAt,
			&remind.CreatedAt, &remind.UpdatedAt, &deletedAt)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan remind: %w", err)
		}
		if deletedAt.Valid {
			remind.DeletedAt = &deletedAt.Time
		}
		reminds = append(reminds, &remind)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to iterate reminds: %w", err)
	}
	rows.Close()

	for _, remind := range reminds {
		memberIDs, err := r.memberIDs(ctx, remind.ID)
		if err != nil {
			return nil, err
		}
		remind.MemberIDs = memberIDs
	}
	return reminds, nil
}

func (r *remindRepo) memberIDs(ctx context.Context, remindID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT member_id FROM remind_member WHERE remind_id = ? ORDER BY member_id`, remindID)
	if err != nil {
		return nil, fmt.Errorf("failed to get remind members: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan remind member: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
