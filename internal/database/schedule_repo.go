package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/diegoclair/discord-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/entity"
)

const scheduleColumns = `s.id, s.event_id, s.title, s.description, s.start_at, s.end_at,
	s.remind_days, s.created_at, s.updated_at, s.deleted_at`

type scheduleRepo struct {
	db dbConn
}

func newScheduleRepo(db dbConn) contract.ScheduleRepo {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) Create(ctx context.Context, schedule *entity.Schedule) error {
	query := `
		INSERT INTO schedules (id, event_id, title, description, start_at, end_at, remind_days)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		schedule.ID,
		schedule.EventID,
		schedule.Title,
		schedule.Description,
		schedule.StartAt,
		schedule.EndAt,
		nullInt(schedule.RemindDays),
	)
	if err != nil {
		return fmt.Errorf("failed to create schedule: %w", err)
	}

	if err := r.insertLinks(ctx, "schedule_member", "member_id", schedule.ID, schedule.MemberIDs); err != nil {
		return err
	}
	return r.insertLinks(ctx, "schedule_role", "role_id", schedule.ID, schedule.RoleIDs)
}

func (r *scheduleRepo) GetByID(ctx context.Context, id string) (*entity.Schedule, error) {
	query := `SELECT ` + scheduleColumns + `
		FROM schedules s
		WHERE s.id = ? AND s.deleted_at IS NULL
	`

	schedule, err := scanSchedule(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}

	if err := r.loadLinks(ctx, []*entity.Schedule{schedule}); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (r *scheduleRepo) List(ctx context.Context, filter entity.ScheduleFilter) ([]*entity.Schedule, error) {
	var (
		where = []string{"s.deleted_at IS NULL", "s.start_at >= ?"}
		args  = []any{filter.StartFrom}
	)
	if filter.StartTo > 0 {
		where = append(where, "s.start_at <= ?")
		args = append(args, filter.StartTo)
	}

	query := `SELECT ` + scheduleColumns + `
		FROM schedules s
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY s.start_at ASC, s.created_at ASC
	`
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	return r.query(ctx, query, args...)
}

func (r *scheduleRepo) Update(ctx context.Context, schedule *entity.Schedule, memberIDs, roleIDs []string) error {
	query := `
		UPDATE schedules
		SET event_id = ?, title = ?, description = ?, start_at = ?, end_at = ?, remind_days = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND deleted_at IS NULL
	`

	_, err := r.db.ExecContext(ctx, query,
		schedule.EventID,
		schedule.Title,
		schedule.Description,
		schedule.StartAt,
		schedule.EndAt,
		nullInt(schedule.RemindDays),
		schedule.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update schedule: %w", err)
	}

	if memberIDs != nil {
		if err := r.replaceLinks(ctx, "schedule_member", "member_id", schedule.ID, memberIDs); err != nil {
			return err
		}
	}
	if roleIDs != nil {
		if err := r.replaceLinks(ctx, "schedule_role", "role_id", schedule.ID, roleIDs); err != nil {
			return err
		}
	}
	return nil
}

// Delete soft-deletes the schedule and its reminds and removes its member and role links.
func (r *scheduleRepo) Delete(ctx context.Context, id string) error {
	statements := []struct {
		query string
		what  string
	}{
		{`UPDATE schedules SET deleted_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL`, "schedule"},
		{`DELETE FROM schedule_member WHERE schedule_id = ?`, "schedule members"},
		{`DELETE FROM schedule_role WHERE schedule_id = ?`, "schedule roles"},
		{`UPDATE reminds SET deleted_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP WHERE schedule_id = ? AND deleted_at IS NULL`, "schedule reminds"},
	}

	for _, st := range statements {
		if _, err := r.db.ExecContext(ctx, st.query, id); err != nil {
			return fmt.Errorf("failed to delete %s: %w", st.what, err)
		}
	}
	return nil
}

func (r *scheduleRepo) GetRemindable(ctx context.Context, from, to int64) ([]*entity.Schedule, error) {
	query := `SELECT ` + scheduleColumns + `
		FROM schedules s
		WHERE s.deleted_at IS NULL
			AND s.remind_days IS NOT NULL
			AND s.start_at - s.remind_days * 86400 >= ?
			AND s.start_at - s.remind_days * 86400 < ?
			AND NOT EXISTS (
				SELECT 1 FROM reminds r
				WHERE r.schedule_id = s.id AND r.remind_at = ? AND r.deleted_at IS NULL
			)
		ORDER BY s.start_at ASC
	`

	return r.query(ctx, query, from, to, from)
}

func (r *scheduleRepo) query(ctx context.Context, query string, args ...any) ([]*entity.Schedule, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules: %w", err)
	}

	var schedules []*entity.Schedule
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, schedule)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to iterate schedules: %w", err)
	}
	rows.Close()

	if err := r.loadLinks(ctx, schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

// loadLinks fills MemberIDs and RoleIDs of each schedule.
func (r *scheduleRepo) loadLinks(ctx context.Context, schedules []*entity.Schedule) error {
	for _, s := range schedules {
		memberIDs, err := r.linkedIDs(ctx, "schedule_member", "member_id", s.ID)
		if err != nil {
			return err
		}
		roleIDs, err := r.linkedIDs(ctx, "schedule_role", "role_id", s.ID)
		if err != nil {
			return err
		}
		s.MemberIDs = memberIDs
		s.RoleIDs = roleIDs
	}
	return nil
}

func (r *scheduleRepo) linkedIDs(ctx context.Context, table, column, scheduleID string) ([]string, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE schedule_id = ? ORDER BY created_at, %s`, column, table, column)

	rows, err := r.db.QueryContext(ctx, query, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", table, err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", table, err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *scheduleRepo) insertLinks(ctx context.Context, table, column, scheduleID string, ids []string) error {
	query := fmt.Sprintf(`INSERT OR IGNORE INTO %s (schedule_id, %s) VALUES (?, ?)`, table, column)
	for _, id := range ids {
		if _, err := r.db.ExecContext(ctx, query, scheduleID, id); err != nil {
			return fmt.Errorf("failed to insert %s: %w", table, err)
		}
	}
	return nil
}

// replaceLinks writes only the difference between the stored links and ids.
func (r *scheduleRepo) replaceLinks(ctx context.Context, table, column, scheduleID string, ids []string) error {
	current, err := r.linkedIDs(ctx, table, column, scheduleID)
	if err != nil {
		return err
	}

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	var removed []string
	existing := make(map[string]struct{}, len(current))
	for _, id := range current {
		existing[id] = struct{}{}
		if _, ok := wanted[id]; !ok {
			removed = append(removed, id)
		}
	}

	var added []string
	for _, id := range ids {
		if _, ok := existing[id]; !ok {
			added = append(added, id)
		}
	}

	if len(removed) > 0 {
		in, args := inClause(removed)
		query := fmt.Sprintf(`DELETE FROM %s WHERE schedule_id = ? AND %s IN %s`, table, column, in)
		if _, err := r.db.ExecContext(ctx, query, append([]any{scheduleID}, args...)...); err != nil {
			return fmt.Errorf("failed to delete %s: %w", table, err)
		}
	}
	return r.insertLinks(ctx, table, column, scheduleID, added)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSchedule(row rowScanner) (*entity.Schedule, error) {
	var (
		s          entity.Schedule
		remindDays sql.NullInt64
		deletedAt  sql.NullTime
	)
	err := row.Scan(
		&s.ID,
		&s.EventID,
		&s.Title,
		&s.Description,
		&s.StartAt,
		&s.EndAt,
		&remindDays,
		&s.CreatedAt,
		&s.UpdatedAt,
		&deletedAt,
	)
	if err != nil {
		return nil, err
	}

	if remindDays.Valid {
		days := int(remindDays.Int64)
		s.RemindDays = &days
	}
	if deletedAt.Valid {
		s.DeletedAt = &deletedAt.Time
	}
	return &s, nil
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
