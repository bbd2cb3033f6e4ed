package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/discord-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/entity"
)

type roleRepo struct {
	db dbConn
}

func newRoleRepo(db dbConn) contract.RoleRepo {
	return &roleRepo{db: db}
}

func (r *roleRepo) GetAll(ctx context.Context) ([]*entity.Role, error) {
	query := `SELECT role_id, name, created_at, updated_at FROM roles ORDER BY role_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query roles: %w", err)
	}
	defer rows.Close()

	var roles []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.RoleID, &role.Name, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, &role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate roles: %w", err)
	}
	return roles, nil
}

func (r *roleRepo) BulkCreate(ctx context.Context, roles []*entity.Role) error {
	stmt, err := r.db.PrepareContext(ctx, `INSERT INTO roles (role_id, name) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare role insert: %w", err)
	}
	defer stmt.Close()

	for _, role := range roles {
		if _, err := stmt.ExecContext(ctx, role.RoleID, role.Name); err != nil {
			return fmt.Errorf("failed to create role %s: %w", role.RoleID, err)
		}
	}
	return nil
}

func (r *roleRepo) Update(ctx context.Context, role *entity.Role) error {
	query := `UPDATE roles SET name = ?, updated_at = CURRENT_TIMESTAMP WHERE role_id = ?`

	if _, err := r.db.ExecContext(ctx, query, role.Name, role.RoleID); err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	return nil
}

// Delete removes the roles along with their member and schedule links.
func (r *roleRepo) Delete(ctx context.Context, roleIDs []string) error {
	if len(roleIDs) == 0 {
		return nil
	}

	in, args := inClause(roleIDs)
	statements := []struct {
		query string
		what  string
	}{
		{`DELETE FROM role_member WHERE role_id IN ` + in, "role members"},
		{`DELETE FROM schedule_role WHERE role_id IN ` + in, "role schedules"},
		{`DELETE FROM roles WHERE role_id IN ` + in, "roles"},
	}

	for _, st := range statements {
		if _, err := r.db.ExecContext(ctx, st.query, args...); err != nil {
			return fmt.Errorf("failed to delete %s: %w", st.what, err)
		}
	}
	return nil
}
