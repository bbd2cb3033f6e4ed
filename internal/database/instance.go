package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/discord-schedule-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db           *DB
	scheduleRepo contract.ScheduleRepo
	memberRepo   contract.MemberRepo
	roleRepo     contract.RoleRepo
	remindRepo   contract.RemindRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := repoInstancesWithConn(db.conn)
	instance.db = db
	return instance
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		scheduleRepo: newScheduleRepo(db),
		memberRepo:   newMemberRepo(db),
		roleRepo:     newRoleRepo(db),
		remindRepo:   newRemindRepo(db),
	}
}

func (i *instance) Schedule() contract.ScheduleRepo {
	return i.scheduleRepo
}

func (i *instance) Member() contract.MemberRepo {
	return i.memberRepo
}

func (i *instance) Role() contract.RoleRepo {
	return i.roleRepo
}

func (i *instance) Remind() contract.RemindRepo {
	return i.remindRepo
}

// WithTransaction executes a function within a database transaction.
// Calling it on a transaction-scoped instance runs fn in the outer transaction.
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fn(i)
	}

	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
