package contract

import (
	"context"

	"github.com/diegoclair/discord-schedule-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Schedule() ScheduleRepo
	Member() MemberRepo
	Role() RoleRepo
	Remind() RemindRepo
}

// ScheduleRepo defines the contract for schedule repository
type ScheduleRepo interface {
	Create(ctx context.Context, schedule *entity.Schedule) error
	// GetByID returns nil when the schedule does not exist or was deleted.
	GetByID(ctx context.Context, id string) (*entity.Schedule, error)
	List(ctx context.Context, filter entity.ScheduleFilter) ([]*entity.Schedule, error)
	// Update saves the schedule fields. A nil memberIDs or roleIDs leaves that relation untouched,
	// a non-nil slice replaces it.
	Update(ctx context.Context, schedule *entity.Schedule, memberIDs, roleIDs []string) error
	Delete(ctx context.Context, id string) error
	// GetRemindable returns schedules whose remind time falls in [from, to) and that have
	// no remind recorded for the bucket starting at from.
	GetRemindable(ctx context.Context, from, to int64) ([]*entity.Schedule, error)
}

// MemberRepo defines the contract for member repository
type MemberRepo interface {
	// GetAll returns every stored member, soft-deleted ones included.
	GetAll(ctx context.Context) ([]*entity.Member, error)
	GetByRoleIDs(ctx context.Context, roleIDs []string) ([]*entity.Member, error)
	BulkCreate(ctx context.Context, members []*entity.Member) error
	Update(ctx context.Context, member *entity.Member) error
	SoftDelete(ctx context.Context, memberIDs []string) error
}

// RoleRepo defines the contract for role repository
type RoleRepo interface {
	GetAll(ctx context.Context) ([]*entity.Role, error)
	BulkCreate(ctx context.Context, roles []*entity.Role) error
	Update(ctx context.Context, role *entity.Role) error
	Delete(ctx context.Context, roleIDs []string) error
}

// RemindRepo defines the contract for remind repository
type RemindRepo interface {
	BulkCreate(ctx context.Context, reminds []*entity.Remind) error
	GetBySchedule(ctx context.Context, scheduleID string, includeDeleted bool) ([]*entity.Remind, error)
}
