package entity

import "time"

// Schedule is a calendar event tracked by the bot. StartAt and EndAt are epoch seconds.
type Schedule struct {
	ID          string
	EventID     string
	Title       string
	Description string
	StartAt     int64
	EndAt       int64
	RemindDays  *int
	MemberIDs   []string
	RoleIDs     []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// RemindAt returns the epoch second at which the schedule becomes due for a reminder.
func (s *Schedule) RemindAt() (int64, bool) {
	if s.RemindDays == nil {
		return 0, false
	}
	return s.StartAt - int64(*s.RemindDays)*86400, true
}

// ScheduleFilter bounds a schedule listing by start time. Zero values are open bounds.
type ScheduleFilter struct {
	StartFrom int64
	StartTo   int64
	Limit     int
}
