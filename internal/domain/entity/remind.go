package entity

import "time"

// Remind records a reminder delivered for a schedule in a given hour bucket.
type Remind struct {
	ID         string
	ScheduleID string
	Text       string
	RemindAt   int64
	MemberIDs  []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}
