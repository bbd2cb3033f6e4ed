package entity

import "time"

type Role struct {
	RoleID    string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
