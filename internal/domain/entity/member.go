package entity

import "time"

// Member is a guild member mirrored from Discord.
type Member struct {
	MemberID  string
	UserName  string
	NickName  string
	RoleIDs   []string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// DisplayName returns the nickname when present, otherwise the user name.
func (m *Member) DisplayName() string {
	if m.NickName != "" {
		return m.NickName
	}
	return m.UserName
}
