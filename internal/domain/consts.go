package domain

// Slash command and sub-command names
const (
	CommandName = "calendar"

	SubcommandAdd    = "add"
	SubcommandShow   = "show"
	SubcommandDelete = "delete"
	SubcommandList   = "list"
)

// Options of the list sub-command
const (
	OptionStartAt = "start_at"
	OptionEndAt   = "end_at"
)

// Component custom ids. The member and role select ids are prefixes completed with a schedule id.
const (
	CustomIDShow           = "schedule_show"
	CustomIDDelete         = "schedule_delete"
	CustomIDMemberSelect   = "schedule_member_ids"
	CustomIDRoleSelect     = "schedule_role_ids"
	CustomIDAddModal       = "schedule_add_modal"
	CustomIDFieldTitle     = "title"
	CustomIDFieldStartAt   = "start_at"
	CustomIDFieldEndAt     = "end_at"
	CustomIDFieldDesc      = "description"
	CustomIDFieldRemindDay = "remind_days"
)

// Embed colors per action
const (
	ColorAdd    = 0x00ff00
	ColorList   = 0x800080
	ColorShow   = 0x00ffff
	ColorUpdate = 0x0000ff
	ColorDelete = 0xff0000
	ColorRemind = 0xffa500
)

const (
	// MaxSelectOptions is the Discord cap on select menu options and selected values.
	MaxSelectOptions = 25
	// MaxEmbedsPerMessage is the Discord cap on embeds in one message.
	MaxEmbedsPerMessage = 10
	// MemberInsertChunk bounds the rows written per insert during member sync.
	MemberInsertChunk = 10
)

const DefaultTimezone = "Asia/Tokyo"
