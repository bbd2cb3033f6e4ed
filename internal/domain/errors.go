package domain

import "errors"

var (
	ErrUnsupportedInteractionType = errors.New("unsupported interaction type")
	ErrInvalidSubcommand          = errors.New("invalid subcommand")
	ErrInvalidRequest             = errors.New("invalid request")
	ErrInvalidEventID             = errors.New("invalid event id")
	ErrScheduleNotFound           = errors.New("schedule not found")
	ErrInvalidDateFormat          = errors.New("invalid date format")
	ErrEndBeforeStart             = errors.New("end date must be after start date")
	ErrPastDate                   = errors.New("date is in the past")
	ErrInvalidRemindDays          = errors.New("remind days must be a non-negative integer")
)

// UserMessage maps an error to the text shown to the user who triggered the interaction.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrUnsupportedInteractionType):
		return "This interaction is not supported."
	case errors.Is(err, ErrInvalidSubcommand):
		return "Unknown subcommand. Use `/calendar add|show|delete|list`."
	case errors.Is(err, ErrInvalidEventID):
		return "No schedule was selected."
	case errors.Is(err, ErrScheduleNotFound):
		return "The schedule was not found. It may have been deleted."
	case errors.Is(err, ErrInvalidDateFormat):
		return "Invalid date format. Use `YYYY-MM-DDTHH:mm`."
	case errors.Is(err, ErrEndBeforeStart):
		return "The end date must be after the start date."
	case errors.Is(err, ErrPastDate):
		return "Dates in the past are not allowed."
	case errors.Is(err, ErrInvalidRemindDays):
		return "Remind days must be a whole number of days, 0 or more."
	case errors.Is(err, ErrInvalidRequest):
		return "Invalid request."
	default:
		return err.Error()
	}
}
