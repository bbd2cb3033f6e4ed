package service

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/diegoclair/discord-schedule-bot/internal/domain"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/datetime"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/entity"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/reply"
	"github.com/disgoorg/disgo/discord"
)

// Discord embed limits. maxEmbedChars applies to the sum over every embed of one message.
const (
	maxFieldValue       = 1024
	maxEmbedTitle       = 256
	maxEmbedDescription = 2048
	maxEmbedChars       = 6000
)

type embedAction struct {
	heading string
	color   int
}

var (
	actionAdd    = embedAction{"📅 Schedule added!", domain.ColorAdd}
	actionList   = embedAction{"📋 Schedules", domain.ColorList}
	actionShow   = embedAction{"🔎 Schedule details", domain.ColorShow}
	actionUpdate = embedAction{"✏️ Schedule updated!", domain.ColorUpdate}
	actionDelete = embedAction{"🗑️ Schedule deleted!", domain.ColorDelete}
	actionRemind = embedAction{"⏰ Reminder", domain.ColorRemind}
)

// scheduleEmbed renders a schedule. memberIDs overrides the schedule's own members when non-nil.
func scheduleEmbed(s *entity.Schedule, action embedAction, loc *time.Location, memberIDs []string) discord.Embed {
	if memberIDs == nil {
		memberIDs = s.MemberIDs
	}

	fields := []discord.EmbedField{
		{Name: "Period", Value: fmt.Sprintf("%s ~ %s", datetime.Format(s.StartAt, loc), datetime.Format(s.EndAt, loc))},
	}
	if s.RemindDays != nil {
		fields = append(fields, discord.EmbedField{Name: "Reminder", Value: remindText(*s.RemindDays)})
	}
	if len(s.RoleIDs) > 0 {
		fields = append(fields, discord.EmbedField{Name: "Roles", Value: mentions(s.RoleIDs, "<@&%s>")})
	}
	if len(memberIDs) > 0 {
		fields = append(fields, discord.EmbedField{Name: "Members", Value: mentions(memberIDs, "<@%s>")})
	}
	fields = append(fields, discord.EmbedField{Name: "ID", Value: s.ID})

	return discord.Embed{
		Title:       truncate(s.Title, maxEmbedTitle),
		Description: truncate(s.Description, maxEmbedDescription),
		Color:       action.color,
		Fields:      fields,
	}
}

func remindText(days int) string {
	switch days {
	case 0:
		return "On the day"
	case 1:
		return "1 day before"
	default:
		return fmt.Sprintf("%d days before", days)
	}
}

// mentions formats ids with format and cuts the list to fit an embed field.
func mentions(ids []string, format string) string {
	var b strings.Builder
	for i, id := range ids {
		m := fmt.Sprintf(format, id)
		sep := ""
		if i > 0 {
			sep = ", "
		}
		if b.Len()+len(sep)+len(m) > maxFieldValue-len(" …") {
			b.WriteString(" …")
			break
		}
		b.WriteString(sep)
		b.WriteString(m)
	}
	return b.String()
}

// embedsResponse replies with as many embeds as fit in a single message.
func embedsResponse(action embedAction, embeds []discord.Embed) reply.Embeds {
	content := "## " + action.heading
	if chunks := chunkEmbeds(embeds); len(chunks) > 1 {
		content += fmt.Sprintf("\nShowing %d of %d schedules.", len(chunks[0]), len(embeds))
		embeds = chunks[0]
	}
	return reply.Embeds{Content: content, Embeds: embeds}
}

// chunkEmbeds splits embeds into consecutive groups that each fit in one message.
func chunkEmbeds(embeds []discord.Embed) [][]discord.Embed {
	var chunks [][]discord.Embed
	start, size := 0, 0
	for i, e := range embeds {
		n := embedSize(e)
		if i > start && (i-start == domain.MaxEmbedsPerMessage || size+n > maxEmbedChars) {
			chunks = append(chunks, embeds[start:i])
			start, size = i, 0
		}
		size += n
	}
	if start < len(embeds) {
		chunks = append(chunks, embeds[start:])
	}
	return chunks
}

// embedSize counts the characters of e that Discord adds up against maxEmbedChars.
func embedSize(e discord.Embed) int {
	n := utf8.RuneCountInString(e.Title) + utf8.RuneCountInString(e.Description)
	for _, f := range e.Fields {
		n += utf8.RuneCountInString(f.Name) + utf8.RuneCountInString(f.Value)
	}
	if e.Footer != nil {
		n += utf8.RuneCountInString(e.Footer.Text)
	}
	if e.Author != nil {
		n += utf8.RuneCountInString(e.Author.Name)
	}
	return n
}
