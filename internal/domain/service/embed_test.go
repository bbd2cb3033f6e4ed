package service

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/diegoclair/discord-schedule-bot/internal/domain"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/entity"
	"github.com/disgoorg/disgo/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_scheduleEmbed(t *testing.T) {
	s := &entity.Schedule{
		ID:          "s1",
		Title:       "Deploy",
		Description: "prod",
		StartAt:     testNow.Unix(),
		EndAt:       testNow.Unix() + 3600,
		RemindDays:  intPtr(2),
		MemberIDs:   []string{"u1"},
		RoleIDs:     []string{"r1", "r2"},
	}

	embed := scheduleEmbed(s, actionShow, testLoc, nil)
	assert.Equal(t, "Deploy", embed.Title)
	assert.Equal(t, "prod", embed.Description)
	assert.Equal(t, domain.ColorShow, embed.Color)

	fields := map[string]string{}
	for _, f := range embed.Fields {
		fields[f.Name] = f.Value
	}
	assert.Equal(t, "2025-06-01 10:20 ~ 2025-06-01 11:20", fields["Period"])
	assert.Equal(t, "2 days before", fields["Reminder"])
	assert.Equal(t, "<@&r1>, <@&r2>", fields["Roles"])
	assert.Equal(t, "<@u1>", fields["Members"])
	assert.Equal(t, "s1", fields["ID"])

	override := scheduleEmbed(s, actionRemind, testLoc, []string{"u7", "u8"})
	for _, f := range override.Fields {
		if f.Name == "Members" {
			assert.Equal(t, "<@u7>, <@u8>", f.Value)
		}
	}
}

func Test_scheduleEmbed_FitsInOneMessage(t *testing.T) {
	ids := make([]string, 200)
	for i := range ids {
		ids[i] = fmt.Sprintf("1100000000000000%03d", i)
	}
	s := &entity.Schedule{
		ID:          "s1",
		Title:       strings.Repeat("t", 400),
		Description: strings.Repeat("d", 5000),
		StartAt:     testNow.Unix(),
		EndAt:       testNow.Unix() + 3600,
		RemindDays:  intPtr(1),
		MemberIDs:   ids,
		RoleIDs:     ids,
	}

	embed := scheduleEmbed(s, actionShow, testLoc, nil)
	assert.Equal(t, maxEmbedTitle, utf8.RuneCountInString(embed.Title))
	assert.Equal(t, maxEmbedDescription, utf8.RuneCountInString(embed.Description))
	assert.True(t, strings.HasSuffix(embed.Description, "…"))
	assert.LessOrEqual(t, embedSize(embed), maxEmbedChars)
}

func Test_chunkEmbeds(t *testing.T) {
	sized := func(n int) discord.Embed {
		return discord.Embed{Title: "t", Description: strings.Repeat("é", n-1)}
	}
	repeat := func(e discord.Embed, n int) []discord.Embed {
		embeds := make([]discord.Embed, n)
		for i := range embeds {
			embeds[i] = e
		}
		return embeds
	}

	tests := []struct {
		name   string
		embeds []discord.Embed
		want   []int
	}{
		{
			name: "Should return nothing for no embeds",
		},
		{
			name:   "Should split by embed count",
			embeds: repeat(sized(10), 23),
			want:   []int{10, 10, 3},
		},
		{
			name:   "Should split by total characters",
			embeds: repeat(sized(2070), 4),
			want:   []int{2, 2},
		},
		{
			name:   "Should fill a message up to the character limit",
			embeds: repeat(sized(2000), 4),
			want:   []int{3, 1},
		},
		{
			name:   "Should keep an oversized embed on its own",
			embeds: []discord.Embed{sized(100), sized(maxEmbedChars + 1), sized(100)},
			want:   []int{1, 1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sizes []int
			for _, chunk := range chunkEmbeds(tt.embeds) {
				sizes = append(sizes, len(chunk))
			}
			assert.Equal(t, tt.want, sizes)
		})
	}
}

func Test_embedSize(t *testing.T) {
	embed := discord.Embed{
		Title:       "ab",
		Description: "日本語",
		Fields:      []discord.EmbedField{{Name: "ID", Value: "s1"}},
		Footer:      &discord.EmbedFooter{Text: "f"},
		Author:      &discord.EmbedAuthor{Name: "me"},
	}
	assert.Equal(t, 12, embedSize(embed))
}

func Test_embedsResponse(t *testing.T) {
	long := discord.Embed{Title: "t", Description: strings.Repeat("d", 2000)}

	resp := embedsResponse(actionList, []discord.Embed{long, long, long, long})
	assert.Len(t, resp.Embeds, 2)
	assert.Contains(t, resp.Content, "Showing 2 of 4 schedules.")

	short := embedsResponse(actionList, []discord.Embed{long})
	assert.Len(t, short.Embeds, 1)
	assert.Equal(t, "## "+actionList.heading, short.Content)
}

func Test_mentions(t *testing.T) {
	ids := make([]string, 200)
	for i := range ids {
		ids[i] = fmt.Sprintf("1100000000000000%03d", i)
	}

	got := mentions(ids, "<@%s>")
	require.LessOrEqual(t, len(got), maxFieldValue)
	assert.True(t, strings.HasSuffix(got, " …"))
	assert.True(t, strings.HasPrefix(got, "<@1100000000000000000>, "))

	assert.Equal(t, "<@a>", mentions([]string{"a"}, "<@%s>"))
	assert.Empty(t, mentions(nil, "<@%s>"))
}

func Test_remindText(t *testing.T) {
	assert.Equal(t, "On the day", remindText(0))
	assert.Equal(t, "1 day before", remindText(1))
	assert.Equal(t, "7 days before", remindText(7))
}
