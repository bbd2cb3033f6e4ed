package handlers

import (
	"fmt"

	"github.com/diegoclair/discord-schedule-bot/internal/domain/reply"
	"github.com/disgoorg/disgo/discord"
)

type interactionResponse struct {
	Type discord.InteractionResponseType `json:"type"`
	Data any                             `json:"data,omitempty"`
}

type messageData struct {
	Content    string          `json:"content,omitempty"`
	Embeds     []discord.Embed `json:"embeds,omitempty"`
	Components []actionRow     `json:"components,omitempty"`
	Flags      int             `json:"flags,omitempty"`
}

type modalData struct {
	CustomID   string      `json:"custom_id"`
	Title      string      `json:"title"`
	Components []actionRow `json:"components"`
}

type actionRow struct {
	Type       discord.ComponentType `json:"type"`
	Components []any                 `json:"components"`
}

// selectMenu always carries min_values: a zero minimum is meaningful for user and role pickers.
type selectMenu struct {
	Type        discord.ComponentType `json:"type"`
	CustomID    string                `json:"custom_id"`
	Placeholder string                `json:"placeholder,omitempty"`
	Options     []selectOption        `json:"options,omitempty"`
	MinValues   int                   `json:"min_values"`
	MaxValues   int                   `json:"max_values,omitempty"`
}

type selectOption struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Emoji       *emoji `json:"emoji,omitempty"`
}

type emoji struct {
	Name string `json:"name"`
}

type textInput struct {
	Type        discord.ComponentType  `json:"type"`
	CustomID    string                 `json:"custom_id"`
	Label       string                 `json:"label"`
	Style       discord.TextInputStyle `json:"style"`
	Placeholder string                 `json:"placeholder,omitempty"`
	Required    bool                   `json:"required"`
	MaxLength   int                    `json:"max_length,omitempty"`
}

var selectTypes = map[reply.SelectKind]discord.ComponentType{
	reply.SelectString: discord.ComponentTypeStringSelectMenu,
	reply.SelectUser:   discord.ComponentTypeUserSelectMenu,
	reply.SelectRole:   discord.ComponentTypeRoleSelectMenu,
}

// encodeResponse turns a handler result into the interaction callback body.
func encodeResponse(resp reply.Response) (interactionResponse, error) {
	switch r := resp.(type) {
	case reply.Message:
		data := messageData{Content: r.Content, Flags: flags(r.Ephemeral)}
		for _, s := range r.Selects {
			data.Components = append(data.Components, actionRow{
				Type:       discord.ComponentTypeActionRow,
				Components: []any{encodeSelect(s)},
			})
		}
		return interactionResponse{Type: discord.InteractionResponseTypeCreateMessage, Data: data}, nil

	case reply.Embeds:
		return interactionResponse{
			Type: discord.InteractionResponseTypeCreateMessage,
			Data: messageData{Content: r.Content, Embeds: r.Embeds, Flags: flags(r.Ephemeral)},
		}, nil

	case reply.Modal:
		data := modalData{CustomID: r.CustomID, Title: r.Title}
		for _, f := range r.Fields {
			data.Components = append(data.Components, actionRow{
				Type: discord.ComponentTypeActionRow,
				Components: []any{textInput{
					Type:        discord.ComponentTypeTextInput,
					CustomID:    f.CustomID,
					Label:       f.Label,
					Style:       f.Style,
					Placeholder: f.Placeholder,
					Required:    f.Required,
					MaxLength:   f.MaxLength,
				}},
			})
		}
		return interactionResponse{Type: discord.InteractionResponseTypeModal, Data: data}, nil

	default:
		return interactionResponse{}, fmt.Errorf("unsupported response %T", resp)
	}
}

func encodeSelect(s reply.Select) selectMenu {
	menu := selectMenu{
		Type:        selectTypes[s.Kind],
		CustomID:    s.CustomID,
		Placeholder: s.Placeholder,
		MinValues:   s.MinValues,
		MaxValues:   s.MaxValues,
	}
	for _, o := range s.Options {
		opt := selectOption{Label: o.Label, Value: o.Value, Description: o.Description}
		if o.Emoji != "" {
			opt.Emoji = &emoji{Name: o.Emoji}
		}
		menu.Options = append(menu.Options, opt)
	}
	return menu
}

func flags(ephemeral bool) int {
	if ephemeral {
		return int(discord.MessageFlagEphemeral)
	}
	return 0
}
