package models

import (
	"encoding/json"
	"fmt"

	"github.com/disgoorg/disgo/discord"
)

// Interaction is the body Discord posts to the interactions endpoint.
type Interaction struct {
	ID            string                  `json:"id"`
	ApplicationID string                  `json:"application_id"`
	Type          discord.InteractionType `json:"type"`
	Token         string                  `json:"token"`
	GuildID       string                  `json:"guild_id,omitempty"`
	ChannelID     string                  `json:"channel_id,omitempty"`
	Member        *InteractionMember      `json:"member,omitempty"`
	Data          json.RawMessage         `json:"data,omitempty"`
}

type InteractionMember struct {
	User InteractionUser `json:"user"`
	Nick string          `json:"nick,omitempty"`
}

type InteractionUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// UserID returns the id of the member who triggered the interaction, if known.
func (i *Interaction) UserID() string {
	if i.Member == nil {
		return ""
	}
	return i.Member.User.ID
}

// CommandData is the data of an application command interaction.
type CommandData struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Options []CommandOption `json:"options,omitempty"`
}

type CommandOption struct {
	Name    string          `json:"name"`
	Type    int             `json:"type"`
	Value   any             `json:"value,omitempty"`
	Options []CommandOption `json:"options,omitempty"`
}

// Subcommand returns the first option, which carries the sub-command name and its options.
func (c CommandData) Subcommand() (CommandOption, bool) {
	if len(c.Options) == 0 {
		return CommandOption{}, false
	}
	return c.Options[0], true
}

// String returns the string value of the named child option, or "" when absent.
func (o CommandOption) String(name string) string {
	for _, opt := range o.Options {
		if opt.Name != name || opt.Value == nil {
			continue
		}
		if s, ok := opt.Value.(string); ok {
			return s
		}
		return fmt.Sprint(opt.Value)
	}
	return ""
}

// ComponentData is the data of a message component interaction.
type ComponentData struct {
	CustomID      string                `json:"custom_id"`
	ComponentType discord.ComponentType `json:"component_type"`
	Values        []string              `json:"values,omitempty"`
}

// ModalData is the data of a modal submit interaction.
type ModalData struct {
	CustomID   string     `json:"custom_id"`
	Components []ModalRow `json:"components"`
}

// ModalRow is either an action row holding inputs or a label wrapping a single input.
type ModalRow struct {
	Type       discord.ComponentType `json:"type"`
	Components []ModalField          `json:"components,omitempty"`
	Component  *ModalField           `json:"component,omitempty"`
}

type ModalField struct {
	Type     discord.ComponentType `json:"type"`
	CustomID string                `json:"custom_id"`
	Value    string                `json:"value"`
}

// Fields flattens the submitted rows into a custom id to value map.
func (m ModalData) Fields() map[string]string {
	fields := make(map[string]string)
	for _, row := range m.Components {
		for _, f := range row.Components {
			fields[f.CustomID] = f.Value
		}
		if row.Component != nil {
			fields[row.Component.CustomID] = row.Component.Value
		}
	}
	return fields
}
