// Package reply holds the responses a handler can produce. Response is a closed union:
// Message, Modal and Embeds are its only variants.
package reply

import "github.com/disgoorg/disgo/discord"

type Response interface {
	isResponse()
}

// Message is a plain reply, optionally carrying select menus (one per action row).
type Message struct {
	Content   string
	Selects   []Select
	Ephemeral bool
}

// Modal asks the user for structured input.
type Modal struct {
	CustomID string
	Title    string
	Fields   []TextInput
}

// Embeds is a rich reply.
type Embeds struct {
	Content   string
	Embeds    []discord.Embed
	Ephemeral bool
}

func (Message) isResponse() {}
func (Modal) isResponse() {}
func (Embeds) isResponse() {}

type SelectKind int

const (
	SelectString SelectKind = iota
	SelectUser
	SelectRole
)

type Select struct {
	Kind        SelectKind
	CustomID    string
	Placeholder string
	Options     []SelectOption
	MinValues   int
	MaxValues   int
}

type SelectOption struct {
	Label       string
	Value       string
	Description string
	Emoji       string
}

type TextInput struct {
	CustomID    string
	Label       string
	Style       discord.TextInputStyle
	Placeholder string
	Required    bool
	MaxLength   int
}

// Error builds the ephemeral reply sent when a handler fails.
func Error(text string) Message {
	return Message{Content: "❌ Failed to run command: " + text, Ephemeral: true}
}
