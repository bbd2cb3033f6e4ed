package handlers

import (
	"fmt"

	"github.com/diegoclair/discord-schedule-bot/internal/domain"
	"github.com/diegoclair/discord-schedule-bot/pkg/models"
	"github.com/disgoorg/disgo/discord"
)

// Kind is the handler family an interaction is routed to.
type Kind int

const (
	KindSlashCommand Kind = iota + 1
	KindMessageComponent
	KindModalSubmit
)

func (k Kind) String() string {
	switch k {
	case KindSlashCommand:
		return "slash_command"
	case KindMessageComponent:
		return "message_component"
	case KindModalSubmit:
		return "modal_submit"
	default:
		return "unknown"
	}
}

// Classify maps an interaction to the handler family for its type. Pings are answered before
// classification and are rejected here like any other unsupported type.
func Classify(interaction models.Interaction) (Kind, error) {
	switch interaction.Type {
	case discord.InteractionTypeApplicationCommand:
		return KindSlashCommand, nil
	case discord.InteractionTypeComponent:
		return KindMessageComponent, nil
	case discord.InteractionTypeModalSubmit:
		return KindModalSubmit, nil
	default:
		return 0, fmt.Errorf("%w: %d", domain.ErrUnsupportedInteractionType, interaction.Type)
	}
}
