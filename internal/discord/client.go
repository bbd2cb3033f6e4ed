// Package discord wraps the disgo REST client with the guild and application the bot serves.
package discord

import (
	"context"
	"fmt"

	"github.com/diegoclair/discord-schedule-bot/internal/domain/contract"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
)

const membersPageSize = 1000

type Client struct {
	rest    rest.Rest
	appID   snowflake.ID
	guildID snowflake.ID
}

func New(token string, appID, guildID snowflake.ID) *Client {
	return NewWithRest(rest.New(rest.NewClient(token)), appID, guildID)
}

func NewWithRest(r rest.Rest, appID, guildID snowflake.ID) *Client {
	return &Client{rest: r, appID: appID, guildID: guildID}
}

var _ contract.DiscordClient = (*Client)(nil)

func (c *Client) GetMembers(ctx context.Context) ([]discord.Member, error) {
	var (
		members []discord.Member
		after   snowflake.ID
	)
	for {
		chunk, err := c.rest.GetMembers(c.guildID, membersPageSize, after, rest.WithCtx(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to fetch guild members: %w", err)
		}
		members = append(members, chunk...)
		if len(chunk) < membersPageSize {
			return members, nil
		}
		after = chunk[len(chunk)-1].User.ID
	}
}

func (c *Client) GetRoles(ctx context.Context) ([]discord.Role, error) {
	roles, err := c.rest.GetRoles(c.guildID, rest.WithCtx(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild roles: %w", err)
	}
	return roles, nil
}

func (c *Client) CreateMessage(ctx context.Context, channelID snowflake.ID, message discord.MessageCreate) error {
	if _, err := c.rest.CreateMessage(channelID, message, rest.WithCtx(ctx)); err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (c *Client) SetCommands(ctx context.Context, commands []discord.ApplicationCommandCreate) error {
	if _, err := c.rest.SetGuildCommands(c.appID, c.guildID, commands, rest.WithCtx(ctx)); err != nil {
		return fmt.Errorf("failed to set guild commands: %w", err)
	}
	return nil
}
