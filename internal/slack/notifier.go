// Package slack mirrors reminder posts to a Slack incoming webhook.
package slack

import (
	"context"
	"fmt"
	"net/http"

	"github.com/diegoclair/discord-schedule-bot/internal/domain/contract"
	"github.com/disgoorg/disgo/discord"
	"github.com/slack-go/slack"
)

type WebhookNotifier struct {
	url    string
	client *http.Client
}

var _ contract.Notifier = (*WebhookNotifier)(nil)

// NewWebhookNotifier returns nil when url is empty so callers can skip mirroring.
func NewWebhookNotifier(url string, client *http.Client) *WebhookNotifier {
	if url == "" {
		return nil
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &WebhookNotifier{url: url, client: client}
}

func (n *WebhookNotifier) Notify(ctx context.Context, content string, embeds []discord.Embed) error {
	if n == nil {
		return nil
	}
	msg := &slack.WebhookMessage{
		Text:        content,
		Attachments: attachments(embeds),
	}
	if err := slack.PostWebhookCustomHTTPContext(ctx, n.url, n.client, msg); err != nil {
		return fmt.Errorf("failed to post slack webhook: %w", err)
	}
	return nil
}

func attachments(embeds []discord.Embed) []slack.Attachment {
	out := make([]slack.Attachment, 0, len(embeds))
	for _, e := range embeds {
		a := slack.Attachment{
			Title: e.Title,
			Text:  e.Description,
			Color: fmt.Sprintf("#%06x", e.Color),
		}
		for _, f := range e.Fields {
			a.Fields = append(a.Fields, slack.AttachmentField{Title: f.Name, Value: f.Value})
		}
		out = append(out, a)
	}
	return out
}
