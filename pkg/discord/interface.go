package discord

import (
	"context"

	"pharma-search-srv/pkg/log"
)

// IDiscord reports operational events to a Discord webhook.
// Implementations are safe for concurrent use.
type IDiscord interface {
	ReportBug(ctx context.Context, message string) error
	SendError(ctx context.Context, title, description string, err error) error
}

// DiscordWebhook contains webhook information for Discord API.
type DiscordWebhook struct {
	ID    string
	Token string
}

// New creates a new Discord service. Returns the interface.
func New(l log.Logger, webhook *DiscordWebhook) (IDiscord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	return &discordImpl{
		l:       l,
		webhook: webhook,
		config:  DefaultConfig(),
		client:  newHTTPClient(DefaultConfig()),
	}, nil
}
