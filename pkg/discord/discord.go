package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	pkghttp "pharma-search-srv/pkg/http"
)

const (
	webhookBaseURL = "https://discord.com/api/webhooks"
	colorError     = 0xE74C3C
	maxContentLen  = 1900
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// DefaultConfig returns the default webhook client configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		RetryCount:      2,
		RetryDelay:      500 * time.Millisecond,
		DefaultUsername: "pharma-search-srv",
	}
}

func newHTTPClient(cfg Config) pkghttp.IClient {
	return pkghttp.NewClient(pkghttp.ClientConfig{
		Timeout:   cfg.Timeout,
		Retries:   cfg.RetryCount,
		RetryWait: cfg.RetryDelay,
	})
}

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf("%s/%s/%s", webhookBaseURL, d.webhook.ID, d.webhook.Token)
}

// ReportBug posts a plain message, truncated to fit a single Discord message.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	if len(message) > maxContentLen {
		message = message[:maxContentLen] + "..."
	}
	return d.send(ctx, WebhookPayload{
		Content:  "```" + message + "```",
		Username: d.config.DefaultUsername,
	})
}

// SendError posts an embed describing err.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	fields := []EmbedField{}
	if err != nil {
		fields = append(fields, EmbedField{Name: "error", Value: err.Error()})
	}
	return d.send(ctx, WebhookPayload{
		Username: d.config.DefaultUsername,
		Embeds: []Embed{{
			Title:       title,
			Description: description,
			Color:       colorError,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
			Fields:      fields,
		}},
	})
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	body, status, err := d.client.Post(ctx, d.webhookURL(), payload, nil)
	if err != nil {
		d.l.Warnf(ctx, "discord.send: %v", err)
		return err
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		d.l.Warnf(ctx, "discord.send: unexpected status %d: %s", status, string(body))
		return fmt.Errorf("discord: unexpected status %d", status)
	}
	return nil
}
