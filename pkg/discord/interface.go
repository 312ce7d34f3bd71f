package discord

import (
	"context"
	"errors"

	"security-toolbox/pkg/log"
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// IDiscord reports operational events to a Discord channel.
type IDiscord interface {
	// ReportBug posts an urgent error report. Long messages are truncated.
	ReportBug(ctx context.Context, message string) error
	SendError(ctx context.Context, title, description string, err error) error
	Close() error
}

// DefaultConfig returns the default delivery settings.
func DefaultConfig() Config {
	return Config{
		Timeout:    DefaultTimeout,
		RetryCount: DefaultRetryCount,
		RetryDelay: DefaultRetryDelay,
		Username:   DefaultUsername,
		BaseURL:    defaultBaseURL,
	}
}

// New creates a Discord reporter for webhook using DefaultConfig.
func New(l log.Logger, webhook Webhook) (IDiscord, error) {
	return NewWithConfig(l, webhook, DefaultConfig())
}

// NewWithConfig creates a Discord reporter with explicit delivery settings.
// Zero fields in cfg fall back to their defaults.
func NewWithConfig(l log.Logger, webhook Webhook, cfg Config) (IDiscord, error) {
	if webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	def := DefaultConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.RetryCount < 0 {
		cfg.RetryCount = 0
	}
	if cfg.Username == "" {
		cfg.Username = def.Username
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	return &discordImpl{
		l:       l,
		webhook: webhook,
		config:  cfg,
		client:  newHTTPClient(cfg.Timeout),
	}, nil
}
