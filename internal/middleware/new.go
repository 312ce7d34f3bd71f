package middleware

import (
	"security-toolbox/pkg/discord"
	"security-toolbox/pkg/log"
)

type Middleware struct {
	l       log.Logger
	discord discord.IDiscord
}

// New creates the middleware set. discordClient may be nil.
func New(l log.Logger, discordClient discord.IDiscord) Middleware {
	return Middleware{
		l:       l,
		discord: discordClient,
	}
}
