package http

import (
	"security-toolbox/internal/codec"
	"security-toolbox/pkg/discord"
	pkgLog "security-toolbox/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc codec.UseCase
	d  discord.IDiscord
}

// New returns the base64 handlers. d may be nil.
func New(l pkgLog.Logger, uc codec.UseCase, d discord.IDiscord) Handler {
	return Handler{l: l, uc: uc, d: d}
}
