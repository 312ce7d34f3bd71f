package http

import (
	"security-toolbox/internal/token"
	"security-toolbox/pkg/discord"
	pkgLog "security-toolbox/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc token.UseCase
	d  discord.IDiscord
}

func New(l pkgLog.Logger, uc token.UseCase, d discord.IDiscord) Handler {
	return Handler{l: l, uc: uc, d: d}
}
