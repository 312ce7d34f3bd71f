package usecase

import (
	"security-toolbox/internal/codec"
	pkgLog "security-toolbox/pkg/log"
)

type usecase struct {
	l pkgLog.Logger
}

func New(l pkgLog.Logger) codec.UseCase {
	return &usecase{l: l}
}
