package usecase

import (
	"time"

	"security-toolbox/internal/token"
	pkgJWT "security-toolbox/pkg/jwt"
	pkgLog "security-toolbox/pkg/log"
)

type usecase struct {
	l      pkgLog.Logger
	jwtMgr pkgJWT.Manager
	now    func() time.Time
}

// New returns the token usecase. A nil now defaults to time.Now.
func New(l pkgLog.Logger, jwtMgr pkgJWT.Manager, now func() time.Time) token.UseCase {
	if now == nil {
		now = time.Now
	}
	return &usecase{
		l:      l,
		jwtMgr: jwtMgr,
		now:    now,
	}
}
