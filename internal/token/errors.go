package token

import "errors"

var (
	ErrGenerateFailed = errors.New("token: generate failed")
	ErrTokenExpired   = errors.New("token: expired")
	ErrInvalidToken   = errors.New("token: invalid")
)
