package jwt

import "errors"

var (
	// ErrMissingSecret is returned when the manager has no signing secret.
	ErrMissingSecret = errors.New("jwt: signing secret is not configured")

	// ErrTokenExpired is returned for a correctly signed token whose exp has passed
	// and that fails no other check.
	ErrTokenExpired = errors.New("jwt: token has expired")

	// ErrInvalidToken covers every other verification failure: malformed
	// structure, wrong algorithm, bad signature, invalid claims.
	ErrInvalidToken = errors.New("jwt: invalid token")
)
