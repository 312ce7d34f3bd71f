package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Manager signs and verifies HS256 compact tokens with one shared secret.
// Implementations are safe for concurrent use.
type Manager interface {
	// Sign serializes claims as-is and signs them.
	Sign(claims Claims) (string, error)
	// Verify checks algorithm, signature and time based claims, in that order,
	// and returns the decoded claims.
	Verify(token string) (Claims, error)
}

// New creates a Manager. An empty secret is accepted here; Sign and Verify
// then fail, which keeps a missing SECRET_KEY a runtime fault rather than a
// startup one.
func New(cfg Config) Manager {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &implManager{
		secretKey: []byte(cfg.SecretKey),
		now:       now,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{Algorithm}),
			jwt.WithJSONNumber(),
			jwt.WithIssuedAt(),
			jwt.WithTimeFunc(now),
		),
	}
}
