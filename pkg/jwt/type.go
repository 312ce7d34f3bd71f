package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is an open set of token claims. Numbers decoded by Verify are
// json.Number so integer claims keep their exact value.
type Claims = jwt.MapClaims

// Config holds JWT configuration.
type Config struct {
	SecretKey string

	// Now overrides the clock used for expiry checks. Defaults to time.Now.
	Now func() time.Time
}

type implManager struct {
	secretKey []byte
	now       func() time.Time
	parser    *jwt.Parser
}
