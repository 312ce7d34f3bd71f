package jwt

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Sign signs claims with HS256.
func (m *implManager) Sign(claims Claims) (string, error) {
	if len(m.secretKey) == 0 {
		return "", ErrMissingSecret
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("jwt: sign token: %w", err)
	}
	return signed, nil
}

// Verify verifies tokenString and returns its claims.
func (m *implManager) Verify(tokenString string) (Claims, error) {
	claims := Claims{}
	_, err := m.parser.ParseWithClaims(tokenString, claims, m.keyFunc)
	if err != nil {
		if onlyExpiredError(err) {
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if hasAudience(claims) {
		return nil, fmt.Errorf("%w: unexpected audience %v", ErrInvalidToken, claims[ClaimAudience])
	}
	return claims, nil
}

func (m *implManager) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	if len(m.secretKey) == 0 {
		return nil, ErrMissingSecret
	}
	return m.secretKey, nil
}

// hasAudience reports whether claims carry a non-empty aud. No audience is
// ever configured, so such a token cannot be meant for this service. Empty
// values (null, "", 0, false, [], {}) count as absent.
func hasAudience(claims Claims) bool {
	switch v := claims[ClaimAudience].(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	case float64:
		return v != 0
	case []any:
		return len(v) > 0
	case []string:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}

// onlyExpiredError reports whether err is an expiry failure and nothing else.
// The parser only validates claims after the signature checks out, so an
// expired result always refers to an authentic token.
func onlyExpiredError(err error) bool {
	if !errors.Is(err, jwt.ErrTokenExpired) {
		return false
	}
	return !errors.Is(err, jwt.ErrTokenMalformed) &&
		!errors.Is(err, jwt.ErrTokenUnverifiable) &&
		!errors.Is(err, jwt.ErrTokenSignatureInvalid) &&
		!errors.Is(err, jwt.ErrTokenNotValidYet) &&
		!errors.Is(err, jwt.ErrTokenUsedBeforeIssued) &&
		!errors.Is(err, jwt.ErrInvalidType)
}
