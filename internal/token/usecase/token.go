package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"

	"security-toolbox/internal/token"
	pkgJWT "security-toolbox/pkg/jwt"
)

const secondsPerMinute = 60

var errExpirationOverflow = errors.New("expiration out of range")

// Generate signs a copy of the payload with exp set to now plus the given
// number of minutes, in epoch seconds.
func (uc *usecase) Generate(ctx context.Context, ip token.GenerateInput) (token.GenerateOutput, error) {
	exp, err := uc.expiresAt(ip.ExpirationMinutes)
	if err != nil {
		uc.l.Errorf(ctx, "internal.token.usecase.Generate.expiresAt: %v", err)
		return token.GenerateOutput{}, fmt.Errorf("%w: %v", token.ErrGenerateFailed, err)
	}

	claims := make(pkgJWT.Claims, len(ip.Payload)+1)
	for k, v := range ip.Payload {
		claims[k] = v
	}
	claims[pkgJWT.ClaimExpiration] = exp

	signed, err := uc.jwtMgr.Sign(claims)
	if err != nil {
		uc.l.Errorf(ctx, "internal.token.usecase.Generate.Sign: %v", err)
		return token.GenerateOutput{}, fmt.Errorf("%w: %v", token.ErrGenerateFailed, err)
	}

	return token.GenerateOutput{Token: signed}, nil
}

// Validate verifies the token and returns its claims.
func (uc *usecase) Validate(ctx context.Context, ip token.ValidateInput) (token.ValidateOutput, error) {
	claims, err := uc.jwtMgr.Verify(ip.Token)
	if err != nil {
		uc.l.Debugf(ctx, "internal.token.usecase.Validate.Verify: %v", err)
		if errors.Is(err, pkgJWT.ErrTokenExpired) {
			return token.ValidateOutput{}, token.ErrTokenExpired
		}
		return token.ValidateOutput{}, token.ErrInvalidToken
	}

	return token.ValidateOutput{Claims: claims}, nil
}

func (uc *usecase) expiresAt(minutes int64) (int64, error) {
	if minutes > math.MaxInt64/secondsPerMinute || minutes < math.MinInt64/secondsPerMinute {
		return 0, fmt.Errorf("%w: %d minutes", errExpirationOverflow, minutes)
	}
	now := uc.now().UTC().Unix()
	delta := minutes * secondsPerMinute
	exp := now + delta
	if (delta > 0 && exp < now) || (delta < 0 && exp > now) {
		return 0, fmt.Errorf("%w: %d minutes", errExpirationOverflow, minutes)
	}
	return exp, nil
}
