package http

import (
	"security-toolbox/internal/token"
	"security-toolbox/pkg/errors"
	"security-toolbox/pkg/response"
)

const (
	msgGenerateFailed = "Error al generar el token JWT"
	msgTokenExpired   = "Token has expired"
	msgInvalidToken   = "Invalid token"

	reportGenerateTitle = "JWT generation failed"
)

var (
	errGenerateFailed = errors.NewBadRequestHTTPError(msgGenerateFailed)
	errTokenExpired   = errors.NewBadRequestHTTPError(msgTokenExpired)
	errInvalidToken   = errors.NewBadRequestHTTPError(msgInvalidToken)
)

var errMap = response.ErrorMapping{
	token.ErrGenerateFailed: errGenerateFailed,
	token.ErrTokenExpired:   errTokenExpired,
	token.ErrInvalidToken:   errInvalidToken,
}
