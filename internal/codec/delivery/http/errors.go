package http

import (
	"security-toolbox/internal/codec"
	"security-toolbox/pkg/errors"
	"security-toolbox/pkg/response"
)

const msgInvalidBase64 = "Invalid base64 encoded text"

var errInvalidBase64 = errors.NewBadRequestHTTPError(msgInvalidBase64)

// Both decode failures collapse to one client message.
var errMap = response.ErrorMapping{
	codec.ErrInvalidBase64: errInvalidBase64,
	codec.ErrInvalidUTF8:   errInvalidBase64,
}
