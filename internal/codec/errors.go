package codec

import "errors"

var (
	ErrInvalidBase64 = errors.New("input is not valid standard base64")
	ErrInvalidUTF8   = errors.New("decoded bytes are not valid UTF-8")
)
