package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	"security-toolbox/internal/codec"
)

// Encode returns the padded standard base64 form of the text's UTF-8 bytes.
func (uc *usecase) Encode(ctx context.Context, ip codec.EncodeInput) (codec.EncodeOutput, error) {
	return codec.EncodeOutput{
		EncodedText: base64.StdEncoding.EncodeToString([]byte(ip.Text)),
	}, nil
}

// Decode reverses Encode. Input that is not padded standard base64, or that
// decodes to bytes which are not UTF-8, is rejected.
func (uc *usecase) Decode(ctx context.Context, ip codec.DecodeInput) (codec.DecodeOutput, error) {
	raw, err := base64.StdEncoding.DecodeString(ip.EncodedText)
	if err != nil {
		uc.l.Debugf(ctx, "internal.codec.usecase.Decode.DecodeString: %v", err)
		return codec.DecodeOutput{}, fmt.Errorf("%w: %v", codec.ErrInvalidBase64, err)
	}
	if !utf8.Valid(raw) {
		uc.l.Debugf(ctx, "internal.codec.usecase.Decode: %d decoded bytes are not UTF-8", len(raw))
		return codec.DecodeOutput{}, codec.ErrInvalidUTF8
	}
	return codec.DecodeOutput{DecodedText: string(raw)}, nil
}
