package codec

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Encode(ctx context.Context, ip EncodeInput) (EncodeOutput, error)
	Decode(ctx context.Context, ip DecodeInput) (DecodeOutput, error)
}
