package token

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Generate(ctx context.Context, ip GenerateInput) (GenerateOutput, error)
	Validate(ctx context.Context, ip ValidateInput) (ValidateOutput, error)
}
