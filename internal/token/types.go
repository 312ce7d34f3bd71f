package token

// GenerateInput is the input of UseCase.Generate.
type GenerateInput struct {
	// Payload becomes the token claims. Its "exp" key, if any, is replaced.
	Payload map[string]any
	// ExpirationMinutes is added to the current time. It is not range checked,
	// so zero or negative values produce an already expired token.
	ExpirationMinutes int64
}

type GenerateOutput struct {
	Token string
}

type ValidateInput struct {
	Token string
}

// ValidateOutput carries the decoded claims, exp included.
type ValidateOutput struct {
	Claims map[string]any
}
