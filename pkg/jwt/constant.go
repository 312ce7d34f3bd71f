package jwt

const (
	// Algorithm is the only signing algorithm issued and accepted.
	Algorithm = "HS256"

	// ClaimExpiration is the registered claim holding the expiry as epoch seconds.
	ClaimExpiration = "exp"

	// ClaimAudience is rejected whenever it is non-empty.
	ClaimAudience = "aud"
)
