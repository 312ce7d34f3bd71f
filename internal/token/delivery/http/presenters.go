package http

import "security-toolbox/internal/token"

// --- Request DTOs ---

// generateReq documents the body of POST /jwt/generate. The body is decoded
// by processGenerateRequest, which reports each bad field separately.
type generateReq struct {
	Payload           map[string]any `json:"payload" swaggertype:"object"`
	ExpirationMinutes int64          `json:"expiration_minutes" example:"10"`
}

func (r generateReq) toInput() token.GenerateInput {
	return token.GenerateInput{
		Payload:           r.Payload,
		ExpirationMinutes: r.ExpirationMinutes,
	}
}

type validateReq struct {
	Token string
}

func (r validateReq) toInput() token.ValidateInput {
	return token.ValidateInput{Token: r.Token}
}

// --- Response DTOs ---

type generateResp struct {
	JWTToken string `json:"jwt_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJleHAiOjE3Njg0NzkwMDAsInVzZXJfaWQiOjF9.signature"`
}

func (h Handler) newGenerateResp(o token.GenerateOutput) generateResp {
	return generateResp{JWTToken: o.Token}
}

type validateResp struct {
	Valid   bool           `json:"valid" example:"true"`
	Payload map[string]any `json:"payload" swaggertype:"object"`
}

func (h Handler) newValidateResp(o token.ValidateOutput) validateResp {
	return validateResp{Valid: true, Payload: o.Claims}
}
