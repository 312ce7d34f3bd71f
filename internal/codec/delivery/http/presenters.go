package http

import "security-toolbox/internal/codec"

// --- Request DTOs ---

type encodeReq struct {
	Text string
}

func (r encodeReq) toInput() codec.EncodeInput {
	return codec.EncodeInput{Text: r.Text}
}

type decodeReq struct {
	EncodedText string
}

func (r decodeReq) toInput() codec.DecodeInput {
	return codec.DecodeInput{EncodedText: r.EncodedText}
}

// --- Response DTOs ---

type encodeResp struct {
	EncodedText string `json:"encoded_text" example:"aG9sYQ=="`
}

func (h Handler) newEncodeResp(o codec.EncodeOutput) encodeResp {
	return encodeResp{EncodedText: o.EncodedText}
}

type decodeResp struct {
	DecodedText string `json:"decoded_text" example:"hola"`
}

func (h Handler) newDecodeResp(o codec.DecodeOutput) decodeResp {
	return decodeResp{DecodedText: o.DecodedText}
}
