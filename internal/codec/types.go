package codec

type EncodeInput struct {
	Text string
}

type EncodeOutput struct {
	EncodedText string
}

type DecodeInput struct {
	EncodedText string
}

type DecodeOutput struct {
	DecodedText string
}
