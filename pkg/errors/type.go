package errors

// HTTPError is an error the API reports verbatim: StatusCode is the
// response status and Detail is the message placed in {"detail": ...}.
type HTTPError struct {
	StatusCode int
	Detail     string
}

// ValidationError describes one rejected request input.
type ValidationError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationErrorCollector collects the validation errors of one request.
type ValidationErrorCollector struct {
	errors []*ValidationError
}
