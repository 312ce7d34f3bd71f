package http

import (
	"bytes"
	"encoding/json"
	"io"
	"math/big"

	"security-toolbox/pkg/errors"

	"github.com/gin-gonic/gin"
)

const (
	fieldPayload           = "payload"
	fieldExpirationMinutes = "expiration_minutes"
	queryToken             = "token"
)

// processGenerateRequest decodes the generate body. Every missing or
// ill-typed field is collected so that one 422 lists all of them.
func (h Handler) processGenerateRequest(c *gin.Context) (generateReq, error) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Warnf(ctx, "internal.token.delivery.http.processGenerateRequest.ReadAll: %v", err)
		return generateReq{}, errors.NewValidationError(errors.MsgInvalidJSON, errors.TypeJSONDecode, errors.LocBody)
	}

	var fields map[string]json.RawMessage
	if err := decodeJSON(body, &fields); err != nil || fields == nil {
		if len(bytes.TrimSpace(body)) == 0 {
			return generateReq{}, errors.NewMissingFieldError(errors.LocBody)
		}
		return generateReq{}, errors.NewValidationError(errors.MsgInvalidJSON, errors.TypeJSONDecode, errors.LocBody)
	}

	var (
		req  generateReq
		errs = errors.NewValidationErrorCollector()
	)

	if raw, ok := fields[fieldPayload]; !ok {
		errs.Add(errors.NewMissingFieldError(errors.LocBody, fieldPayload))
	} else if payload, ok := parsePayload(raw); !ok {
		errs.Add(errors.NewValidationError(errors.MsgNotDict, errors.TypeDict, errors.LocBody, fieldPayload))
	} else {
		req.Payload = payload
	}

	if raw, ok := fields[fieldExpirationMinutes]; !ok {
		errs.Add(errors.NewMissingFieldError(errors.LocBody, fieldExpirationMinutes))
	} else if minutes, ok := parseMinutes(raw); !ok {
		errs.Add(errors.NewValidationError(errors.MsgNotInteger, errors.TypeInteger, errors.LocBody, fieldExpirationMinutes))
	} else {
		req.ExpirationMinutes = minutes
	}

	if errs.HasError() {
		return generateReq{}, errs
	}
	return req, nil
}

func (h Handler) processValidateRequest(c *gin.Context) (validateReq, error) {
	tok, ok := c.GetQuery(queryToken)
	if !ok {
		return validateReq{}, errors.NewMissingFieldError(errors.LocQuery, queryToken)
	}
	return validateReq{Token: tok}, nil
}

func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return io.ErrUnexpectedEOF
	}
	return nil
}

// parsePayload accepts a JSON object only; null, arrays and scalars are rejected.
func parsePayload(raw json.RawMessage) (map[string]any, bool) {
	var payload map[string]any
	if err := decodeJSON(raw, &payload); err != nil || payload == nil {
		return nil, false
	}
	return payload, true
}

// parseMinutes accepts a JSON number with no fractional part that fits in
// an int64, so 10 and 10.0 are both 10.
func parseMinutes(raw json.RawMessage) (int64, bool) {
	var n json.Number
	if err := decodeJSON(raw, &n); err != nil {
		return 0, false
	}
	if i, err := n.Int64(); err == nil {
		return i, true
	}
	f, ok := new(big.Float).SetString(n.String())
	if !ok || !f.IsInt() {
		return 0, false
	}
	i, acc := f.Int64()
	if acc != big.Exact {
		return 0, false
	}
	return i, true
}
