package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// NewHTTPError returns a new HTTPError. A zero statusCode means 400.
func NewHTTPError(statusCode int, detail string) *HTTPError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &HTTPError{StatusCode: statusCode, Detail: detail}
}

// NewBadRequestHTTPError returns a 400 carrying detail.
func NewBadRequestHTTPError(detail string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, detail)
}

func (e *HTTPError) Error() string {
	return e.Detail
}

// NewValidationError creates a new validation error for the input at loc.
func NewValidationError(msg, typ string, loc ...string) *ValidationError {
	return &ValidationError{Loc: loc, Msg: msg, Type: typ}
}

// NewMissingFieldError reports a required input that was not supplied.
func NewMissingFieldError(loc ...string) *ValidationError {
	return NewValidationError(MsgFieldRequired, TypeMissing, loc...)
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", strings.Join(e.Loc, "."), e.Msg)
}

// NewValidationErrorCollector creates a new validation error collector.
func NewValidationErrorCollector() *ValidationErrorCollector {
	return &ValidationErrorCollector{errors: make([]*ValidationError, 0)}
}

// Add appends err and returns the collector for chaining.
func (c *ValidationErrorCollector) Add(err *ValidationError) *ValidationErrorCollector {
	c.errors = append(c.errors, err)
	return c
}

func (c *ValidationErrorCollector) HasError() bool {
	return len(c.errors) > 0
}

func (c *ValidationErrorCollector) Errors() []*ValidationError {
	return c.errors
}

func (c *ValidationErrorCollector) Error() string {
	msgs := make([]string, 0, len(c.errors))
	for _, err := range c.errors {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, ", ")
}
