package response

import "security-toolbox/pkg/errors"

// DetailResp is the body of every non-2xx response. Detail is a string for
// client and server errors and a list of *errors.ValidationError for 422s.
type DetailResp struct {
	Detail any `json:"detail"`
}

// ErrorMapping maps domain sentinel errors to the HTTP error reported for them.
type ErrorMapping map[error]*errors.HTTPError
