package errors

import "net/http"

const (
	StatusUnprocessable = http.StatusUnprocessableEntity // 422
	StatusInternal      = http.StatusInternalServerError // 500
)

const (
	// MessageInternal is the detail sent for any error the API did not anticipate.
	MessageInternal = "Internal Server Error"
)

// Validation error kinds, reported in the "type" field of a 422 detail item.
const (
	TypeMissing    = "value_error.missing"
	TypeJSONDecode = "value_error.jsondecode"
	TypeInteger    = "type_error.integer"
	TypeDict       = "type_error.dict"
)

// Validation messages paired with the kinds above.
const (
	MsgFieldRequired = "field required"
	MsgInvalidJSON   = "invalid JSON body"
	MsgNotInteger    = "value is not a valid integer"
	MsgNotDict       = "value is not a valid dict"
)

// Request locations used as the first element of ValidationError.Loc.
const (
	LocQuery = "query"
	LocBody  = "body"
)
