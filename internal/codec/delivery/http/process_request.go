package http

import (
	"security-toolbox/pkg/errors"

	"github.com/gin-gonic/gin"
)

const (
	queryText        = "text"
	queryEncodedText = "encoded_text"
)

// An empty value is a valid input for both endpoints; only an absent
// parameter is rejected.
func (h Handler) processEncodeRequest(c *gin.Context) (encodeReq, error) {
	text, ok := c.GetQuery(queryText)
	if !ok {
		return encodeReq{}, errors.NewMissingFieldError(errors.LocQuery, queryText)
	}
	return encodeReq{Text: text}, nil
}

func (h Handler) processDecodeRequest(c *gin.Context) (decodeReq, error) {
	encoded, ok := c.GetQuery(queryEncodedText)
	if !ok {
		return decodeReq{}, errors.NewMissingFieldError(errors.LocQuery, queryEncodedText)
	}
	return decodeReq{EncodedText: encoded}, nil
}
