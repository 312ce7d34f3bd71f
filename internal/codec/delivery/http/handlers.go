package http

import (
	"security-toolbox/pkg/response"

	"github.com/gin-gonic/gin"
)

// Encode godoc
// @Summary Encode text to Base64
// @Description Encodes the given text (UTF-8) using standard padded Base64.
// @Tags Base64
// @Produce json
// @Param text query string true "Text to encode" example(hola)
// @Success 200 {object} encodeResp
// @Failure 422 {object} response.DetailResp "Missing parameter"
// @Router /encode_base64 [get]
func (h Handler) Encode(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEncodeRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	o, err := h.uc.Encode(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.codec.delivery.http.Encode: %v", err)
		response.Error(c, err, h.d)
		return
	}

	response.OK(c, h.newEncodeResp(o))
}

// Decode godoc
// @Summary Decode Base64 text
// @Description Decodes standard padded Base64 and returns the UTF-8 text.
// @Tags Base64
// @Produce json
// @Param encoded_text query string true "Base64 text to decode" example(aG9sYQ==)
// @Success 200 {object} decodeResp
// @Failure 400 {object} response.DetailResp "Invalid base64 encoded text"
// @Failure 422 {object} response.DetailResp "Missing parameter"
// @Router /decode_base64 [get]
func (h Handler) Decode(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDecodeRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	o, err := h.uc.Decode(ctx, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errMap, h.d)
		return
	}

	response.OK(c, h.newDecodeResp(o))
}
