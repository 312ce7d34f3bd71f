package http

import (
	"context"
	"errors"
	"time"

	"security-toolbox/internal/token"
	"security-toolbox/pkg/response"

	"github.com/gin-gonic/gin"
)

// Generate godoc
// @Summary Generate a JWT
// @Description Signs the payload with HS256 and sets exp to now plus expiration_minutes.
// @Description A caller supplied exp is replaced.
// @Tags JWT
// @Accept json
// @Produce json
// @Param body body generateReq true "Claims and lifetime"
// @Success 200 {object} generateResp
// @Failure 400 {object} response.DetailResp "Error al generar el token JWT"
// @Failure 422 {object} response.DetailResp "Missing or invalid fields"
// @Router /jwt/generate [post]
func (h Handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	o, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.token.delivery.http.Generate: %v", err)
		if errors.Is(err, token.ErrGenerateFailed) {
			h.reportGenerateFailure(ctx, err)
		}
		response.ErrorWithMap(c, err, errMap, h.d)
		return
	}

	response.OK(c, h.newGenerateResp(o))
}

// Validate godoc
// @Summary Validate a JWT
// @Description Verifies signature and expiry and returns the decoded claims.
// @Tags JWT
// @Produce json
// @Param token query string true "Compact JWT"
// @Success 200 {object} validateResp
// @Failure 400 {object} response.DetailResp "Token has expired | Invalid token"
// @Failure 422 {object} response.DetailResp "Missing parameter"
// @Router /jwt/validate [get]
func (h Handler) Validate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processValidateRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	o, err := h.uc.Validate(ctx, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errMap, h.d)
		return
	}

	response.OK(c, h.newValidateResp(o))
}

const reportTimeout = 30 * time.Second

// reportGenerateFailure sends a signing fault to Discord without holding up
// the response.
func (h Handler) reportGenerateFailure(ctx context.Context, err error) {
	if h.d == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), reportTimeout)
	go func() {
		defer cancel()
		if sendErr := h.d.SendError(ctx, reportGenerateTitle, msgGenerateFailed, err); sendErr != nil {
			h.l.Warnf(ctx, "internal.token.delivery.http.reportGenerateFailure.SendError: %v", sendErr)
		}
	}()
}
