package response

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"runtime"

	"security-toolbox/pkg/discord"
	"security-toolbox/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK sends 200 with data as the whole JSON body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func parseError(err error, c *gin.Context, d discord.IDiscord) (int, DetailResp) {
	var (
		httpErr   *errors.HTTPError
		valErr    *errors.ValidationError
		collector *errors.ValidationErrorCollector
	)
	switch {
	case stderrors.As(err, &httpErr):
		return httpErr.StatusCode, DetailResp{Detail: httpErr.Detail}
	case stderrors.As(err, &collector):
		return errors.StatusUnprocessable, DetailResp{Detail: collector.Errors()}
	case stderrors.As(err, &valErr):
		return errors.StatusUnprocessable, DetailResp{Detail: []*errors.ValidationError{valErr}}
	default:
		if d != nil && err != nil {
			sendDiscordMessageAsync(d, buildInternalServerErrorDataForReportBug(c, err.Error(), captureStackTrace()))
		}
		return errors.StatusInternal, DetailResp{Detail: errors.MessageInternal}
	}
}

// Error sends the response for err. Unknown errors become 500s and are
// reported to d when it is non-nil.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	c.JSON(parseError(err, c, d))
}

// HttpError sends the response for an *errors.HTTPError.
func HttpError(c *gin.Context, err *errors.HTTPError) {
	c.JSON(parseError(err, c, nil))
}

// ErrorWithMap looks up err in eMap and sends the mapped HTTPError, else Error.
func ErrorWithMap(c *gin.Context, err error, eMap ErrorMapping, d discord.IDiscord) {
	for target, httpErr := range eMap {
		if stderrors.Is(err, target) {
			HttpError(c, httpErr)
			return
		}
	}
	Error(c, err, d)
}

// PanicError sends a 500 for a recovered panic value, whatever its type.
func PanicError(c *gin.Context, rec any, d discord.IDiscord) {
	err, ok := rec.(error)
	if !ok {
		err = fmt.Errorf("%v", rec)
	}
	if d != nil {
		sendDiscordMessageAsync(d, buildInternalServerErrorDataForReportBug(c, "panic: "+err.Error(), captureStackTrace()))
	}
	c.JSON(errors.StatusInternal, DetailResp{Detail: errors.MessageInternal})
}

func captureStackTrace() []string {
	var pcs [DefaultStackTraceDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	var stackTrace []string
	for {
		frame, more := frames.Next()
		stackTrace = append(stackTrace, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		if !more {
			break
		}
	}
	return stackTrace
}
