package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"hotel-reservation/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

var internalError = httperr.New(http.StatusInternalServerError, "Internal server error", nil)

// ErrorHandler renders the error recorded by httperr.AbortWithError once the
// handler chain has returned without writing a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.Writer.Written() {
			return
		}

		if resp, ok := lastPublicResponse(c.Errors); ok {
			c.JSON(resp.Status, resp)
			return
		}

		// An aborted status without a recorded response, e.g. 429 or 204.
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}

		if len(c.Errors) > 0 {
			slog.Error("unhandled handler error",
				"path", c.FullPath(),
				"request_id", GetRequestID(c),
				"errors", c.Errors.String(),
			)
		}
		c.JSON(http.StatusInternalServerError, internalError)
	}
}

func lastPublicResponse(errors []*gin.Error) (httperr.Response, bool) {
	for i := len(errors) - 1; i >= 0; i-- {
		if !errors[i].IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := errors[i].Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"error", rec,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
					"stack", string(debug.Stack()),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, internalError)
			}
		}()
		c.Next()
	}
}
