// Package httperr renders error replies as
// {"error":{"message":...},"detail":...}.
package httperr

import (
	"net/http"

	"hotel-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Message struct {
	Message string `json:"message"`
}

type Response struct {
	Status int     `json:"-"`
	Error  Message `json:"error"`
	Detail any     `json:"detail,omitempty"`
}

// Reason is the detail attached to rejected input.
type Reason struct {
	Reason string `json:"reason"`
}

func New(status int, msg string, detail any) Response {
	return Response{Status: status, Error: Message{Message: msg}, Detail: detail}
}

// AbortWithError keeps err on the context for the logging middleware. A nil
// err is replaced by the message so nothing reaches the log as <nil>.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := New(status, msg, detail)
	// A pointer, so c.Error keeps the public type and Meta instead of re-wrapping.
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortInvalid is the 400 reply for requests that fail binding or validation.
func AbortInvalid(c *gin.Context, err error) {
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request", Reason{Reason: err.Error()})
}
