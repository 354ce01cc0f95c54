// Package web defines common components for a web application.
package web

import (
	"github.com/gin-gonic/gin"

	"github.com/go-petr/fund-manager/internal/notice"
)

// Response holds the common response type for all APIs.
type Response struct {
	Data          any                   `json:"data,omitempty"`
	Error         string                `json:"error,omitempty"`
	Violations    any                   `json:"violations,omitempty"`
	Prompt        *notice.Prompt        `json:"prompt,omitempty"`
	Notifications []notice.Notification `json:"notifications,omitempty"`
}

// Error wraps a given err into json friendly response.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// JSON writes res with the notifications raised while serving the request.
func JSON(gctx *gin.Context, code int, res Response) {
	if c, ok := notice.CollectorFromContext(gctx.Request.Context()); ok {
		res.Notifications = c.Items()
	}

	gctx.JSON(code, res)
}
