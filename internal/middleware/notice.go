package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/go-petr/fund-manager/internal/notice"
)

// Notices stores a fresh notification collector in the request context, so
// that handlers can return the notifications raised while serving it.
func Notices() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := notice.WithCollector(c.Request.Context(), &notice.Collector{})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
