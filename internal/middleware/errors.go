package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"catalog-service/pkg/response"
)

// ErrorHandler is the terminal error-handling stage of the request
// pipeline. Handlers and middlewares attach failures with c.Error and
// never write error bodies themselves; after the chain finishes, this
// middleware classifies the last attached error, logs it, and writes the
// normalized JSON envelope exactly once.
func (m Middleware) ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		ctx := c.Request.Context()
		status, resp := response.Classify(err)
		if status >= http.StatusInternalServerError {
			m.l.Errorf(ctx, "%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		} else {
			m.l.Warnf(ctx, "%s %s rejected (%d): %v", c.Request.Method, c.Request.URL.Path, status, err)
		}

		// A handler that already wrote a body owns the response.
		if c.Writer.Written() {
			return
		}
		c.JSON(status, resp)
	}
}

// Recovery converts handler panics into the same normalized 500 envelope
// instead of gin's default plain-text response.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				ctx := c.Request.Context()
				m.l.Errorf(ctx, "panic recovered: %v\n%s", r, debug.Stack())

				if c.Writer.Written() {
					c.Abort()
					return
				}
				status, resp := response.Classify(fmt.Errorf("panic: %v", r))
				c.AbortWithStatusJSON(status, resp)
			}
		}()
		c.Next()
	}
}
