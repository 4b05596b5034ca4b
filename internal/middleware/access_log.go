package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

const routeUnmatched = "unmatched"

// AccessLog logs one line per request and feeds the HTTP metrics.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = routeUnmatched
		}
		status := c.Writer.Status()

		ctx := c.Request.Context()
		switch {
		case status >= 500:
			m.l.Errorf(ctx, "%s %s %d %s ip=%s", c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP())
		case status >= 400:
			m.l.Warnf(ctx, "%s %s %d %s ip=%s", c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP())
		default:
			m.l.Infof(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, elapsed)
		}

		if m.metrics != nil {
			m.metrics.ObserveHTTP(c.Request.Method, route, status, elapsed)
		}
	}
}
