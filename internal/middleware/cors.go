package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Cors allows browser clients from the configured origins, or any origin
// when none are configured.
func (m Middleware) Cors() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(m.cfg.AllowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = m.cfg.AllowedOrigins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", HeaderRequestID)
	cfg.ExposeHeaders = []string{HeaderRequestID, "Content-Disposition"}
	cfg.MaxAge = 12 * time.Hour
	return cors.New(cfg)
}
