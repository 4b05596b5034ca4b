package http

import (
	"github.com/gin-gonic/gin"

	"booking-assistant/internal/middleware"
)

// RegisterRoutes maps the assistant endpoints. POST / is kept as an alias
// of /api/v1/chat for existing clients. Calendar-touching routes are rate limited.
func RegisterRoutes(r *gin.Engine, h *handler, mw middleware.Middleware) {
	r.GET("/", h.Status)
	r.POST("/", mw.RateLimit(), h.Chat)

	api := r.Group("/api/v1")
	{
		api.POST("/chat", mw.RateLimit(), h.Chat)
		api.GET("/schedule.ics", mw.RateLimit(), h.ExportSchedule)
	}
}
