package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"booking-assistant/internal/assistant"
	"booking-assistant/pkg/response"
)

const (
	msgAssistantUnavailable = "assistant is temporarily unavailable, please try again"
	msgCalendarUnavailable  = "calendar is temporarily unavailable, please try again"
)

var errEmptyMessage = errors.New("message must not be empty")

// writeError translates use-case errors into HTTP responses. Upstream
// failures become 502 without echoing the cause.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, assistant.ErrEmptyMessage), errors.Is(err, assistant.ErrInvalidDays):
		response.Error(c, err, nil)
	case errors.Is(err, assistant.ErrAssistantUnavailable):
		response.BadGateway(c, msgAssistantUnavailable)
	case errors.Is(err, assistant.ErrCalendarUnavailable):
		response.BadGateway(c, msgCalendarUnavailable)
	default:
		response.InternalError(c, err)
	}
}
