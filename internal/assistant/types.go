package assistant

import (
	"time"

	"booking-assistant/internal/model"
	"booking-assistant/pkg/gcalendar"
)

// --- UseCase Inputs ---

type ChatInput struct {
	Message string
	Context model.ConversationContext // client-owned, logged only
}

type ExportScheduleInput struct {
	Days int // 0 means the configured default
}

// --- UseCase Outputs ---

type ChatOutput struct {
	Reply  string
	Intent model.Intent
	Data   map[string]any // classifier output, resent by the client as next turn's context
}

type ExportScheduleOutput struct {
	From   time.Time
	To     time.Time
	Events []gcalendar.Event
}
