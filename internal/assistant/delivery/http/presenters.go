package http

import (
	"booking-assistant/internal/assistant"
	"booking-assistant/internal/model"
)

// --- Request DTOs ---

type chatReq struct {
	Message string         `json:"message" binding:"required,max=2000"`
	Context map[string]any `json:"context"`
}

func (r chatReq) validate() error {
	if isBlank(r.Message) {
		return errEmptyMessage
	}
	return nil
}

func (r chatReq) toInput() assistant.ChatInput {
	return assistant.ChatInput{
		Message: r.Message,
		Context: model.ConversationContext(r.Context),
	}
}

// ---

type scheduleReq struct {
	Days int `form:"days" binding:"omitempty,min=1,max=14"`
}

func (r scheduleReq) validate() error { return nil }

func (r scheduleReq) toInput() assistant.ExportScheduleInput {
	return assistant.ExportScheduleInput{Days: r.Days}
}

// --- Response DTOs ---

type chatResp struct {
	Reply  string         `json:"reply"`
	Intent string         `json:"intent"`
	Data   map[string]any `json:"data"`
}

func (h *handler) newChatResp(out assistant.ChatOutput) chatResp {
	data := out.Data
	if data == nil {
		data = map[string]any{}
	}
	return chatResp{
		Reply:  out.Reply,
		Intent: out.Intent.String(),
		Data:   data,
	}
}

type statusResp struct {
	Status string `json:"status"`
}
