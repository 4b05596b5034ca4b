package http

import (
	"time"

	"booking-assistant/internal/assistant"
	"booking-assistant/pkg/log"
)

type handler struct {
	l   log.Logger
	uc  assistant.UseCase
	now func() time.Time
}

// New creates the HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		now: time.Now,
	}
}
