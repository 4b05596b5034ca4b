package assistant

import "errors"

var (
	ErrEmptyMessage         = errors.New("message is empty")
	ErrInvalidDays          = errors.New("days out of range")
	ErrAssistantUnavailable = errors.New("language model unavailable")
	ErrCalendarUnavailable  = errors.New("calendar unavailable")
)
