package classifier

import (
	"time"

	pkgLog "booking-assistant/pkg/log"
)

// Classifier maps free text to an intent and raw time slots.
type Classifier struct {
	completer Completer
	metrics   Metrics
	loc       *time.Location
	now       func() time.Time
	l         pkgLog.Logger
}

// Option customises a Classifier.
type Option func(*Classifier)

// WithMetrics records fallbacks on m.
func WithMetrics(m Metrics) Option {
	return func(c *Classifier) { c.metrics = m }
}

// WithClock overrides time.Now for the prompt's reference time.
func WithClock(now func() time.Time) Option {
	return func(c *Classifier) { c.now = now }
}

// New creates a new Classifier
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(completer Completer, loc *time.Location, l pkgLog.Logger, opts ...Option) *Classifier {
	if loc == nil {
		loc = time.UTC
	}
	c := &Classifier{
		completer: completer,
		loc:       loc,
		now:       time.Now,
		l:         l,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
