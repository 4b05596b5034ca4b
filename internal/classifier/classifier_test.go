package classifier

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"booking-assistant/internal/model"
	pkgLog "booking-assistant/pkg/log"
)

type fakeCompleter struct {
	reply      string
	err        error
	lastSystem string
	lastUser   string
	calls      int
}

func (f *fakeCompleter) Complete(_ context.Context, system, user string) (string, error) {
	f.calls++
	f.lastSystem = system
	f.lastUser = user
	return f.reply, f.err
}

type fakeMetrics struct {
	reasons []string
}

func (f *fakeMetrics) ClassifierFallback(reason string) {
	f.reasons = append(f.reasons, reason)
}

func newTestClassifier(c Completer, m Metrics) *Classifier {
	loc := time.FixedZone("IST", 5*3600+1800)
	fixed := time.Date(2025, 6, 9, 11, 0, 0, 0, loc)
	return New(c, loc, pkgLog.NewNop(), WithMetrics(m), WithClock(func() time.Time { return fixed }))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		reply      string
		wantIntent model.Intent
		wantStart  string
		wantReason string
	}{
		{
			name:       "book with start only",
			reply:      `{"intent": "book_meeting", "start": "2025-06-10T15:00:00", "end": null}`,
			wantIntent: model.IntentBookMeeting,
			wantStart:  "2025-06-10T15:00:00",
		},
		{
			name:       "schedule",
			reply:      `{"intent": "check_schedule", "start": null, "end": null}`,
			wantIntent: model.IntentCheckSchedule,
		},
		{
			name:       "garbage",
			reply:      `<<<not json at all>>>`,
			wantIntent: model.IntentUnknown,
			wantReason: ReasonMalformed,
		},
		{
			name:       "empty",
			reply:      "",
			wantIntent: model.IntentUnknown,
			wantReason: ReasonEmptyResponse,
		},
		{
			name:       "intent outside the set",
			reply:      `{"intent": "order_pizza", "start": "2025-06-10T15:00:00"}`,
			wantIntent: model.IntentUnknown,
			wantReason: ReasonUnknownIntent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer := &fakeCompleter{reply: tt.reply}
			metrics := &fakeMetrics{}
			c := newTestClassifier(completer, metrics)

			got, err := c.Classify(context.Background(), "some message")
			if err != nil {
				t.Fatalf("Classify() unexpected error: %v", err)
			}
			if got.Intent != tt.wantIntent {
				t.Errorf("Intent = %q, want %q", got.Intent, tt.wantIntent)
			}
			if deref(got.Slots.Start) != tt.wantStart {
				t.Errorf("Start = %q, want %q", deref(got.Slots.Start), tt.wantStart)
			}
			if got.Data == nil {
				t.Error("Data must never be nil")
			}

			if tt.wantReason == "" {
				if len(metrics.reasons) != 0 {
					t.Errorf("unexpected fallback %v", metrics.reasons)
				}
				return
			}
			if got.Slots.Start != nil || got.Slots.End != nil || len(got.Data) != 0 {
				t.Errorf("fallback must clear slots and data, got %+v", got)
			}
			if len(metrics.reasons) != 1 || metrics.reasons[0] != tt.wantReason {
				t.Errorf("fallback reasons = %v, want [%s]", metrics.reasons, tt.wantReason)
			}
		})
	}
}

func TestClassify_CompleterError(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("connection refused")}
	c := newTestClassifier(completer, nil)

	_, err := c.Classify(context.Background(), "book tomorrow")
	if !errors.Is(err, ErrCompletion) {
		t.Fatalf("expected ErrCompletion, got %v", err)
	}
}

func TestClassify_Prompt(t *testing.T) {
	completer := &fakeCompleter{reply: `{"intent": "check_schedule"}`}
	c := newTestClassifier(completer, nil)

	if _, err := c.Classify(context.Background(), "what's on tomorrow?"); err != nil {
		t.Fatalf("Classify: %v", err)
	}

	if completer.lastUser != "what's on tomorrow?" {
		t.Errorf("user text not forwarded: %q", completer.lastUser)
	}
	for _, want := range []string{
		"book_meeting", "cancel_meeting", "reschedule_meeting", "check_availability", "check_schedule",
		"null", "ISO 8601",
		"2025-06-09T11:00:00 (Monday)", "Tomorrow: 2025-06-10", "This week: 2025-06-09 to 2025-06-15",
	} {
		if !strings.Contains(completer.lastSystem, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}

func TestBuildTimeContext_Sunday(t *testing.T) {
	sunday := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	got := buildTimeContext(sunday, time.UTC)
	if !strings.Contains(got, "This week: 2025-06-09 to 2025-06-15") {
		t.Errorf("Sunday must close the Monday-based week, got:\n%s", got)
	}
	if !strings.Contains(got, "Timezone: UTC") {
		t.Errorf("missing timezone, got:\n%s", got)
	}
}
