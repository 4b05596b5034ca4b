package classifier

import (
	"context"

	"booking-assistant/internal/model"
)

// Completer is the text-completion capability the classifier delegates to.
type Completer interface {
	Complete(ctx context.Context, systemInstruction, userText string) (string, error)
}

// Metrics records classifier fallbacks. Optional.
type Metrics interface {
	ClassifierFallback(reason string)
}

// Classification is the structured result of one classify call.
type Classification struct {
	Intent model.Intent
	Slots  model.RawSlots
	Data   map[string]any // decoded model output, echoed to the caller
}

// decoded is the successful variant of decoding the model output.
type decoded struct {
	intent string
	start  *string
	end    *string
	data   map[string]any
}
