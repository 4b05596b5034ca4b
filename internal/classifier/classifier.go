package classifier

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"booking-assistant/internal/model"
)

// Classify determines the user's intent and raw start/end guesses.
// Malformed model output is never an error: it yields model.IntentUnknown.
// Only a failure to reach the completer is returned.
func (c *Classifier) Classify(ctx context.Context, text string) (Classification, error) {
	system := c.systemPrompt()

	raw, err := c.completer.Complete(ctx, system, text)
	if err != nil {
		return Classification{}, fmt.Errorf("%s: %w: %w", LogPrefixClassify, ErrCompletion, err)
	}

	d, err := decode(raw)
	if err != nil {
		reason := ReasonMalformed
		if errors.Is(err, errEmptyOutput) {
			reason = ReasonEmptyResponse
		}
		c.fallback(ctx, reason, err)
		return unknown(), nil
	}

	intent := model.ParseIntent(d.intent)
	if intent == model.IntentUnknown {
		c.fallback(ctx, ReasonUnknownIntent, fmt.Errorf("intent %q", d.intent))
		return unknown(), nil
	}

	c.l.Infof(ctx, "%s: classified as %s", LogPrefixClassify, intent)
	return Classification{
		Intent: intent,
		Slots:  model.RawSlots{Start: d.start, End: d.end},
		Data:   d.data,
	}, nil
}

func (c *Classifier) fallback(ctx context.Context, reason string, err error) {
	c.l.Warnf(ctx, "%s: falling back to %s (%s): %v", LogPrefixClassify, model.IntentUnknown, reason, err)
	if c.metrics != nil {
		c.metrics.ClassifierFallback(reason)
	}
}

func (c *Classifier) systemPrompt() string {
	intents := make([]string, 0, len(model.ClassifiableIntents))
	for _, i := range model.ClassifiableIntents {
		intents = append(intents, "- "+i.String())
	}
	return fmt.Sprintf(PromptClassifierSystem, buildTimeContext(c.now(), c.loc), strings.Join(intents, "\n"))
}

func unknown() Classification {
	return Classification{Intent: model.IntentUnknown, Data: map[string]any{}}
}
