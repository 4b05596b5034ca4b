package classifier

// Log prefixes
const (
	LogPrefixClassify = "internal.classifier.Classify"
)

// Fallback reasons, used as metric labels
const (
	ReasonEmptyResponse = "empty_response"
	ReasonMalformed     = "malformed_output"
	ReasonUnknownIntent = "unknown_intent"
)

const (
	dateFormatISO = "2006-01-02"

	keyIntent = "intent"
	keyStart  = "start"
	keyEnd    = "end"
)

// PromptClassifierSystem is filled with the time context and the intent list.
const PromptClassifierSystem = `You are an AI assistant that extracts meeting booking details from a chat message.

%s
Classify the user's message into exactly one intent from this list:
%s
Extract the requested meeting start and end time as ISO 8601 date-times in the timezone above
(for example 2006-01-02T15:04:05). Resolve relative phrases such as "tomorrow at 3pm" against
the current time. If a value is not mentioned, use null.

Respond with a single JSON object and nothing else:
{"intent": "<intent>", "start": "<ISO 8601 or null>", "end": "<ISO 8601 or null>"}`

// TimeContextTemplate is the reference-time block of the system prompt.
const TimeContextTemplate = `CURRENT TIME CONTEXT:
- Now: %s (%s)
- Timezone: %s
- Today: %s
- Tomorrow: %s
- This week: %s to %s (Monday to Sunday)
`
