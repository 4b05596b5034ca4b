package classifier

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// decode turns untrusted model output into a decoded value. It tries, in order:
// strict JSON, single quotes normalised to double quotes, jsonrepair.
func decode(raw string) (decoded, error) {
	text := stripCodeFence(raw)
	if text == "" {
		return decoded{}, errEmptyOutput
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 {
		return decoded{}, errNoObject
	}
	if end > start {
		text = text[start : end+1]
	} else {
		text = text[start:]
	}

	obj, err := unmarshalObject(text)
	if err != nil {
		obj, err = unmarshalObject(strings.ReplaceAll(text, "'", `"`))
	}
	if err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(text)
		if repairErr != nil {
			return decoded{}, fmt.Errorf("repair: %w", repairErr)
		}
		if obj, err = unmarshalObject(repaired); err != nil {
			return decoded{}, err
		}
	}

	intent, _ := obj[keyIntent].(string)
	return decoded{
		intent: intent,
		start:  optionalString(obj[keyStart]),
		end:    optionalString(obj[keyEnd]),
		data:   obj,
	}, nil
}

func unmarshalObject(text string) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errNoObject
	}
	return obj, nil
}

// optionalString accepts only non-empty strings; null and other JSON types are absent.
func optionalString(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "null") {
		return nil
	}
	return &s
}

// stripCodeFence removes a surrounding ``` or ```json markdown block.
func stripCodeFence(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 && !strings.Contains(text[:nl], "{") {
		text = text[nl+1:]
	} else {
		text = strings.TrimPrefix(text, "json")
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
