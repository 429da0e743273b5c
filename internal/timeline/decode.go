package timeline

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Decode parses model output into a validated event list. The text is
// trimmed and markdown code fences are stripped before unmarshalling, since
// models occasionally wrap JSON output in fences even when asked not to.
// Any event missing a required field fails the whole decode; no partial
// list is ever returned.
func Decode(raw string) ([]Event, error) {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		// Remove opening fence (with optional language tag)
		if idx := strings.Index(cleaned, "\n"); idx >= 0 {
			cleaned = cleaned[idx+1:]
		}
		// Remove closing fence
		if idx := strings.LastIndex(cleaned, "```"); idx >= 0 {
			cleaned = cleaned[:idx]
		}
		cleaned = strings.TrimSpace(cleaned)
	}

	var events []Event
	if err := json.Unmarshal([]byte(cleaned), &events); err != nil {
		return nil, fmt.Errorf("parse timeline JSON: %w", err)
	}

	for i, e := range events {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
	}

	return events, nil
}
