package timeline

import "fmt"

// Event represents a single historical event on the timeline.
type Event struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Details     string `json:"details"`
	Link        string `json:"link,omitempty"`
}

// Validate checks that all required fields are present. Link is optional.
func (e Event) Validate() error {
	if e.Year == "" {
		return fmt.Errorf("event missing required field: year")
	}
	if e.Title == "" {
		return fmt.Errorf("event %q missing required field: title", e.Year)
	}
	if e.Description == "" {
		return fmt.Errorf("event %q missing required field: description", e.Title)
	}
	if e.Details == "" {
		return fmt.Errorf("event %q missing required field: details", e.Title)
	}
	return nil
}
