package genai

import (
	"fmt"
	"strings"
)

// BuildPrompt constructs the instruction sent to the model for a topic.
// The response shape is enforced separately by the declared response schema;
// the prompt restates it so the model fills every field with usable text.
func BuildPrompt(topic string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "List the major historical events related to %q in chronological order.\n\n", topic)
	b.WriteString("For each event provide:\n")
	b.WriteString("- year: the year it happened, as text. Prefix years before the common era with \"BC\" (e.g. \"BC 108\").\n")
	b.WriteString("- title: a short name for the event.\n")
	b.WriteString("- description: a one or two sentence summary.\n")
	b.WriteString("- details: a longer narrative explanation of the event and its significance.\n")
	b.WriteString("- link: a reference URL for further reading, if a well-known one exists.\n")
	b.WriteString("\nReturn ONLY a JSON array of event objects, oldest event first.\n")

	return b.String()
}
