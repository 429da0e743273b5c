package timeline

import (
	"sort"
	"strings"
)

// bcMarker is the only era token the comparator understands. Matching is
// case-sensitive: "bc" or "B.C." do not negate.
const bcMarker = "BC"

// EffectiveYear converts a free-form year label into a signed numeric value
// for ordering. All digits in the string are concatenated into a magnitude,
// which is negated when the label contains the BC marker. A label with no
// digits yields 0. Ranges like "1592-1598" collapse to the concatenated
// digits; richer date parsing is deliberately not attempted.
func EffectiveYear(year string) int {
	n := 0
	for _, r := range year {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
		}
	}
	if strings.Contains(year, bcMarker) {
		return -n
	}
	return n
}

// Sort returns a new slice with events ordered ascending by effective year.
// The sort is stable, so events with equal effective years keep their input
// order. The input slice is not modified.
func Sort(events []Event) []Event {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return EffectiveYear(sorted[i].Year) < EffectiveYear(sorted[j].Year)
	})
	return sorted
}
