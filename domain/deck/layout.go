package deck

import "strings"

// DefaultLayoutIndex is the fallback slide layout when no name matches,
// conventionally a blank-with-title layout in stock templates.
const DefaultLayoutIndex = 5

// SelectLayout picks the slide layout to use when padding a deck with blank
// slides. The first layout whose name contains "blank" or "title"
// (case-insensitive) wins; otherwise fallbackIndex is used, clamped into
// range. An empty layout list yields 0.
func SelectLayout(names []string, fallbackIndex int) int {
	if len(names) == 0 {
		return 0
	}

	for idx, name := range names {
		lower := strings.ToLower(name)
		if strings.Contains(lower, "blank") || strings.Contains(lower, "title") {
			return idx
		}
	}

	if fallbackIndex < 0 {
		fallbackIndex = 0
	}
	if fallbackIndex >= len(names) {
		fallbackIndex = len(names) - 1
	}
	return fallbackIndex
}
