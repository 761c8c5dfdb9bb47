package domain

import "strings"

// SplitLines turns multi-line free text into an ordered list of entries,
// dropping blank and whitespace-only lines. Used for morning goals and
// evening gratitude input.
func SplitLines(input string) []string {
	var out []string
	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

// InScale reports whether v is a valid 1-10 self-report value.
func InScale(v int) bool {
	return v >= 1 && v <= 10
}
