package extract

import (
	"regexp"
	"strings"
)

// StructuredPair is one front/back line from a structured vocabulary list.
type StructuredPair struct {
	Front string
	Back  string
}

// separators are the recognized field separators, in priority order.
// DetectSeparator uses a strict greater-than comparison, so on a tie the
// earlier candidate wins.
var separators = []string{"\t", ";", "|", " - ", " – ", " — "}

// structuredLineRe matches lines shaped like "front <sep> back", e.g.
// "der Hund ; the dog", with at least two non-separator characters on
// each side and no stray separator characters elsewhere.
var structuredLineRe = regexp.MustCompile(`^[^;|\t\n]{2,}(?:[;|\t]| [-–—] )[^;|\t\n]{2,}$`)

// IsStructured reports whether the text looks like a structured
// vocabulary list. At least 40% of non-empty lines must match the
// "front <sep> back" shape; the tolerance absorbs incidental lines in
// noisy scans.
func IsStructured(text string) bool {
	var total, matched int
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		total++
		if structuredLineRe.MatchString(line) {
			matched++
		}
	}
	if total == 0 {
		return false
	}
	return float64(matched)/float64(total) >= 0.4
}

// DetectSeparator returns the most frequently occurring recognized
// separator in text, defaulting to ";" when none occurs.
func DetectSeparator(text string) string {
	bestSep := ";"
	bestCount := 0
	for _, sep := range separators {
		if count := strings.Count(text, sep); count > bestCount {
			bestCount = count
			bestSep = sep
		}
	}
	return bestSep
}

// ParsePairs parses a structured vocabulary text into front/back pairs
// using the auto-detected separator. Lines starting with "#" are
// comments. Lines without the separator, or with an empty half, are
// skipped. Only the first separator occurrence splits the line, so the
// back may contain the separator character again. Input line order is
// preserved and duplicates are kept.
func ParsePairs(text string) []StructuredPair {
	sep := DetectSeparator(text)
	pairs := make([]StructuredPair, 0)

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		front, back, found := strings.Cut(line, sep)
		if !found {
			continue
		}

		front = strings.TrimSpace(front)
		back = strings.TrimSpace(back)
		if front == "" || back == "" {
			continue
		}
		pairs = append(pairs, StructuredPair{Front: front, Back: back})
	}
	return pairs
}
