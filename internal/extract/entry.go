// Package extract turns raw document text into vocabulary candidates.
// A document is either a structured front/back list or free prose; free
// prose goes through a part-of-speech classifier with a heuristic
// fallback when no tagger is available.
package extract

import (
	"regexp"
	"strings"
)

// Category is the coarse grammatical category of an extracted word.
type Category string

const (
	CategoryNoun      Category = "NOUN"
	CategoryVerb      Category = "VERB"
	CategoryAdjective Category = "ADJ"
)

// categoryRank fixes the output ordering: nouns, then verbs, then adjectives.
var categoryRank = map[Category]int{
	CategoryNoun:      0,
	CategoryVerb:      1,
	CategoryAdjective: 2,
}

// GenderArticles maps grammatical gender labels to German definite articles.
var GenderArticles = map[string]string{
	"Masc": "der",
	"Fem":  "die",
	"Neut": "das",
}

// Key identifies one vocabulary candidate for deduplication and
// frequency counting.
type Key struct {
	Category Category
	Lemma    string
}

// Entry is one extracted vocabulary candidate.
type Entry struct {
	// Word is the surface form as it appeared. Case is preserved for nouns.
	Word string
	// Lemma is the lowercase canonical form used as the dedup key.
	Lemma string
	// Category is the grammatical category.
	Category Category
	// Article is the definite article (der/die/das) for nouns whose
	// gender is known, empty otherwise.
	Article string
	// Example is the sentence of first occurrence, whitespace collapsed
	// and truncated to 300 characters. May be empty.
	Example string
	// Frequency is the number of occurrences across the whole document.
	Frequency int
}

// DisplayFront returns the flashcard front text, article-prefixed for
// nouns with a known gender.
func (e Entry) DisplayFront() string {
	if e.Article != "" {
		return e.Article + " " + e.Word
	}
	return e.Word
}

const maxExampleLen = 300

var whitespaceRe = regexp.MustCompile(`\s+`)

// collapseExample normalizes an example sentence: trims it, collapses
// runs of whitespace and truncates to maxExampleLen characters.
func collapseExample(sentence string) string {
	collapsed := whitespaceRe.ReplaceAllString(strings.TrimSpace(sentence), " ")
	runes := []rune(collapsed)
	if len(runes) > maxExampleLen {
		return string(runes[:maxExampleLen])
	}
	return collapsed
}
