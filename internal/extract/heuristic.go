package extract

import (
	"context"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// stopWords is a short German stop-word list for the heuristic path.
var stopWords = map[string]struct{}{
	"ich": {}, "du": {}, "er": {}, "sie": {}, "es": {}, "wir": {}, "ihr": {},
	"und": {}, "oder": {}, "aber": {}, "denn": {}, "weil": {}, "dass": {},
	"wenn": {}, "als": {}, "wie": {}, "was": {}, "wer": {}, "den": {},
	"dem": {}, "des": {}, "ein": {}, "eine": {}, "einer": {}, "einem": {},
	"einen": {}, "eines": {}, "der": {}, "die": {}, "das": {}, "ist": {},
	"sind": {}, "war": {}, "hat": {}, "haben": {}, "wird": {}, "kann": {},
	"muss": {}, "soll": {}, "nicht": {}, "auch": {}, "nur": {}, "noch": {},
	"schon": {}, "sehr": {}, "von": {}, "mit": {}, "auf": {}, "für": {},
	"aus": {}, "bei": {}, "nach": {}, "vor": {}, "über": {}, "unter": {},
	"durch": {}, "ohne": {}, "gegen": {}, "bis": {}, "seit": {}, "zum": {},
	"zur": {}, "vom": {}, "beim": {}, "ins": {}, "ans": {}, "ums": {},
	"am": {}, "im": {}, "so": {}, "da": {}, "hier": {}, "dort": {},
	"jetzt": {}, "dann": {}, "nun": {}, "mal": {}, "doch": {}, "ja": {},
	"nein": {}, "kein": {}, "keine": {}, "keiner": {}, "keinem": {},
	"keinen": {}, "sich": {}, "mir": {}, "dir": {}, "ihm": {}, "uns": {},
	"euch": {}, "ihnen": {}, "mein": {}, "dein": {}, "sein": {},
	"unser": {}, "euer": {}, "mehr": {}, "viel": {}, "alle": {},
	"diese": {}, "dieser": {}, "dieses": {}, "diesem": {}, "diesen": {},
	"jede": {}, "jeder": {}, "jedes": {}, "jedem": {}, "jeden": {},
	"welche": {}, "welcher": {}, "solche": {}, "manche": {},
	"einige": {}, "andere": {},
}

// Common German infinitive endings.
var verbSuffixes = []string{"en", "ern", "eln"}

// Common German adjective endings.
var adjectiveSuffixes = []string{
	"ig", "lich", "isch", "bar", "sam", "haft", "los", "voll",
	"reich", "arm", "fest", "frei", "wert",
}

// tokenRe matches runs of at least three Latin letters, including the
// umlauts and ß used by German.
var tokenRe = regexp.MustCompile(`[A-ZÄÖÜa-zäöüß]{3,}`)

// sentenceRe splits text into rough sentences on . ! ? boundaries.
// A greedy scan, not abbreviation-aware.
var sentenceRe = regexp.MustCompile(`[^.!?]*[.!?]`)

// HeuristicClassifier extracts German vocabulary without a tagger,
// using capitalization and suffix heuristics.
type HeuristicClassifier struct{}

// NewHeuristicClassifier creates a HeuristicClassifier.
func NewHeuristicClassifier() *HeuristicClassifier {
	return &HeuristicClassifier{}
}

// Classify tokenizes text and assigns each non-stop-word token a
// grammatical category:
//
//   - capitalized words that are not dominantly sentence-initial are
//     nouns (German nouns are capitalized, but sentence-initial
//     capitalization is not a reliable signal)
//   - lowercase words with an infinitive ending are verbs
//   - lowercase words with an adjective ending are adjectives
//   - any other lowercase word of five or more letters is guessed to be
//     a verb, a known precision trade-off
//
// Entries below minFreq occurrences are dropped.
func (c *HeuristicClassifier) Classify(_ context.Context, text string, minFreq int) ([]Entry, error) {
	words := tokenRe.FindAllString(text, -1)
	sentences := sentenceRe.FindAllString(text, -1)
	acc := newAccumulator()

	for _, word := range words {
		low := strings.ToLower(word)
		if _, ok := stopWords[low]; ok {
			continue
		}

		first, _ := utf8.DecodeRuneInString(word)
		var category Category
		switch {
		case unicode.IsUpper(first) && !sentenceStartDominant(text, word):
			category = CategoryNoun
		case unicode.IsLower(first) && hasAnySuffix(low, verbSuffixes):
			category = CategoryVerb
		case unicode.IsLower(first) && hasAnySuffix(low, adjectiveSuffixes):
			category = CategoryAdjective
		case unicode.IsLower(first) && utf8.RuneCountInString(word) >= 5:
			category = CategoryVerb
		default:
			continue
		}

		acc.add(Key{Category: category, Lemma: low}, func() Entry {
			return Entry{
				Word:     word,
				Lemma:    low,
				Category: category,
				// Article is unknowable without grammatical analysis.
				Example: findSentence(sentences, word),
			}
		})
	}

	return acc.finalize(minFreq), nil
}

func hasAnySuffix(word string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(word, suffix) {
			return true
		}
	}
	return false
}

// findSentence returns the first sentence containing the literal word.
func findSentence(sentences []string, word string) string {
	for _, s := range sentences {
		if strings.Contains(s, word) {
			return collapseExample(s)
		}
	}
	return ""
}

// sentenceStartDominant reports whether more than 80% of the
// occurrences of word sit at a sentence boundary (text start, or after
// a sentence terminator plus whitespace). Such words are likely
// capitalized by position rather than because they are nouns.
func sentenceStartDominant(text, word string) bool {
	quoted := regexp.QuoteMeta(word)
	total := len(regexp.MustCompile(quoted).FindAllStringIndex(text, -1))
	if total == 0 {
		return false
	}
	starts := len(regexp.MustCompile(`(?:^|[.!?]\s+)` + quoted).FindAllStringIndex(text, -1))
	return float64(starts)/float64(total) > 0.8
}
