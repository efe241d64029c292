package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vocabrecall/vocabrecall/internal/tagger"
)

// ErrUnavailable reports that the tagging service cannot be used. The
// pipeline treats it as a supported degraded mode, not a failure.
var ErrUnavailable = errors.New("tagging service unavailable")

const minWordLen = 3

// Annotator is the subset of the tagger client the classifier needs.
type Annotator interface {
	Available(ctx context.Context) error
	Annotate(ctx context.Context, text string) ([]tagger.Token, error)
	ChunkSize() int
}

// TaggerClassifier extracts vocabulary using an external part-of-speech
// tagging service. Long documents are split into chunks of the
// service's maximum window and the per-chunk results merged by key.
type TaggerClassifier struct {
	annotator Annotator
}

// NewTaggerClassifier creates a TaggerClassifier backed by annotator.
func NewTaggerClassifier(annotator Annotator) *TaggerClassifier {
	return &TaggerClassifier{annotator: annotator}
}

// Classify annotates text and keeps nouns, verbs and adjectives that
// occur at least minFreq times. Punctuation, whitespace, digits,
// stop-words and tokens shorter than three characters are discarded.
func (c *TaggerClassifier) Classify(ctx context.Context, text string, minFreq int) ([]Entry, error) {
	if err := c.annotator.Available(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	acc := newAccumulator()
	for _, chunk := range chunkRunes(text, c.annotator.ChunkSize()) {
		tokens, err := c.annotator.Annotate(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("annotator.Annotate > %w", err)
		}

		chunkAcc := newAccumulator()
		for _, token := range tokens {
			collectToken(chunkAcc, token)
		}
		acc.merge(chunkAcc)
	}

	return acc.finalize(minFreq), nil
}

func collectToken(acc *accumulator, token tagger.Token) {
	if token.IsPunct || token.IsSpace || token.IsDigit || token.IsStop {
		return
	}
	if utf8.RuneCountInString(token.Text) < minWordLen {
		return
	}

	var category Category
	switch token.POS {
	case "NOUN":
		category = CategoryNoun
	case "VERB":
		category = CategoryVerb
	case "ADJ":
		category = CategoryAdjective
	default:
		return
	}

	acc.add(Key{Category: category, Lemma: strings.ToLower(token.Lemma)}, func() Entry {
		entry := Entry{
			Word:     token.Lemma,
			Lemma:    token.Lemma,
			Category: category,
			Example:  collapseExample(token.Sentence),
		}
		if category == CategoryNoun {
			// Nouns keep their surface case and, when the tagger
			// supplies a gender, get a definite article.
			entry.Word = token.Text
			entry.Article = GenderArticles[token.Gender]
		}
		return entry
	})
}

// chunkRunes splits text into pieces of at most size runes.
func chunkRunes(text string, size int) []string {
	if text == "" {
		return nil
	}
	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}

	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
