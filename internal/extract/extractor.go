package extract

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Classifier assigns grammatical categories to the words of a free-text
// document and returns deduplicated entries occurring at least minFreq
// times.
type Classifier interface {
	Classify(ctx context.Context, text string, minFreq int) ([]Entry, error)
}

// Result is the outcome of one extraction call. Either Pairs is set
// (structured document) or Entries is (free text).
type Result struct {
	Structured bool
	Pairs      []StructuredPair
	Entries    []Entry
}

// Extractor is the document extraction pipeline. Structured documents
// are parsed into front/back pairs; free text goes through the primary
// classifier, falling back to heuristics permanently once the primary
// fails.
type Extractor struct {
	primary  Classifier
	fallback Classifier

	demoted    atomic.Bool
	demoteOnce sync.Once
}

// NewExtractor creates an Extractor. primary may be nil, in which case
// only the heuristic classifier is used.
func NewExtractor(primary Classifier) *Extractor {
	return &Extractor{
		primary:  primary,
		fallback: NewHeuristicClassifier(),
	}
}

// Extract processes a document. Empty input yields an empty free-text
// result.
func (e *Extractor) Extract(ctx context.Context, text string, minFreq int) (Result, error) {
	if IsStructured(text) {
		return Result{Structured: true, Pairs: ParsePairs(text)}, nil
	}

	entries, err := e.classify(ctx, text, minFreq)
	if err != nil {
		return Result{}, err
	}
	return Result{Entries: entries}, nil
}

// classify runs the primary classifier while it works. The first
// failure logs a warning and pins the heuristic fallback for the rest
// of the process lifetime, so an unreachable tagger is probed once, not
// per call.
func (e *Extractor) classify(ctx context.Context, text string, minFreq int) ([]Entry, error) {
	if e.primary != nil && !e.demoted.Load() {
		entries, err := e.primary.Classify(ctx, text, minFreq)
		if err == nil {
			return entries, nil
		}
		e.demoteOnce.Do(func() {
			slog.Warn("primary classifier unavailable, switching to heuristic fallback", "error", err)
			e.demoted.Store(true)
		})
	}
	return e.fallback.Classify(ctx, text, minFreq)
}
