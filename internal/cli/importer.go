// Package cli implements the command runners behind the vocabrecall
// commands.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/vocabrecall/vocabrecall/internal/card"
	"github.com/vocabrecall/vocabrecall/internal/extract"
	"github.com/vocabrecall/vocabrecall/internal/srs"
)

// Importer turns a document's text into a new deck of cards.
type Importer struct {
	extractor *extract.Extractor
	decks     card.DeckRepository
	cards     card.CardRepository
	now       func() time.Time
}

// NewImporter creates a new Importer.
func NewImporter(extractor *extract.Extractor, decks card.DeckRepository, cards card.CardRepository) *Importer {
	return &Importer{
		extractor: extractor,
		decks:     decks,
		cards:     cards,
		now:       time.Now,
	}
}

// ImportOptions controls one import run.
type ImportOptions struct {
	FolderID       int64
	DeckName       string
	SourceFilename string
	MinFrequency   int
}

// ImportResult summarizes one import run.
type ImportResult struct {
	DeckID     int64
	CardCount  int
	Structured bool
}

// ImportText extracts vocabulary from text and creates a deck holding
// one card per structured pair or extracted entry. Structured pairs
// become front/back cards; free-text entries become front-only cards
// carrying category, article and example sentence, with the back left
// for the user to fill in.
func (i *Importer) ImportText(ctx context.Context, text string, opts ImportOptions) (*ImportResult, error) {
	result, err := i.extractor.Extract(ctx, text, opts.MinFrequency)
	if err != nil {
		return nil, fmt.Errorf("extractor.Extract > %w", err)
	}

	deckID, err := i.decks.Create(ctx, opts.DeckName, opts.FolderID, opts.SourceFilename)
	if err != nil {
		return nil, fmt.Errorf("decks.Create > %w", err)
	}

	now := i.now()
	state := srs.NewState(now)

	var cards []*card.Card
	if result.Structured {
		for _, pair := range result.Pairs {
			cards = append(cards, &card.Card{
				DeckID: deckID,
				Front:  pair.Front,
				Back:   pair.Back,
			})
		}
	} else {
		for _, entry := range result.Entries {
			cards = append(cards, &card.Card{
				DeckID:          deckID,
				Front:           entry.Word,
				Article:         entry.Article,
				WordType:        string(entry.Category),
				ExampleSentence: entry.Example,
			})
		}
	}
	for _, c := range cards {
		c.Easiness = state.Easiness
		c.IntervalDays = state.Interval
		c.Repetitions = state.Repetitions
		c.NextReview = state.NextReview
	}

	if err := i.cards.BatchCreate(ctx, cards); err != nil {
		return nil, fmt.Errorf("cards.BatchCreate > %w", err)
	}

	return &ImportResult{
		DeckID:     deckID,
		CardCount:  len(cards),
		Structured: result.Structured,
	}, nil
}
