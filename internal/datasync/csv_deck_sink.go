package datasync

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/vocabrecall/vocabrecall/internal/card"
)

// CSVDeckSink writes a deck's cards to a CSV file with the columns
// front, back, article, word_type, example_sentence.
type CSVDeckSink struct {
	path string
}

// NewCSVDeckSink creates a new CSVDeckSink writing to path.
func NewCSVDeckSink(path string) *CSVDeckSink {
	return &CSVDeckSink{path: path}
}

// WriteCards writes all cards and returns the number exported.
func (s *CSVDeckSink) WriteCards(cards []card.Card) (int, error) {
	f, err := os.Create(s.path)
	if err != nil {
		return 0, fmt.Errorf("create csv file: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"front", "back", "article", "word_type", "example_sentence"}); err != nil {
		return 0, fmt.Errorf("write csv header: %w", err)
	}
	for _, c := range cards {
		if err := w.Write([]string{c.Front, c.Back, c.Article, c.WordType, c.ExampleSentence}); err != nil {
			return 0, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return 0, fmt.Errorf("flush csv: %w", err)
	}
	return len(cards), nil
}
