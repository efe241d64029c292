// Package datasync exports deck contents to files for backup and
// interchange with other flashcard tools.
package datasync

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vocabrecall/vocabrecall/internal/card"
)

type exportCard struct {
	ID              int64   `yaml:"id"`
	Front           string  `yaml:"front"`
	Back            string  `yaml:"back"`
	Article         string  `yaml:"article,omitempty"`
	WordType        string  `yaml:"word_type,omitempty"`
	ExampleSentence string  `yaml:"example_sentence,omitempty"`
	Easiness        float64 `yaml:"easiness"`
	IntervalDays    int     `yaml:"interval_days"`
	Repetitions     int     `yaml:"repetitions"`
	NextReview      string  `yaml:"next_review"`
}

type exportReviewLog struct {
	ID            int64   `yaml:"id"`
	CardID        int64   `yaml:"card_id"`
	ReviewedAt    string  `yaml:"reviewed_at"`
	Quality       int     `yaml:"quality"`
	EasinessAfter float64 `yaml:"easiness_after"`
	IntervalAfter int     `yaml:"interval_after"`
}

// YAMLDeckSink writes a deck's cards and review history to YAML files.
type YAMLDeckSink struct {
	outputDir string
}

// NewYAMLDeckSink creates a new YAMLDeckSink.
func NewYAMLDeckSink(outputDir string) *YAMLDeckSink {
	return &YAMLDeckSink{outputDir: outputDir}
}

// WriteCards writes cards to cards.yml.
func (s *YAMLDeckSink) WriteCards(cards []card.Card) error {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	out := make([]exportCard, len(cards))
	for i, c := range cards {
		out[i] = exportCard{
			ID:              c.ID,
			Front:           c.Front,
			Back:            c.Back,
			Article:         c.Article,
			WordType:        c.WordType,
			ExampleSentence: c.ExampleSentence,
			Easiness:        c.Easiness,
			IntervalDays:    c.IntervalDays,
			Repetitions:     c.Repetitions,
			NextReview:      c.NextReview.Format("2006-01-02"),
		}
	}

	if err := writeYAML(filepath.Join(s.outputDir, "cards.yml"), out); err != nil {
		return fmt.Errorf("write cards.yml: %w", err)
	}
	return nil
}

// WriteReviewLogs writes review logs to review_logs.yml.
func (s *YAMLDeckSink) WriteReviewLogs(logs []card.ReviewLog) error {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	out := make([]exportReviewLog, len(logs))
	for i, l := range logs {
		out[i] = exportReviewLog{
			ID:            l.ID,
			CardID:        l.CardID,
			ReviewedAt:    l.ReviewedAt.Format("2006-01-02"),
			Quality:       l.Quality,
			EasinessAfter: l.EasinessAfter,
			IntervalAfter: l.IntervalAfter,
		}
	}

	if err := writeYAML(filepath.Join(s.outputDir, "review_logs.yml"), out); err != nil {
		return fmt.Errorf("write review_logs.yml: %w", err)
	}
	return nil
}

func writeYAML(path string, data interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	enc := yaml.NewEncoder(f)
	defer func() { _ = enc.Close() }()
	return enc.Encode(data)
}
