package datasync

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vocabrecall/vocabrecall/internal/card"
)

func TestYAMLDeckSink_WriteCards(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "exports")
	sink := NewYAMLDeckSink(outputDir)

	cards := []card.Card{
		{
			ID:              1,
			Front:           "der Hund",
			Back:            "dog",
			Article:         "der",
			WordType:        "NOUN",
			ExampleSentence: "Der Hund bellt laut.",
			Easiness:        2.6,
			IntervalDays:    6,
			Repetitions:     2,
			NextReview:      time.Date(2025, 3, 16, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:         2,
			Front:      "laufen",
			Back:       "to run",
			WordType:   "VERB",
			Easiness:   2.5,
			NextReview: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		},
	}

	require.NoError(t, sink.WriteCards(cards))

	content, err := os.ReadFile(filepath.Join(outputDir, "cards.yml"))
	require.NoError(t, err)

	var got []exportCard
	require.NoError(t, yaml.Unmarshal(content, &got))
	require.Len(t, got, 2)
	assert.Equal(t, exportCard{
		ID:              1,
		Front:           "der Hund",
		Back:            "dog",
		Article:         "der",
		WordType:        "NOUN",
		ExampleSentence: "Der Hund bellt laut.",
		Easiness:        2.6,
		IntervalDays:    6,
		Repetitions:     2,
		NextReview:      "2025-03-16",
	}, got[0])
	assert.Equal(t, "laufen", got[1].Front)
	assert.Empty(t, got[1].Article)
}

func TestYAMLDeckSink_WriteReviewLogs(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "exports")
	sink := NewYAMLDeckSink(outputDir)

	logs := []card.ReviewLog{
		{
			ID:            1,
			CardID:        5,
			ReviewedAt:    time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC),
			Quality:       4,
			EasinessAfter: 2.5,
			IntervalAfter: 1,
		},
		{
			ID:            2,
			CardID:        5,
			ReviewedAt:    time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
			Quality:       5,
			EasinessAfter: 2.6,
			IntervalAfter: 6,
		},
	}

	require.NoError(t, sink.WriteReviewLogs(logs))

	content, err := os.ReadFile(filepath.Join(outputDir, "review_logs.yml"))
	require.NoError(t, err)

	var got []exportReviewLog
	require.NoError(t, yaml.Unmarshal(content, &got))
	require.Len(t, got, 2)
	assert.Equal(t, exportReviewLog{
		ID:            2,
		CardID:        5,
		ReviewedAt:    "2025-03-10",
		Quality:       5,
		EasinessAfter: 2.6,
		IntervalAfter: 6,
	}, got[1])
}

func TestYAMLDeckSink_WriteCards_emptyDeck(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "exports")
	sink := NewYAMLDeckSink(outputDir)

	require.NoError(t, sink.WriteCards(nil))

	content, err := os.ReadFile(filepath.Join(outputDir, "cards.yml"))
	require.NoError(t, err)

	var got []exportCard
	require.NoError(t, yaml.Unmarshal(content, &got))
	assert.Empty(t, got)
}
