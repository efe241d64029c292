// Package card provides the flashcard domain model and its storage.
package card

import (
	"errors"
	"time"

	"github.com/vocabrecall/vocabrecall/internal/srs"
)

// ErrNotFound reports that a folder, deck or card does not exist.
var ErrNotFound = errors.New("not found")

// MasteredRepetitions is the streak at which a card counts as mastered.
const MasteredRepetitions = 5

// Folder organizes decks hierarchically. A nil ParentID marks a root
// folder.
type Folder struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	ParentID  *int64    `db:"parent_id"`
	CreatedAt time.Time `db:"created_at"`
}

// Deck is a collection of flashcards imported from one source document.
type Deck struct {
	ID             int64     `db:"id"`
	Name           string    `db:"name"`
	FolderID       int64     `db:"folder_id"`
	SourceFilename string    `db:"source_filename"`
	CreatedAt      time.Time `db:"created_at"`
}

// Card is a single flashcard with its SM-2 scheduling fields.
type Card struct {
	ID     int64 `db:"id"`
	DeckID int64 `db:"deck_id"`

	Front           string `db:"front"`
	Back            string `db:"back"`
	Article         string `db:"article"`
	WordType        string `db:"word_type"`
	ExampleSentence string `db:"example_sentence"`

	Easiness     float64   `db:"easiness"`
	IntervalDays int       `db:"interval_days"`
	Repetitions  int       `db:"repetitions"`
	NextReview   time.Time `db:"next_review"`

	CreatedAt time.Time `db:"created_at"`
}

// DisplayFront returns the card front, article-prefixed when one is set.
func (c Card) DisplayFront() string {
	if c.Article != "" {
		return c.Article + " " + c.Front
	}
	return c.Front
}

// State returns the card's scheduling state snapshot.
func (c Card) State() srs.SchedulingState {
	return srs.SchedulingState{
		Repetitions: c.Repetitions,
		Easiness:    c.Easiness,
		Interval:    c.IntervalDays,
		NextReview:  c.NextReview,
	}
}

// ApplyState writes a scheduling state back onto the card.
func (c *Card) ApplyState(state srs.SchedulingState) {
	c.Repetitions = state.Repetitions
	c.Easiness = state.Easiness
	c.IntervalDays = state.Interval
	c.NextReview = state.NextReview
}

// ReviewLog is one persisted row of the append-only review audit trail.
type ReviewLog struct {
	ID            int64     `db:"id"`
	CardID        int64     `db:"card_id"`
	ReviewedAt    time.Time `db:"reviewed_at"`
	Quality       int       `db:"quality"`
	EasinessAfter float64   `db:"easiness_after"`
	IntervalAfter int       `db:"interval_after"`
}

// DeckStats summarizes a deck's learning progress.
type DeckStats struct {
	Total    int
	Due      int
	Mastered int
	Learning int
}
