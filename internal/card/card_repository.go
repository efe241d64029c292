package card

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/vocabrecall/vocabrecall/internal/database"
	"github.com/vocabrecall/vocabrecall/internal/srs"
)

// CardRepository defines storage operations for cards and their review
// logs.
type CardRepository interface {
	BatchCreate(ctx context.Context, cards []*Card) error
	// DueCards returns up to limit cards of the deck due at now, most
	// overdue first. The ascending next_review order is a contract the
	// review session depends on.
	DueCards(ctx context.Context, deckID int64, now time.Time, limit int) ([]Card, error)
	AllCards(ctx context.Context, deckID int64) ([]Card, error)
	// SaveReview persists a reviewed card's scheduling fields and
	// appends the review log entry in one transaction.
	SaveReview(ctx context.Context, reviewed Card, logEntry srs.ReviewLogEntry) error
	FindReviewLogs(ctx context.Context, deckID int64) ([]ReviewLog, error)
	// ResetProgress restores the SM-2 defaults for every card of the
	// deck and purges its review logs. Returns the number of cards
	// reset.
	ResetProgress(ctx context.Context, deckID int64, now time.Time) (int64, error)
	Stats(ctx context.Context, deckID int64, now time.Time) (DeckStats, error)
}

// DBCardRepository implements CardRepository using MySQL.
type DBCardRepository struct {
	db *sqlx.DB
}

// NewDBCardRepository creates a new DBCardRepository.
func NewDBCardRepository(db *sqlx.DB) *DBCardRepository {
	return &DBCardRepository{db: db}
}

// BatchCreate inserts multiple cards in a single transaction using a
// multi-row INSERT.
func (r *DBCardRepository) BatchCreate(ctx context.Context, cards []*Card) error {
	if len(cards) == 0 {
		return nil
	}

	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		columns := []string{"deck_id", "front", "back", "article", "word_type", "example_sentence", "easiness", "interval_days", "repetitions", "next_review"}
		query := database.BuildMultiRowInsert("cards", columns, len(cards))

		var args []interface{}
		for _, c := range cards {
			args = append(args, c.DeckID, c.Front, c.Back, c.Article, c.WordType, c.ExampleSentence, c.Easiness, c.IntervalDays, c.Repetitions, c.NextReview)
		}
		_, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("insert cards: %w", err)
		}
		return nil
	})
}

// DueCards returns the deck's cards whose next_review is at or before
// now, ordered most overdue first and capped at limit.
func (r *DBCardRepository) DueCards(ctx context.Context, deckID int64, now time.Time, limit int) ([]Card, error) {
	var cards []Card
	if err := r.db.SelectContext(ctx, &cards,
		"SELECT * FROM cards WHERE deck_id = ? AND next_review <= ? ORDER BY next_review ASC LIMIT ?",
		deckID, now, limit); err != nil {
		return nil, fmt.Errorf("load due cards: %w", err)
	}
	return cards, nil
}

// AllCards returns every card in a deck regardless of schedule.
func (r *DBCardRepository) AllCards(ctx context.Context, deckID int64) ([]Card, error) {
	var cards []Card
	if err := r.db.SelectContext(ctx, &cards,
		"SELECT * FROM cards WHERE deck_id = ? ORDER BY id", deckID); err != nil {
		return nil, fmt.Errorf("load all cards: %w", err)
	}
	return cards, nil
}

// SaveReview updates the card's scheduling fields and appends the
// review log entry atomically.
func (r *DBCardRepository) SaveReview(ctx context.Context, reviewed Card, logEntry srs.ReviewLogEntry) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			"UPDATE cards SET easiness = ?, interval_days = ?, repetitions = ?, next_review = ? WHERE id = ?",
			reviewed.Easiness, reviewed.IntervalDays, reviewed.Repetitions, reviewed.NextReview, reviewed.ID)
		if err != nil {
			return fmt.Errorf("update card: %w", err)
		}
		if err := requireRowsAffected(result, "card"); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			"INSERT INTO review_logs (card_id, reviewed_at, quality, easiness_after, interval_after) VALUES (?, ?, ?, ?, ?)",
			logEntry.CardID, logEntry.ReviewedAt, logEntry.Quality, logEntry.EasinessAfter, logEntry.IntervalAfter); err != nil {
			return fmt.Errorf("insert review log: %w", err)
		}
		return nil
	})
}

// FindReviewLogs returns the review history of a deck, oldest first.
func (r *DBCardRepository) FindReviewLogs(ctx context.Context, deckID int64) ([]ReviewLog, error) {
	var logs []ReviewLog
	if err := r.db.SelectContext(ctx, &logs,
		"SELECT review_logs.* FROM review_logs JOIN cards ON cards.id = review_logs.card_id WHERE cards.deck_id = ? ORDER BY review_logs.id",
		deckID); err != nil {
		return nil, fmt.Errorf("load review logs: %w", err)
	}
	return logs, nil
}

// ResetProgress resets every card of the deck to the SM-2 defaults and
// deletes the deck's review logs.
func (r *DBCardRepository) ResetProgress(ctx context.Context, deckID int64, now time.Time) (int64, error) {
	var reset int64
	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			"DELETE review_logs FROM review_logs JOIN cards ON cards.id = review_logs.card_id WHERE cards.deck_id = ?",
			deckID); err != nil {
			return fmt.Errorf("delete review logs: %w", err)
		}

		result, err := tx.ExecContext(ctx,
			"UPDATE cards SET easiness = ?, interval_days = 0, repetitions = 0, next_review = ? WHERE deck_id = ?",
			srs.DefaultEasinessFactor, now, deckID)
		if err != nil {
			return fmt.Errorf("reset cards: %w", err)
		}
		reset, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("reset rows affected: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return reset, nil
}

// Stats returns the deck's total, due, mastered and learning counts.
func (r *DBCardRepository) Stats(ctx context.Context, deckID int64, now time.Time) (DeckStats, error) {
	var stats DeckStats
	if err := r.db.GetContext(ctx, &stats.Total,
		"SELECT COUNT(*) FROM cards WHERE deck_id = ?", deckID); err != nil {
		return DeckStats{}, fmt.Errorf("count cards: %w", err)
	}
	if err := r.db.GetContext(ctx, &stats.Due,
		"SELECT COUNT(*) FROM cards WHERE deck_id = ? AND next_review <= ?", deckID, now); err != nil {
		return DeckStats{}, fmt.Errorf("count due cards: %w", err)
	}
	if err := r.db.GetContext(ctx, &stats.Mastered,
		"SELECT COUNT(*) FROM cards WHERE deck_id = ? AND repetitions >= ?", deckID, MasteredRepetitions); err != nil {
		return DeckStats{}, fmt.Errorf("count mastered cards: %w", err)
	}
	stats.Learning = stats.Total - stats.Mastered
	return stats, nil
}
