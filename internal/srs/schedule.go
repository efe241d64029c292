package srs

import (
	"time"
)

// SchedulingState holds the mutable SM-2 fields of one card.
type SchedulingState struct {
	Repetitions int
	Easiness    float64
	Interval    int
	NextReview  time.Time
}

// NewState returns the scheduling state of a freshly created card, due
// immediately.
func NewState(now time.Time) SchedulingState {
	return SchedulingState{
		Easiness:   DefaultEasinessFactor,
		NextReview: now,
	}
}

// ReviewLogEntry is one immutable record of the append-only review
// audit trail.
type ReviewLogEntry struct {
	CardID        int64
	Quality       int
	EasinessAfter float64
	IntervalAfter int
	ReviewedAt    time.Time
}

// RecordReview grades a card and derives its next state plus a log
// entry. The prior state is untouched on error. The caller is
// responsible for serializing concurrent reviews of the same card.
func RecordReview(cardID int64, state SchedulingState, quality int, now time.Time) (SchedulingState, ReviewLogEntry, error) {
	repetitions, easiness, interval, err := Review(quality, state.Repetitions, state.Easiness, state.Interval)
	if err != nil {
		return SchedulingState{}, ReviewLogEntry{}, err
	}

	newState := SchedulingState{
		Repetitions: repetitions,
		Easiness:    easiness,
		Interval:    interval,
		NextReview:  now.AddDate(0, 0, interval),
	}
	logEntry := ReviewLogEntry{
		CardID:        cardID,
		Quality:       quality,
		EasinessAfter: easiness,
		IntervalAfter: interval,
		ReviewedAt:    now,
	}
	return newState, logEntry, nil
}
