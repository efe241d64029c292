package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	state := NewState(now)

	assert.Equal(t, 0, state.Repetitions)
	assert.Equal(t, DefaultEasinessFactor, state.Easiness)
	assert.Equal(t, 0, state.Interval)
	assert.Equal(t, now, state.NextReview)
}

func TestRecordReview(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name               string
		state              SchedulingState
		quality            int
		expectedState      SchedulingState
		expectedNextReview time.Time
	}{
		{
			name:    "first successful review due tomorrow",
			state:   SchedulingState{Repetitions: 0, Easiness: 2.5, Interval: 0},
			quality: 5,
			expectedState: SchedulingState{
				Repetitions: 1,
				Easiness:    2.6,
				Interval:    1,
			},
			expectedNextReview: now.AddDate(0, 0, 1),
		},
		{
			name:    "third successful review grows the interval",
			state:   SchedulingState{Repetitions: 2, Easiness: 2.5, Interval: 6},
			quality: 4,
			expectedState: SchedulingState{
				Repetitions: 3,
				Easiness:    2.5,
				Interval:    15,
			},
			expectedNextReview: now.AddDate(0, 0, 15),
		},
		{
			name:    "lapse comes back tomorrow",
			state:   SchedulingState{Repetitions: 4, Easiness: 2.0, Interval: 20},
			quality: 1,
			expectedState: SchedulingState{
				Repetitions: 0,
				Easiness:    1.46,
				Interval:    1,
			},
			expectedNextReview: now.AddDate(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newState, logEntry, err := RecordReview(42, tt.state, tt.quality, now)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedState.Repetitions, newState.Repetitions)
			assert.InDelta(t, tt.expectedState.Easiness, newState.Easiness, 0.001)
			assert.Equal(t, tt.expectedState.Interval, newState.Interval)
			assert.Equal(t, tt.expectedNextReview, newState.NextReview)

			assert.Equal(t, int64(42), logEntry.CardID)
			assert.Equal(t, tt.quality, logEntry.Quality)
			assert.InDelta(t, newState.Easiness, logEntry.EasinessAfter, 0.001)
			assert.Equal(t, newState.Interval, logEntry.IntervalAfter)
			assert.Equal(t, now, logEntry.ReviewedAt)
		})
	}
}

func TestRecordReview_InvalidGrade(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	state := SchedulingState{Repetitions: 2, Easiness: 2.5, Interval: 6, NextReview: now}

	newState, logEntry, err := RecordReview(1, state, 7, now)
	require.ErrorIs(t, err, ErrInvalidGrade)
	assert.Zero(t, newState)
	assert.Zero(t, logEntry)
}
