package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vocabrecall/vocabrecall/internal/card"
	mock_card "github.com/vocabrecall/vocabrecall/internal/mocks/card"
	"github.com/vocabrecall/vocabrecall/internal/srs"
)

func newDueCard(id int64, now time.Time) card.Card {
	return card.Card{
		ID:         id,
		DeckID:     1,
		Front:      "Hund",
		Back:       "dog",
		Article:    "der",
		WordType:   "NOUN",
		Easiness:   srs.DefaultEasinessFactor,
		NextReview: now,
	}
}

func TestReviewSession_Run(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		input      string
		setupMock  func(cards *mock_card.MockCardRepository)
		wantOutput []string
	}{
		{
			name:  "no due cards",
			input: "",
			setupMock: func(cards *mock_card.MockCardRepository) {
				cards.EXPECT().DueCards(gomock.Any(), int64(1), now, 50).Return(nil, nil)
			},
			wantOutput: []string{"No cards are due for review."},
		},
		{
			name:  "passing grade schedules the next review",
			input: "\n4\n",
			setupMock: func(cards *mock_card.MockCardRepository) {
				cards.EXPECT().DueCards(gomock.Any(), int64(1), now, 50).
					Return([]card.Card{newDueCard(10, now)}, nil)
				cards.EXPECT().SaveReview(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, reviewed card.Card, logEntry srs.ReviewLogEntry) error {
						assert.Equal(t, int64(10), reviewed.ID)
						assert.Equal(t, 1, reviewed.Repetitions)
						assert.Equal(t, 1, reviewed.IntervalDays)
						assert.Equal(t, now.AddDate(0, 0, 1), reviewed.NextReview)
						assert.Equal(t, 4, logEntry.Quality)
						return nil
					})
			},
			wantOutput: []string{"der Hund", "dog", "Session finished: 1 passed, 0 lapsed"},
		},
		{
			name:  "failing grade resets the card",
			input: "\n1\n",
			setupMock: func(cards *mock_card.MockCardRepository) {
				due := newDueCard(10, now)
				due.Repetitions = 3
				due.IntervalDays = 15
				cards.EXPECT().DueCards(gomock.Any(), int64(1), now, 50).
					Return([]card.Card{due}, nil)
				cards.EXPECT().SaveReview(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, reviewed card.Card, logEntry srs.ReviewLogEntry) error {
						assert.Equal(t, 0, reviewed.Repetitions)
						assert.Equal(t, 1, reviewed.IntervalDays)
						return nil
					})
			},
			wantOutput: []string{"Session finished: 0 passed, 1 lapsed"},
		},
		{
			name:  "invalid grades are asked again",
			input: "\nnein\n9\n5\n",
			setupMock: func(cards *mock_card.MockCardRepository) {
				cards.EXPECT().DueCards(gomock.Any(), int64(1), now, 50).
					Return([]card.Card{newDueCard(10, now)}, nil)
				cards.EXPECT().SaveReview(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantOutput: []string{"Please enter a number between 0 and 5.", "Session finished: 1 passed, 0 lapsed"},
		},
		{
			name:  "quitting skips the remaining cards",
			input: "q\n",
			setupMock: func(cards *mock_card.MockCardRepository) {
				cards.EXPECT().DueCards(gomock.Any(), int64(1), now, 50).
					Return([]card.Card{newDueCard(10, now), newDueCard(11, now)}, nil)
			},
			wantOutput: []string{"Session finished: 0 passed, 0 lapsed"},
		},
		{
			name:  "end of input quits the session",
			input: "",
			setupMock: func(cards *mock_card.MockCardRepository) {
				cards.EXPECT().DueCards(gomock.Any(), int64(1), now, 50).
					Return([]card.Card{newDueCard(10, now)}, nil)
			},
			wantOutput: []string{"Session finished: 0 passed, 0 lapsed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cards := mock_card.NewMockCardRepository(ctrl)
			tt.setupMock(cards)

			var out bytes.Buffer
			session := NewReviewSession(cards, strings.NewReader(tt.input), &out)
			session.now = func() time.Time { return now }

			require.NoError(t, session.Run(context.Background(), 1, 50))
			for _, want := range tt.wantOutput {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestReviewSession_Run_errors(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		input     string
		setupMock func(cards *mock_card.MockCardRepository)
		errMsg    string
	}{
		{
			name: "loading due cards fails",
			setupMock: func(cards *mock_card.MockCardRepository) {
				cards.EXPECT().DueCards(gomock.Any(), int64(1), now, 50).
					Return(nil, fmt.Errorf("connection lost"))
			},
			errMsg: "cards.DueCards",
		},
		{
			name:  "saving the review fails",
			input: "\n4\n",
			setupMock: func(cards *mock_card.MockCardRepository) {
				cards.EXPECT().DueCards(gomock.Any(), int64(1), now, 50).
					Return([]card.Card{newDueCard(10, now)}, nil)
				cards.EXPECT().SaveReview(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("connection lost"))
			},
			errMsg: "cards.SaveReview",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cards := mock_card.NewMockCardRepository(ctrl)
			tt.setupMock(cards)

			var out bytes.Buffer
			session := NewReviewSession(cards, strings.NewReader(tt.input), &out)
			session.now = func() time.Time { return now }

			err := session.Run(context.Background(), 1, 50)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
