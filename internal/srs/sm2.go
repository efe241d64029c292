// Package srs implements the SM-2 spaced-repetition scheduling
// algorithm as pure functions over scheduling state.
package srs

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultEasinessFactor is the easiness of a brand-new card.
	DefaultEasinessFactor = 2.5
	// MinEasinessFactor is the hard lower bound on easiness.
	MinEasinessFactor = 1.3

	// PassingQuality is the lowest grade counting as a successful recall.
	PassingQuality = 3
	// MaxQuality is the highest recall grade.
	MaxQuality = 5
)

// ErrInvalidGrade reports a quality grade outside [0, 5].
var ErrInvalidGrade = errors.New("quality grade must be between 0 and 5")

// Review applies the SM-2 algorithm to one recall grade.
//
// A grade below 3 is a lapse: the repetition count resets and the card
// comes back after one day. A passing grade grows the interval: 1 day,
// then 6 days, then interval * easiness rounded to the nearest day
// (halves round away from zero). The easiness factor is updated from
// the original quality and easiness in both regimes and never drops
// below MinEasinessFactor.
func Review(quality int, repetitions int, easiness float64, interval int) (int, float64, int, error) {
	if quality < 0 || quality > MaxQuality {
		return 0, 0, 0, fmt.Errorf("%w: got %d", ErrInvalidGrade, quality)
	}

	var newRepetitions, newInterval int
	if quality < PassingQuality {
		newRepetitions = 0
		newInterval = 1
	} else {
		switch repetitions {
		case 0:
			newInterval = 1
		case 1:
			newInterval = 6
		default:
			newInterval = int(math.Round(float64(interval) * easiness))
		}
		newRepetitions = repetitions + 1
	}

	q := float64(quality)
	newEasiness := easiness + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	newEasiness = math.Max(newEasiness, MinEasinessFactor)

	return newRepetitions, newEasiness, newInterval, nil
}
