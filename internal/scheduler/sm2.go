// Package scheduler implements the SM-2 spaced repetition algorithm that
// decides when a card should next be reviewed.
package scheduler

import (
	"fmt"
	"math"
	"time"
)

const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3

	// MaxIntervalDays caps interval growth so a card is never scheduled
	// further than half a year out.
	MaxIntervalDays = 180

	MinQuality = 0
	MaxQuality = 5
)

// ReviewState is the scheduling state carried by a card between reviews.
type ReviewState struct {
	IntervalDays int       `yaml:"interval_days"`
	Repetition   int       `yaml:"repetition"`
	EaseFactor   float64   `yaml:"ease_factor"`
	NextReview   time.Time `yaml:"next_review"`
}

// ErrInvalidQuality is returned when a quality grade is outside [0, 5].
type ErrInvalidQuality struct {
	Quality int
}

func (e ErrInvalidQuality) Error() string {
	return fmt.Sprintf("quality must be between %d and %d, got %d", MinQuality, MaxQuality, e.Quality)
}

// ComputeNextState applies one SM-2 review with the given quality grade and
// returns the next scheduling state. The input state is not modified.
//
// quality < 3 resets the repetition streak and schedules the card for the
// next day. Otherwise the interval follows the 1, 6, ceil(interval * ease)
// progression, where the ease factor in effect before this review is used
// for the interval and then adjusted for the next one.
func ComputeNextState(state ReviewState, quality int, now time.Time) (ReviewState, error) {
	if quality < MinQuality || quality > MaxQuality {
		return ReviewState{}, ErrInvalidQuality{Quality: quality}
	}

	ease := state.EaseFactor
	if ease == 0 {
		ease = DefaultEaseFactor
	}

	next := state
	if quality < 3 {
		next.Repetition = 0
		next.IntervalDays = 1
	} else {
		next.Repetition = state.Repetition + 1
		switch next.Repetition {
		case 1:
			next.IntervalDays = 1
		case 2:
			next.IntervalDays = 6
		default:
			next.IntervalDays = int(math.Ceil(float64(state.IntervalDays) * ease))
		}
	}

	next.EaseFactor = updateEaseFactor(ease, quality)

	if next.IntervalDays > MaxIntervalDays {
		next.IntervalDays = MaxIntervalDays
	}
	next.NextReview = now.Add(time.Duration(next.IntervalDays) * 24 * time.Hour)

	return next, nil
}

// updateEaseFactor applies the standard SM-2 ease delta and clamps the
// result to MinEaseFactor.
func updateEaseFactor(ease float64, quality int) float64 {
	q := float64(quality)
	ease += 0.1 - (5-q)*(0.08+(5-q)*0.02)
	return math.Max(ease, MinEaseFactor)
}
