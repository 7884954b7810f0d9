// Package deck defines the flashcard model and its YAML-backed storage.
package deck

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/flashkit-cli/flashkit/internal/scheduler"
)

// Difficulty labels how hard a card is for breakdown reporting and filtering.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Card is a single flashcard with its review statistics and scheduling state.
type Card struct {
	ID             string                `yaml:"id"`
	Prompt         string                `yaml:"prompt"`
	Answer         string                `yaml:"answer"`
	Note           string                `yaml:"note,omitempty"`
	Deck           string                `yaml:"deck,omitempty"`
	Difficulty     Difficulty            `yaml:"difficulty,omitempty"`
	Tags           []string              `yaml:"tags,omitempty"`
	CorrectCount   int                   `yaml:"correct_count,omitempty"`
	IncorrectCount int                   `yaml:"incorrect_count,omitempty"`
	LastReviewed   time.Time             `yaml:"last_reviewed,omitempty"`
	LastQuality    *int                  `yaml:"last_quality,omitempty"`
	Review         scheduler.ReviewState `yaml:"review,omitempty"`
}

// NewCard returns a card with a fresh ID and default scheduling state.
func NewCard(prompt, answer string) Card {
	return Card{
		ID:     uuid.NewString(),
		Prompt: prompt,
		Answer: answer,
		Review: scheduler.ReviewState{
			IntervalDays: 1,
			EaseFactor:   scheduler.DefaultEaseFactor,
		},
	}
}

// IsDue reports whether the card should be reviewed at the given time.
// A card that has never been reviewed is always due.
func (c *Card) IsDue(now time.Time) bool {
	if c.LastReviewed.IsZero() {
		return true
	}
	return !c.Review.NextReview.After(now)
}

// ApplyReview grades one review of the card, updating both the scheduling
// state and the card's statistics.
func (c *Card) ApplyReview(quality int, now time.Time) error {
	next, err := scheduler.ComputeNextState(c.Review, quality, now)
	if err != nil {
		return fmt.Errorf("scheduler.ComputeNextState() > %w", err)
	}

	c.Review = next
	if quality >= 3 {
		c.CorrectCount++
	} else {
		c.IncorrectCount++
	}
	c.LastReviewed = now
	c.LastQuality = &quality
	return nil
}

func (c *Card) HasTag(tag string) bool {
	return slices.Contains(c.Tags, tag)
}
