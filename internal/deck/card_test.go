package deck

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashkit-cli/flashkit/internal/scheduler"
)

func TestNewCard(t *testing.T) {
	card := NewCard("hola", "hello")

	assert.NotEmpty(t, card.ID)
	assert.Equal(t, "hola", card.Prompt)
	assert.Equal(t, "hello", card.Answer)
	assert.Equal(t, 1, card.Review.IntervalDays)
	assert.Equal(t, scheduler.DefaultEaseFactor, card.Review.EaseFactor)

	other := NewCard("adios", "goodbye")
	assert.NotEqual(t, card.ID, other.ID)
}

func TestCard_IsDue(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		card Card
		want bool
	}{
		{
			name: "never reviewed is always due",
			card: Card{Review: scheduler.ReviewState{NextReview: now.Add(48 * time.Hour)}},
			want: true,
		},
		{
			name: "next review in the past",
			card: Card{
				LastReviewed: now.Add(-72 * time.Hour),
				Review:       scheduler.ReviewState{NextReview: now.Add(-time.Hour)},
			},
			want: true,
		},
		{
			name: "next review exactly now",
			card: Card{
				LastReviewed: now.Add(-24 * time.Hour),
				Review:       scheduler.ReviewState{NextReview: now},
			},
			want: true,
		},
		{
			name: "next review in the future",
			card: Card{
				LastReviewed: now.Add(-time.Hour),
				Review:       scheduler.ReviewState{NextReview: now.Add(time.Hour)},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.card.IsDue(now))
		})
	}
}

func TestCard_ApplyReview(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("correct answer", func(t *testing.T) {
		card := NewCard("hola", "hello")
		require.NoError(t, card.ApplyReview(5, now))

		assert.Equal(t, 1, card.CorrectCount)
		assert.Equal(t, 0, card.IncorrectCount)
		assert.Equal(t, now, card.LastReviewed)
		require.NotNil(t, card.LastQuality)
		assert.Equal(t, 5, *card.LastQuality)
		assert.Equal(t, 1, card.Review.Repetition)
	})

	t.Run("wrong answer", func(t *testing.T) {
		card := NewCard("hola", "hello")
		card.Review.Repetition = 3
		card.Review.IntervalDays = 15
		require.NoError(t, card.ApplyReview(1, now))

		assert.Equal(t, 0, card.CorrectCount)
		assert.Equal(t, 1, card.IncorrectCount)
		assert.Equal(t, 0, card.Review.Repetition)
		assert.Equal(t, 1, card.Review.IntervalDays)
	})

	t.Run("invalid quality leaves the card untouched", func(t *testing.T) {
		card := NewCard("hola", "hello")
		err := card.ApplyReview(7, now)
		assert.Error(t, err)
		assert.Zero(t, card.CorrectCount)
		assert.True(t, card.LastReviewed.IsZero())
	})
}
