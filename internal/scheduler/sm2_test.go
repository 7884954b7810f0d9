package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeNextState(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		state          ReviewState
		quality        int
		wantInterval   int
		wantRepetition int
		wantEase       float64
		wantErr        bool
	}{
		{
			name:           "first correct review",
			state:          ReviewState{IntervalDays: 1, Repetition: 0, EaseFactor: 2.5},
			quality:        5,
			wantInterval:   1,
			wantRepetition: 1,
			wantEase:       2.6,
		},
		{
			name:           "second correct review",
			state:          ReviewState{IntervalDays: 1, Repetition: 1, EaseFactor: 2.6},
			quality:        4,
			wantInterval:   6,
			wantRepetition: 2,
			wantEase:       2.6,
		},
		{
			name:           "third correct review grows by ease",
			state:          ReviewState{IntervalDays: 6, Repetition: 2, EaseFactor: 2.6},
			quality:        5,
			wantInterval:   16, // ceil(6 * 2.6)
			wantRepetition: 3,
			wantEase:       2.7,
		},
		{
			name:           "quality 3 decreases ease slightly",
			state:          ReviewState{IntervalDays: 6, Repetition: 2, EaseFactor: 2.5},
			quality:        3,
			wantInterval:   15, // ceil(6 * 2.5)
			wantRepetition: 3,
			wantEase:       2.36,
		},
		{
			name:           "wrong answer resets repetition and interval",
			state:          ReviewState{IntervalDays: 40, Repetition: 5, EaseFactor: 2.2},
			quality:        2,
			wantInterval:   1,
			wantRepetition: 0,
			wantEase:       2.02, // 2.2 - 0.18
		},
		{
			name:           "blackout keeps ease above floor",
			state:          ReviewState{IntervalDays: 6, Repetition: 2, EaseFactor: 1.4},
			quality:        0,
			wantInterval:   1,
			wantRepetition: 0,
			wantEase:       MinEaseFactor,
		},
		{
			name:           "interval capped at 180 days",
			state:          ReviewState{IntervalDays: 150, Repetition: 7, EaseFactor: 2.5},
			quality:        5,
			wantInterval:   MaxIntervalDays,
			wantRepetition: 8,
			wantEase:       2.6,
		},
		{
			name:           "zero ease defaults to 2.5",
			state:          ReviewState{IntervalDays: 6, Repetition: 2},
			quality:        4,
			wantInterval:   15, // ceil(6 * 2.5)
			wantRepetition: 3,
			wantEase:       2.5,
		},
		{
			name:    "negative quality rejected",
			state:   ReviewState{EaseFactor: 2.5},
			quality: -1,
			wantErr: true,
		},
		{
			name:    "quality above 5 rejected",
			state:   ReviewState{EaseFactor: 2.5},
			quality: 6,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeNextState(tt.state, tt.quality, now)
			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorAs(t, err, &ErrInvalidQuality{})
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.wantInterval, got.IntervalDays)
			assert.Equal(t, tt.wantRepetition, got.Repetition)
			assert.InDelta(t, tt.wantEase, got.EaseFactor, 0.001)
			assert.Equal(t, now.Add(time.Duration(tt.wantInterval)*24*time.Hour), got.NextReview)
		})
	}
}

func TestComputeNextState_IsPure(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	state := ReviewState{IntervalDays: 6, Repetition: 2, EaseFactor: 2.5}

	first, err := ComputeNextState(state, 4, now)
	require.NoError(t, err)
	second, err := ComputeNextState(state, 4, now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, ReviewState{IntervalDays: 6, Repetition: 2, EaseFactor: 2.5}, state)
}

func TestComputeNextState_IntervalProgression(t *testing.T) {
	// A fresh card reviewed repeatedly with passing grades follows the
	// 1, 6, ceil(prev * ease) progression and never shrinks.
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	state := ReviewState{IntervalDays: 1, Repetition: 0, EaseFactor: DefaultEaseFactor}

	previous := 0
	for i := 0; i < 20; i++ {
		next, err := ComputeNextState(state, 5, now)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, next.IntervalDays, previous)
		assert.LessOrEqual(t, next.IntervalDays, MaxIntervalDays)
		previous = next.IntervalDays
		state = next
		now = next.NextReview
	}
	assert.Equal(t, MaxIntervalDays, state.IntervalDays)
}

func TestComputeNextState_FailureAlwaysResets(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, quality := range []int{0, 1, 2} {
		for _, repetition := range []int{0, 1, 2, 5, 12} {
			state := ReviewState{IntervalDays: 90, Repetition: repetition, EaseFactor: 2.0}
			next, err := ComputeNextState(state, quality, now)
			require.NoError(t, err)

			assert.Equal(t, 0, next.Repetition)
			assert.Equal(t, 1, next.IntervalDays)
		}
	}
}

func TestComputeNextState_EaseNeverBelowFloor(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	state := ReviewState{IntervalDays: 1, Repetition: 0, EaseFactor: DefaultEaseFactor}

	// Alternate every quality grade for a long run; the ease factor must
	// stay at or above the floor throughout.
	for i := 0; i < 120; i++ {
		next, err := ComputeNextState(state, i%(MaxQuality+1), now)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, next.EaseFactor, MinEaseFactor)
		state = next
	}
}
