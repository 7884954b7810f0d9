// Package assessment implements timed quiz sessions over a pool of
// flashcards: question generation, answer checking and result aggregation.
package assessment

import "github.com/flashkit-cli/flashkit/internal/deck"

// Kind identifies how a question is asked and answered.
type Kind string

const (
	KindSingleChoice Kind = "single_choice"
	KindFreeText     Kind = "free_text"
	KindPairMatching Kind = "pair_matching"
	KindBoolean      Kind = "boolean"

	// KindMixed rotates through the concrete kinds during generation.
	KindMixed Kind = "mixed"
)

// IsValid reports whether k names a concrete question kind. KindMixed is a
// generation setting, not a concrete kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindSingleChoice, KindFreeText, KindPairMatching, KindBoolean:
		return true
	}
	return false
}

// Question is one generated quiz item together with its submission state.
type Question struct {
	ID      string
	Kind    Kind
	Prompt  string
	Options []string
	Correct Answer

	CardID     string
	DeckName   string
	Difficulty deck.Difficulty
	Tags       []string

	Submitted        Answer
	RawSubmitted     string
	Answered         bool
	Skipped          bool
	IsCorrect        bool
	TimeSpentSeconds int
}

func (q *Question) record(raw string, submitted Answer, correct bool, seconds int) {
	q.RawSubmitted = raw
	q.Submitted = submitted
	q.Answered = true
	q.Skipped = false
	q.IsCorrect = correct
	q.TimeSpentSeconds = seconds
}

func (q *Question) markSkipped(seconds int) {
	q.Answered = false
	q.Skipped = true
	q.IsCorrect = false
	q.TimeSpentSeconds = seconds
}
