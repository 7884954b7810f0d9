package assessment

import "fmt"

const (
	// DefaultRevealSeconds is how long the correct answer stays on screen
	// in instant feedback mode before the session advances.
	DefaultRevealSeconds = 2

	// pairGroupSize is the number of cards combined into one
	// pair-matching question.
	pairGroupSize = 4
)

// Settings configures one quiz session.
type Settings struct {
	Kind               Kind `yaml:"kind"`
	QuestionCount      int  `yaml:"question_count"`
	TotalSeconds       int  `yaml:"total_seconds,omitempty"`
	PerQuestionSeconds int  `yaml:"per_question_seconds,omitempty"`
	RevealSeconds      int  `yaml:"reveal_seconds,omitempty"`
	RandomOrder        bool `yaml:"random_order,omitempty"`
	RevealAnswer       bool `yaml:"reveal_answer,omitempty"`
	InstantFeedback    bool `yaml:"instant_feedback,omitempty"`
	AllowSkip          bool `yaml:"allow_skip,omitempty"`
}

func (s Settings) Validate() error {
	if !s.Kind.IsValid() && s.Kind != KindMixed {
		return fmt.Errorf("unknown question kind %q", s.Kind)
	}
	if s.QuestionCount <= 0 {
		return fmt.Errorf("question count must be positive, got %d", s.QuestionCount)
	}
	if s.TotalSeconds < 0 || s.PerQuestionSeconds < 0 || s.RevealSeconds < 0 {
		return fmt.Errorf("timer values must not be negative")
	}
	return nil
}

func (s Settings) revealSeconds() int {
	if s.RevealSeconds > 0 {
		return s.RevealSeconds
	}
	return DefaultRevealSeconds
}
