package deck

import (
	"fmt"
	"strings"

	"github.com/flashkit-cli/flashkit/internal/scheduler"
)

// ValidationError describes one problem found in a deck file.
type ValidationError struct {
	Deck        string
	Location    string
	Message     string
	Suggestions []string
}

func (e ValidationError) Error() string {
	message := fmt.Sprintf("deck %q: %s: %s", e.Deck, e.Location, e.Message)
	if len(e.Suggestions) > 0 {
		message += fmt.Sprintf(" [Suggestion: %s]", strings.Join(e.Suggestions, "; "))
	}
	return message
}

// Validate checks deck-level and card-level invariants and returns every
// problem found.
func (d *Deck) Validate() []ValidationError {
	var errs []ValidationError
	if d.Name == "" {
		errs = append(errs, ValidationError{
			Deck:     d.Name,
			Location: "deck",
			Message:  "deck name must not be empty",
		})
	}

	seen := map[string]int{}
	for i, card := range d.Cards {
		location := fmt.Sprintf("cards[%d]", i)
		if card.Prompt == "" {
			errs = append(errs, ValidationError{
				Deck:     d.Name,
				Location: location,
				Message:  "prompt must not be empty",
			})
		}
		if card.Answer == "" {
			errs = append(errs, ValidationError{
				Deck:     d.Name,
				Location: location,
				Message:  "answer must not be empty",
			})
		}
		if card.ID != "" {
			if first, ok := seen[card.ID]; ok {
				errs = append(errs, ValidationError{
					Deck:     d.Name,
					Location: location,
					Message:  fmt.Sprintf("duplicate card ID %q, first used by cards[%d]", card.ID, first),
				})
			} else {
				seen[card.ID] = i
			}
		}
		if card.Difficulty != "" && !card.Difficulty.IsValid() {
			errs = append(errs, ValidationError{
				Deck:        d.Name,
				Location:    location,
				Message:     fmt.Sprintf("unknown difficulty %q", card.Difficulty),
				Suggestions: []string{"valid difficulties are: 'easy', 'medium', 'hard'"},
			})
		}
		if card.CorrectCount < 0 || card.IncorrectCount < 0 {
			errs = append(errs, ValidationError{
				Deck:     d.Name,
				Location: location,
				Message:  "review counts must not be negative",
			})
		}
		if card.Review.EaseFactor != 0 && card.Review.EaseFactor < scheduler.MinEaseFactor {
			errs = append(errs, ValidationError{
				Deck:     d.Name,
				Location: location,
				Message:  fmt.Sprintf("ease factor %.2f is below the minimum %.1f", card.Review.EaseFactor, scheduler.MinEaseFactor),
			})
		}
		if card.Review.IntervalDays > scheduler.MaxIntervalDays {
			errs = append(errs, ValidationError{
				Deck:     d.Name,
				Location: location,
				Message:  fmt.Sprintf("interval %d exceeds the maximum %d days", card.Review.IntervalDays, scheduler.MaxIntervalDays),
			})
		}
		if card.LastQuality != nil && (*card.LastQuality < scheduler.MinQuality || *card.LastQuality > scheduler.MaxQuality) {
			errs = append(errs, ValidationError{
				Deck:     d.Name,
				Location: location,
				Message:  fmt.Sprintf("last quality %d is outside [0, 5]", *card.LastQuality),
			})
		}
	}
	return errs
}
