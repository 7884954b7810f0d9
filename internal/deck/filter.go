package deck

import "time"

// Filter selects cards for a review or quiz pool. Zero-valued fields match
// every card.
type Filter struct {
	Difficulty Difficulty
	Tag        string
	DueBefore  time.Time
}

// Apply returns the cards matching every set criterion, preserving order.
func (f Filter) Apply(cards []Card) []Card {
	var matched []Card
	for _, card := range cards {
		if f.Difficulty != "" && card.Difficulty != f.Difficulty {
			continue
		}
		if f.Tag != "" && !card.HasTag(f.Tag) {
			continue
		}
		if !f.DueBefore.IsZero() && !card.IsDue(f.DueBefore) {
			continue
		}
		matched = append(matched, card)
	}
	return matched
}

// DueCards returns the cards due for review at the given time.
func DueCards(cards []Card, now time.Time) []Card {
	return Filter{DueBefore: now}.Apply(cards)
}
