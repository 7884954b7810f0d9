package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/flashkit-cli/flashkit/internal/assessment"
	"github.com/flashkit-cli/flashkit/internal/deck"
	"github.com/flashkit-cli/flashkit/internal/history"
	"github.com/flashkit-cli/flashkit/internal/scheduler"
)

// ReviewCLI runs an interactive spaced repetition review over the due cards
// of one deck.
type ReviewCLI struct {
	*terminal
	repository deck.Repository
	history    history.Repository
	clock      assessment.Clock
}

// NewReviewCLI creates a review session. historyRepository may be nil when
// no database is configured.
func NewReviewCLI(repository deck.Repository, historyRepository history.Repository) *ReviewCLI {
	return &ReviewCLI{
		terminal:   newTerminal(),
		repository: repository,
		history:    historyRepository,
		clock:      assessment.SystemClock{},
	}
}

// Run reviews every due card of the deck, persisting the updated deck and
// recording the review history when a database is configured.
func (r *ReviewCLI) Run(ctx context.Context, deckName string) error {
	d, err := r.repository.FindDeck(deckName)
	if err != nil {
		return fmt.Errorf("repository.FindDeck(%s) > %w", deckName, err)
	}

	now := r.clock.Now()
	var dueIndexes []int
	for index := range d.Cards {
		if d.Cards[index].IsDue(now) {
			dueIndexes = append(dueIndexes, index)
		}
	}
	if len(dueIndexes) == 0 {
		fmt.Fprintf(r.stdoutWriter, "No cards due in %q. Come back later!\n", deckName)
		return nil
	}
	fmt.Fprintf(r.stdoutWriter, "%d cards due in %q.\n\n", len(dueIndexes), deckName)

	var logs []*history.ReviewLog
	reviewed, correct := 0, 0
	for position, index := range dueIndexes {
		card := &d.Cards[index]
		quality, err := r.reviewCard(position+1, len(dueIndexes), card)
		if err != nil {
			if errors.Is(err, errEnd) {
				break
			}
			return err
		}

		reviewedAt := r.clock.Now()
		if err := card.ApplyReview(quality, reviewedAt); err != nil {
			return fmt.Errorf("card.ApplyReview() > %w", err)
		}
		reviewed++
		if quality >= 3 {
			correct++
		}

		logs = append(logs, &history.ReviewLog{
			CardID:       card.ID,
			Quality:      quality,
			IntervalDays: card.Review.IntervalDays,
			EaseFactor:   card.Review.EaseFactor,
			Repetition:   card.Review.Repetition,
			QuizKind:     "review",
			ReviewedAt:   reviewedAt,
		})
		fmt.Fprintf(r.stdoutWriter, "Next review in %d day(s).\n\n", card.Review.IntervalDays)
	}

	if reviewed == 0 {
		return nil
	}
	if err := r.repository.SaveDeck(d); err != nil {
		return fmt.Errorf("repository.SaveDeck(%s) > %w", d.Name, err)
	}
	if r.history != nil {
		if err := r.history.BatchCreate(ctx, logs); err != nil {
			return fmt.Errorf("history.BatchCreate() > %w", err)
		}
	}

	_, _ = r.green.Fprintf(r.stdoutWriter, "Reviewed %d cards, %d remembered.\n", reviewed, correct)
	return nil
}

// reviewCard shows one card and reads a quality grade. errEnd means the
// user quit the session.
func (r *ReviewCLI) reviewCard(position, total int, card *deck.Card) (int, error) {
	fmt.Fprintf(r.stdoutWriter, "[%d/%d] ", position, total)
	_, _ = r.bold.Fprintf(r.stdoutWriter, "%s\n", card.Prompt)
	fmt.Fprintf(r.stdoutWriter, "Press Enter to reveal the answer, or q to quit: ")

	line, err := r.readLine()
	if err != nil {
		return 0, err
	}
	if line == "q" {
		return 0, errEnd
	}

	fmt.Fprintf(r.stdoutWriter, "Answer: %s\n", card.Answer)
	if card.Note != "" {
		_, _ = r.italic.Fprintf(r.stdoutWriter, "Note: %s\n", card.Note)
	}

	for {
		fmt.Fprintf(r.stdoutWriter, "How well did you remember? (%d-%d, q to quit): ",
			scheduler.MinQuality, scheduler.MaxQuality)
		line, err := r.readLine()
		if err != nil {
			return 0, err
		}
		if line == "q" {
			return 0, errEnd
		}

		quality, err := strconv.Atoi(line)
		if err != nil || quality < scheduler.MinQuality || quality > scheduler.MaxQuality {
			_, _ = r.red.Fprintf(r.stdoutWriter, "Please enter a number between %d and %d.\n",
				scheduler.MinQuality, scheduler.MaxQuality)
			continue
		}
		return quality, nil
	}
}
