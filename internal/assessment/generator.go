package assessment

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/flashkit-cli/flashkit/internal/deck"
)

var mixedKinds = []Kind{KindSingleChoice, KindFreeText, KindPairMatching, KindBoolean}

// generateQuestions builds settings.QuestionCount questions from the pool.
// The caller has already verified the pool is large enough.
func generateQuestions(settings Settings, pool []deck.Card, rng *rand.Rand) []Question {
	cards := make([]deck.Card, len(pool))
	copy(cards, pool)
	if settings.RandomOrder {
		rng.Shuffle(len(cards), func(i, j int) {
			cards[i], cards[j] = cards[j], cards[i]
		})
	}

	questions := make([]Question, 0, settings.QuestionCount)
	for i := 0; i < settings.QuestionCount; i++ {
		kind := settings.Kind
		if kind == KindMixed {
			kind = mixedKinds[i%len(mixedKinds)]
		}
		questions = append(questions, newQuestion(kind, cards[i], cards, rng))
	}
	return questions
}

func newQuestion(kind Kind, card deck.Card, pool []deck.Card, rng *rand.Rand) Question {
	question := Question{
		ID:         uuid.NewString(),
		Kind:       kind,
		CardID:     card.ID,
		DeckName:   card.Deck,
		Difficulty: card.Difficulty,
		Tags:       card.Tags,
	}

	switch kind {
	case KindSingleChoice:
		question.Prompt = fmt.Sprintf("What does %q mean?", card.Prompt)
		question.Options = buildOptions(card, pool, rng)
		question.Correct = NewTextAnswer(kind, card.Answer)
	case KindBoolean:
		shown := card.Answer
		truth := "true"
		if rng.Intn(2) == 0 {
			if distractor, ok := pickDistractor(card, pool, rng); ok {
				shown = distractor
				truth = "false"
			}
		}
		question.Prompt = fmt.Sprintf("Does %q mean %q?", card.Prompt, shown)
		question.Options = []string{"true", "false"}
		question.Correct = NewTextAnswer(kind, truth)
	case KindPairMatching:
		question.Prompt = "Match each prompt with its answer"
		question.Correct = NewPairAnswer(buildPairs(card, pool, rng))
	default:
		question.Prompt = fmt.Sprintf("What does %q mean?", card.Prompt)
		question.Correct = NewTextAnswer(KindFreeText, card.Answer)
	}
	return question
}

// buildOptions returns the canonical answer plus up to three distractors
// drawn from other cards, shuffled.
func buildOptions(card deck.Card, pool []deck.Card, rng *rand.Rand) []string {
	options := append([]string{card.Answer}, sampleOtherAnswers(card, pool, rng, 3)...)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

func pickDistractor(card deck.Card, pool []deck.Card, rng *rand.Rand) (string, bool) {
	answers := sampleOtherAnswers(card, pool, rng, 1)
	if len(answers) == 0 {
		return "", false
	}
	return answers[0], true
}

// buildPairs combines the primary card with up to three other cards into a
// prompt-to-answer map.
func buildPairs(card deck.Card, pool []deck.Card, rng *rand.Rand) map[string]string {
	pairs := map[string]string{card.Prompt: card.Answer}
	for _, other := range sampleOtherCards(card, pool, rng, pairGroupSize-1) {
		pairs[other.Prompt] = other.Answer
	}
	return pairs
}

func sampleOtherAnswers(card deck.Card, pool []deck.Card, rng *rand.Rand, count int) []string {
	others := sampleOtherCards(card, pool, rng, count)
	answers := make([]string, 0, len(others))
	for _, other := range others {
		answers = append(answers, other.Answer)
	}
	return answers
}

// sampleOtherCards picks up to count cards with answers distinct from the
// primary card's answer and from each other.
func sampleOtherCards(card deck.Card, pool []deck.Card, rng *rand.Rand, count int) []deck.Card {
	seen := map[string]bool{card.Answer: true}
	var candidates []deck.Card
	for _, other := range pool {
		if other.ID == card.ID || seen[other.Answer] {
			continue
		}
		seen[other.Answer] = true
		candidates = append(candidates, other)
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > count {
		candidates = candidates[:count]
	}
	return candidates
}
