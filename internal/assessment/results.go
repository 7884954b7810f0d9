package assessment

import (
	"math"
	"time"

	"github.com/flashkit-cli/flashkit/internal/deck"
)

// PointsPerCorrectAnswer is the score awarded per correct answer.
const PointsPerCorrectAnswer = 100

// Breakdown is the correct/total tally for one slice of the questions.
type Breakdown struct {
	Correct    int `yaml:"correct"`
	Total      int `yaml:"total"`
	Percentage int `yaml:"percentage"`
}

// Performance summarizes answer timing over the session.
type Performance struct {
	FastestSeconds int     `yaml:"fastest_seconds"`
	SlowestSeconds int     `yaml:"slowest_seconds"`
	Consistency    float64 `yaml:"consistency"`
}

// Results is the final outcome of a completed session.
type Results struct {
	SessionID string `yaml:"session_id"`

	TotalScore     int `yaml:"total_score"`
	Percentage     int `yaml:"percentage"`
	TotalQuestions int `yaml:"total_questions"`
	CorrectAnswers int `yaml:"correct_answers"`
	WrongAnswers   int `yaml:"wrong_answers"`
	SkippedAnswers int `yaml:"skipped_answers"`

	TimeSpentSeconds          int     `yaml:"time_spent_seconds"`
	AverageSecondsPerQuestion float64 `yaml:"average_seconds_per_question"`

	ByKind       map[Kind]Breakdown            `yaml:"by_kind"`
	ByDifficulty map[deck.Difficulty]Breakdown `yaml:"by_difficulty"`
	ByDeck       map[string]Breakdown          `yaml:"by_deck"`

	Performance Performance `yaml:"performance"`

	StartedAt time.Time `yaml:"started_at"`
	EndedAt   time.Time `yaml:"ended_at"`
}

// Aggregate computes the results for a finished question list.
// perQuestionDefault substitutes the recorded time for questions that never
// got one, such as questions left behind when the total timer expired.
func Aggregate(questions []Question, startedAt, endedAt time.Time, perQuestionDefault int) Results {
	results := Results{
		TotalQuestions: len(questions),
		ByKind:         map[Kind]Breakdown{},
		ByDifficulty:   map[deck.Difficulty]Breakdown{},
		ByDeck:         map[string]Breakdown{},
		StartedAt:      startedAt,
		EndedAt:        endedAt,
	}

	times := make([]int, 0, len(questions))
	for _, question := range questions {
		switch {
		case question.Answered && question.IsCorrect:
			results.CorrectAnswers++
		case question.Answered:
			results.WrongAnswers++
		default:
			results.SkippedAnswers++
		}

		addToBreakdown(results.ByKind, question.Kind, question.IsCorrect)
		if question.Difficulty != "" {
			addToBreakdown(results.ByDifficulty, question.Difficulty, question.IsCorrect)
		}
		if question.DeckName != "" {
			addToBreakdown(results.ByDeck, question.DeckName, question.IsCorrect)
		}

		seconds := question.TimeSpentSeconds
		if seconds == 0 && !question.Answered {
			seconds = perQuestionDefault
		}
		times = append(times, seconds)
	}

	results.TotalScore = results.CorrectAnswers * PointsPerCorrectAnswer
	if results.TotalQuestions > 0 {
		results.Percentage = roundPercentage(results.CorrectAnswers, results.TotalQuestions)
	}

	if !startedAt.IsZero() && !endedAt.Before(startedAt) {
		results.TimeSpentSeconds = int(endedAt.Sub(startedAt).Seconds())
	}
	if results.TotalQuestions > 0 {
		results.AverageSecondsPerQuestion = roundTwoDecimals(
			float64(results.TimeSpentSeconds) / float64(results.TotalQuestions))
	}

	finalizeBreakdowns(results.ByKind)
	finalizeBreakdowns(results.ByDifficulty)
	finalizeBreakdowns(results.ByDeck)

	results.Performance = summarizeTiming(times)
	return results
}

func addToBreakdown[K comparable](breakdowns map[K]Breakdown, key K, correct bool) {
	breakdown := breakdowns[key]
	breakdown.Total++
	if correct {
		breakdown.Correct++
	}
	breakdowns[key] = breakdown
}

func finalizeBreakdowns[K comparable](breakdowns map[K]Breakdown) {
	for key, breakdown := range breakdowns {
		breakdown.Percentage = roundPercentage(breakdown.Correct, breakdown.Total)
		breakdowns[key] = breakdown
	}
}

// summarizeTiming computes the fastest and slowest answer times and a
// consistency score of max(0, 1 - stddev/mean).
func summarizeTiming(times []int) Performance {
	if len(times) == 0 {
		return Performance{}
	}

	fastest := times[0]
	slowest := times[0]
	sum := 0
	for _, seconds := range times {
		fastest = min(fastest, seconds)
		slowest = max(slowest, seconds)
		sum += seconds
	}

	mean := float64(sum) / float64(len(times))
	if mean == 0 {
		return Performance{FastestSeconds: fastest, SlowestSeconds: slowest}
	}

	variance := 0.0
	for _, seconds := range times {
		deviation := float64(seconds) - mean
		variance += deviation * deviation
	}
	variance /= float64(len(times))
	stddev := math.Sqrt(variance)

	return Performance{
		FastestSeconds: fastest,
		SlowestSeconds: slowest,
		Consistency:    roundTwoDecimals(math.Max(0, 1-stddev/mean)),
	}
}

func roundPercentage(correct, total int) int {
	return int(math.Round(float64(correct) / float64(total) * 100))
}

func roundTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}
