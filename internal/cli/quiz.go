package cli

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/flashkit-cli/flashkit/internal/assessment"
	"github.com/flashkit-cli/flashkit/internal/deck"
)

// QuizCLI drives an assessment session in the terminal.
//
// The terminal blocks on stdin, so timers are caught up after each answer:
// the elapsed wall time since the question was shown is fed to the session
// as ticks before the answer is submitted.
type QuizCLI struct {
	*terminal
	repository deck.Repository
	settings   assessment.Settings
	filter     deck.Filter
	clock      assessment.Clock
}

func NewQuizCLI(repository deck.Repository, settings assessment.Settings, filter deck.Filter) *QuizCLI {
	return &QuizCLI{
		terminal:   newTerminal(),
		repository: repository,
		settings:   settings,
		filter:     filter,
		clock:      assessment.SystemClock{},
	}
}

// Run quizzes the user over the named deck and returns the session results.
// A nil result without error means the user cancelled.
func (q *QuizCLI) Run(deckName string) (*assessment.Results, error) {
	d, err := q.repository.FindDeck(deckName)
	if err != nil {
		return nil, fmt.Errorf("repository.FindDeck(%s) > %w", deckName, err)
	}

	pool := q.filter.Apply(d.Cards)
	session, err := assessment.NewSession(q.settings, pool)
	if err != nil {
		return nil, fmt.Errorf("assessment.NewSession() > %w", err)
	}
	if err := session.Start(); err != nil {
		return nil, fmt.Errorf("session.Start() > %w", err)
	}

	fmt.Fprintf(q.stdoutWriter, "Quiz on %q: %d questions. Type q to quit", deckName, len(session.Questions()))
	if q.settings.AllowSkip {
		fmt.Fprintf(q.stdoutWriter, ", s to skip")
	}
	fmt.Fprintf(q.stdoutWriter, ".\n\n")

	for session.State() == assessment.StateActive {
		question, err := session.CurrentQuestion()
		if err != nil {
			break
		}
		index := session.CurrentIndex()
		q.printQuestion(index, len(session.Questions()), question)

		askedAt := q.clock.Now()
		line, err := q.readLine()
		if err != nil {
			if errors.Is(err, errEnd) {
				session.Cancel()
				fmt.Fprintf(q.stdoutWriter, "Quiz cancelled.\n")
				return nil, nil
			}
			return nil, err
		}

		if expired := q.catchUpTicks(session, askedAt, index); expired {
			continue
		}

		if line == "q" {
			session.Cancel()
			fmt.Fprintf(q.stdoutWriter, "Quiz cancelled.\n")
			return nil, nil
		}
		if line == "s" && q.settings.AllowSkip {
			if err := session.Skip(); err != nil {
				_, _ = q.red.Fprintf(q.stdoutWriter, "%v\n", err)
			}
			continue
		}

		correct, err := q.submit(session, question, line)
		if err != nil {
			if errors.Is(err, errQuestionOver) {
				continue
			}
			return nil, err
		}
		q.printFeedback(session, question, correct)
	}

	results, err := session.Complete()
	if err != nil {
		return nil, fmt.Errorf("session.Complete() > %w", err)
	}
	q.printResults(results)
	return &results, nil
}

var errQuestionOver = errors.New("question over")

// catchUpTicks feeds the elapsed wall time into the session. It reports
// whether the current question is no longer answerable because a timer
// fired meanwhile.
func (q *QuizCLI) catchUpTicks(session *assessment.Session, askedAt time.Time, index int) bool {
	elapsed := int(q.clock.Now().Sub(askedAt).Seconds())
	for i := 0; i < elapsed; i++ {
		if session.State() != assessment.StateActive {
			break
		}
		session.Tick()
	}
	if session.State() != assessment.StateActive {
		return true
	}
	if session.CurrentIndex() != index {
		_, _ = q.red.Fprintf(q.stdoutWriter, "Time is up for that question.\n\n")
		return true
	}
	return false
}

func (q *QuizCLI) submit(session *assessment.Session, question *assessment.Question, line string) (bool, error) {
	answer, parseErr := parseAnswer(question, line)
	if parseErr != nil {
		_, _ = q.red.Fprintf(q.stdoutWriter, "%v\n", parseErr)
		return false, errQuestionOver
	}

	correct, err := session.SubmitAnswer(answer)
	if err != nil {
		var stateErr assessment.ErrInvalidState
		if errors.As(err, &stateErr) {
			return false, errQuestionOver
		}
		return false, fmt.Errorf("session.SubmitAnswer() > %w", err)
	}
	return correct, nil
}

func (q *QuizCLI) printQuestion(index, total int, question *assessment.Question) {
	fmt.Fprintf(q.stdoutWriter, "[%d/%d] ", index+1, total)
	_, _ = q.bold.Fprintf(q.stdoutWriter, "%s\n", question.Prompt)

	switch question.Kind {
	case assessment.KindSingleChoice:
		for i, option := range question.Options {
			fmt.Fprintf(q.stdoutWriter, "  %d) %s\n", i+1, option)
		}
		fmt.Fprintf(q.stdoutWriter, "Answer (number or text): ")
	case assessment.KindBoolean:
		fmt.Fprintf(q.stdoutWriter, "Answer (true/false): ")
	case assessment.KindPairMatching:
		prompts, answers := pairChoices(question)
		fmt.Fprintf(q.stdoutWriter, "  Prompts: %s\n", strings.Join(prompts, ", "))
		fmt.Fprintf(q.stdoutWriter, "  Answers: %s\n", strings.Join(answers, ", "))
		fmt.Fprintf(q.stdoutWriter, "Answer (prompt=answer, comma separated): ")
	default:
		fmt.Fprintf(q.stdoutWriter, "Answer: ")
	}
}

func (q *QuizCLI) printFeedback(session *assessment.Session, question *assessment.Question, correct bool) {
	showAnswer := q.settings.InstantFeedback || q.settings.RevealAnswer
	if correct {
		_, _ = q.green.Fprintf(q.stdoutWriter, "Correct!")
		if streak := session.Progress().Streak; streak > 1 {
			fmt.Fprintf(q.stdoutWriter, " (%d in a row)", streak)
		}
		fmt.Fprintf(q.stdoutWriter, "\n\n")
	} else {
		_, _ = q.red.Fprintf(q.stdoutWriter, "Wrong.")
		if showAnswer {
			fmt.Fprintf(q.stdoutWriter, " The answer was: %s", formatCorrectAnswer(question))
		}
		fmt.Fprintf(q.stdoutWriter, "\n\n")
	}

	// The terminal has no non-interactive reveal pause; consume it so the
	// session advances immediately.
	for session.Progress().Revealing {
		session.Tick()
	}
}

func (q *QuizCLI) printResults(results assessment.Results) {
	fmt.Fprintf(q.stdoutWriter, "\n")
	_, _ = q.bold.Fprintf(q.stdoutWriter, "Results\n")
	fmt.Fprintf(q.stdoutWriter, "Score: %d (%d%%)\n", results.TotalScore, results.Percentage)
	_, _ = q.green.Fprintf(q.stdoutWriter, "Correct: %d", results.CorrectAnswers)
	fmt.Fprintf(q.stdoutWriter, "  ")
	_, _ = q.red.Fprintf(q.stdoutWriter, "Wrong: %d", results.WrongAnswers)
	fmt.Fprintf(q.stdoutWriter, "  Skipped: %d\n", results.SkippedAnswers)
	fmt.Fprintf(q.stdoutWriter, "Time: %ds (%.2fs per question, consistency %.2f)\n",
		results.TimeSpentSeconds, results.AverageSecondsPerQuestion, results.Performance.Consistency)
}

// parseAnswer turns a typed line into a structured answer for the question.
func parseAnswer(question *assessment.Question, line string) (assessment.Answer, error) {
	switch question.Kind {
	case assessment.KindSingleChoice:
		if number, err := strconv.Atoi(line); err == nil {
			if number < 1 || number > len(question.Options) {
				return assessment.Answer{}, fmt.Errorf("pick an option between 1 and %d", len(question.Options))
			}
			return assessment.NewTextAnswer(question.Kind, question.Options[number-1]), nil
		}
		return assessment.NewTextAnswer(question.Kind, line), nil
	case assessment.KindPairMatching:
		pairs, err := parsePairs(line)
		if err != nil {
			return assessment.Answer{}, err
		}
		return assessment.NewPairAnswer(pairs), nil
	default:
		return assessment.NewTextAnswer(question.Kind, line), nil
	}
}

// parsePairs parses "a=b, c=d" into a map.
func parsePairs(line string) (map[string]string, error) {
	pairs := map[string]string{}
	for _, part := range strings.Split(line, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, found := strings.Cut(part, "=")
		if !found {
			return nil, fmt.Errorf("%q is not a prompt=answer pair", part)
		}
		pairs[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("enter at least one prompt=answer pair")
	}
	return pairs, nil
}

// pairChoices returns the prompts and answers each sorted alphabetically,
// so the two columns do not line up and give away the mapping.
func pairChoices(question *assessment.Question) ([]string, []string) {
	prompts := make([]string, 0, len(question.Correct.Pairs))
	answers := make([]string, 0, len(question.Correct.Pairs))
	for prompt, answer := range question.Correct.Pairs {
		prompts = append(prompts, prompt)
		answers = append(answers, answer)
	}
	sort.Strings(prompts)
	sort.Strings(answers)
	return prompts, answers
}

func formatCorrectAnswer(question *assessment.Question) string {
	if question.Kind != assessment.KindPairMatching {
		return question.Correct.Text
	}

	prompts, _ := pairChoices(question)
	parts := make([]string, 0, len(prompts))
	for _, prompt := range prompts {
		parts = append(parts, fmt.Sprintf("%s=%s", prompt, question.Correct.Pairs[prompt]))
	}
	return strings.Join(parts, ", ")
}
