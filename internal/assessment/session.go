package assessment

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/flashkit-cli/flashkit/internal/deck"
)

// State is the lifecycle state of a session.
type State string

const (
	StateReady     State = "ready"
	StateActive    State = "active"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
)

var ErrCancelled = errors.New("session was cancelled")

// Session is one quiz run over a pool of cards.
//
// Timers advance only through Tick, which the caller drives once per second;
// a pause therefore has up to one second of jitter. A Session is not safe
// for concurrent use.
type Session struct {
	id        string
	settings  Settings
	questions []Question
	state     State
	cancelled bool
	current   int

	clock Clock
	rng   *rand.Rand

	startedAt time.Time
	endedAt   time.Time

	elapsedSeconds    int
	totalRemaining    int
	questionRemaining int
	questionElapsed   int
	revealRemaining   int
	streak            int

	results *Results
}

// Option configures a Session at construction.
type Option func(*Session)

func WithClock(clock Clock) Option {
	return func(s *Session) {
		s.clock = clock
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

func WithID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

// NewSession validates the settings against the pool and generates the
// session's questions.
func NewSession(settings Settings, pool []deck.Card, opts ...Option) (*Session, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("settings.Validate() > %w", err)
	}
	if settings.QuestionCount > len(pool) {
		return nil, ErrInsufficientPool{Requested: settings.QuestionCount, Available: len(pool)}
	}

	session := &Session{
		settings: settings,
		state:    StateReady,
	}
	for _, opt := range opts {
		opt(session)
	}
	if session.id == "" {
		session.id = uuid.NewString()
	}
	if session.clock == nil {
		session.clock = SystemClock{}
	}
	if session.rng == nil {
		session.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	session.questions = generateQuestions(settings, pool, session.rng)
	return session, nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Settings() Settings {
	return s.settings
}

// Questions returns a copy of the session's questions.
func (s *Session) Questions() []Question {
	questions := make([]Question, len(s.questions))
	copy(questions, s.questions)
	return questions
}

func (s *Session) CurrentIndex() int {
	return s.current
}

// Start activates a ready session and arms its timers.
func (s *Session) Start() error {
	if s.state != StateReady {
		return ErrInvalidState{Operation: "start", State: s.state}
	}
	if len(s.questions) == 0 {
		return ErrNoQuestions
	}

	s.state = StateActive
	s.startedAt = s.clock.Now()
	s.totalRemaining = s.settings.TotalSeconds
	s.questionRemaining = s.settings.PerQuestionSeconds
	return nil
}

// Pause freezes every countdown until Resume.
func (s *Session) Pause() error {
	if s.state != StateActive {
		return ErrInvalidState{Operation: "pause", State: s.state}
	}
	s.state = StatePaused
	return nil
}

func (s *Session) Resume() error {
	if s.state != StatePaused {
		return ErrInvalidState{Operation: "resume", State: s.state}
	}
	s.state = StateActive
	return nil
}

func (s *Session) CurrentQuestion() (*Question, error) {
	if s.state == StateCompleted {
		return nil, ErrInvalidState{Operation: "read current question", State: s.state}
	}
	if s.current >= len(s.questions) {
		return nil, ErrIndexOutOfRange{Index: s.current, Count: len(s.questions)}
	}
	return &s.questions[s.current], nil
}

// Submit checks a raw submission against the current question. A payload
// that fails to decode counts as a wrong answer.
func (s *Session) Submit(raw string) (bool, error) {
	if err := s.ensureInteractive("submit"); err != nil {
		return false, err
	}

	question := &s.questions[s.current]
	submitted, correct := CheckRawAnswer(*question, raw)
	s.recordAnswer(question, raw, submitted, correct)
	return correct, nil
}

// SubmitAnswer checks a structured answer against the current question.
func (s *Session) SubmitAnswer(submitted Answer) (bool, error) {
	if err := s.ensureInteractive("submit"); err != nil {
		return false, err
	}

	question := &s.questions[s.current]
	correct := CheckAnswer(*question, submitted)
	raw, err := submitted.Encode()
	if err != nil {
		return false, fmt.Errorf("submitted.Encode() > %w", err)
	}
	s.recordAnswer(question, raw, submitted, correct)
	return correct, nil
}

// Skip marks the current question skipped and advances.
func (s *Session) Skip() error {
	if err := s.ensureInteractive("skip"); err != nil {
		return err
	}
	if !s.settings.AllowSkip {
		return ErrSkipNotAllowed
	}

	s.questions[s.current].markSkipped(s.questionElapsed)
	s.streak = 0
	s.advance()
	return nil
}

// AdvanceTo jumps to the question at index, resetting the per-question
// countdown. Returning to an answered question allows re-answering; the new
// submission overwrites the old one.
func (s *Session) AdvanceTo(index int) error {
	if s.state != StateActive {
		return ErrInvalidState{Operation: "navigate", State: s.state}
	}
	if index < 0 || index >= len(s.questions) {
		return ErrIndexOutOfRange{Index: index, Count: len(s.questions)}
	}

	s.current = index
	s.questionRemaining = s.settings.PerQuestionSeconds
	s.questionElapsed = 0
	s.revealRemaining = 0
	return nil
}

// Tick advances every running countdown by one second. It is a no-op unless
// the session is active. Expiry handlers fire exactly once per countdown.
func (s *Session) Tick() {
	if s.state != StateActive {
		return
	}

	s.elapsedSeconds++

	if s.settings.TotalSeconds > 0 && s.totalRemaining > 0 {
		s.totalRemaining--
		if s.totalRemaining == 0 {
			s.complete()
			return
		}
	}

	if s.revealRemaining > 0 {
		s.revealRemaining--
		if s.revealRemaining == 0 {
			s.advance()
		}
		return
	}

	s.questionElapsed++
	if s.settings.PerQuestionSeconds > 0 && s.questionRemaining > 0 {
		s.questionRemaining--
		if s.questionRemaining == 0 {
			s.expireQuestion()
		}
	}
}

// Complete finishes the session and returns its results. Calling it again
// returns the same results.
func (s *Session) Complete() (Results, error) {
	if s.cancelled {
		return Results{}, ErrCancelled
	}
	if s.state == StateCompleted {
		return *s.results, nil
	}
	if s.state == StateReady {
		return Results{}, ErrInvalidState{Operation: "complete", State: s.state}
	}

	s.complete()
	return *s.results, nil
}

// Cancel discards the session. A cancelled session produces no results.
func (s *Session) Cancel() {
	s.cancelled = true
	s.state = StateCompleted
}

// Progress is a point-in-time snapshot of the session for display.
type Progress struct {
	State                    State
	Current                  int
	Total                    int
	Correct                  int
	Incorrect                int
	Skipped                  int
	Streak                   int
	ElapsedSeconds           int
	TotalRemainingSeconds    int
	QuestionRemainingSeconds int
	Revealing                bool
}

// Progress recomputes tallies from the question list so re-answered
// questions are never double counted.
func (s *Session) Progress() Progress {
	progress := Progress{
		State:                    s.state,
		Current:                  s.current,
		Total:                    len(s.questions),
		Streak:                   s.streak,
		ElapsedSeconds:           s.elapsedSeconds,
		TotalRemainingSeconds:    s.totalRemaining,
		QuestionRemainingSeconds: s.questionRemaining,
		Revealing:                s.revealRemaining > 0,
	}
	for _, question := range s.questions {
		switch {
		case question.Answered && question.IsCorrect:
			progress.Correct++
		case question.Answered:
			progress.Incorrect++
		case question.Skipped:
			progress.Skipped++
		}
	}
	return progress
}

func (s *Session) ensureInteractive(operation string) error {
	if s.state != StateActive {
		return ErrInvalidState{Operation: operation, State: s.state}
	}
	if s.revealRemaining > 0 {
		return ErrInvalidState{Operation: operation, State: s.state}
	}
	if s.current >= len(s.questions) {
		return ErrIndexOutOfRange{Index: s.current, Count: len(s.questions)}
	}
	return nil
}

func (s *Session) recordAnswer(question *Question, raw string, submitted Answer, correct bool) {
	question.record(raw, submitted, correct, s.questionElapsed)
	if correct {
		s.streak++
	} else {
		s.streak = 0
	}

	if s.settings.InstantFeedback {
		s.revealRemaining = s.settings.revealSeconds()
		return
	}
	s.advance()
}

func (s *Session) advance() {
	s.revealRemaining = 0
	if s.current+1 >= len(s.questions) {
		s.complete()
		return
	}
	s.current++
	s.questionRemaining = s.settings.PerQuestionSeconds
	s.questionElapsed = 0
}

// expireQuestion handles a per-question countdown hitting zero: the question
// is recorded as skipped unless already answered, then the session moves on.
func (s *Session) expireQuestion() {
	question := &s.questions[s.current]
	if s.settings.AllowSkip || !question.Answered {
		question.markSkipped(s.questionElapsed)
		s.streak = 0
	}
	s.advance()
}

func (s *Session) complete() {
	if s.state == StateCompleted {
		return
	}
	s.state = StateCompleted
	s.endedAt = s.clock.Now()

	results := Aggregate(s.questions, s.startedAt, s.endedAt, s.settings.PerQuestionSeconds)
	results.SessionID = s.id
	s.results = &results
}
