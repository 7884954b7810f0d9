package assessment

import (
	"errors"
	"fmt"
)

var (
	ErrSkipNotAllowed = errors.New("skipping is not allowed by the session settings")
	ErrNoQuestions    = errors.New("session has no questions")
)

// ErrInsufficientPool is returned when fewer cards are available than the
// requested question count.
type ErrInsufficientPool struct {
	Requested int
	Available int
}

func (e ErrInsufficientPool) Error() string {
	return fmt.Sprintf("requested %d questions but only %d cards are available", e.Requested, e.Available)
}

// ErrInvalidState is returned when an operation is called in a session state
// that does not permit it.
type ErrInvalidState struct {
	Operation string
	State     State
}

func (e ErrInvalidState) Error() string {
	return fmt.Sprintf("cannot %s in state %q", e.Operation, e.State)
}

// ErrIndexOutOfRange is returned when navigating to a question index that
// does not exist.
type ErrIndexOutOfRange struct {
	Index int
	Count int
}

func (e ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("question index %d is out of range [0, %d)", e.Index, e.Count)
}
