package assessment

import "time"

//go:generate mockgen -source=clock.go -destination=../mocks/assessment/mock_clock.go -package=mock_assessment Clock

// Clock supplies the current time so sessions can run on virtual time in
// tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
