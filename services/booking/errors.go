package booking

import (
	"errors"
	"fmt"
)

// ErrNoSlots signals that slot generation produced zero available slots for
// the selected date. Callers render a dedicated empty state instead of an
// empty grid.
var ErrNoSlots = errors.New("no available time slots for the selected date")

// ErrSessionNotFound signals a missing or expired wizard session.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// StepValidationError is a non-fatal, user-recoverable validation failure at
// a step boundary. The wizard state is left unchanged when one is returned.
type StepValidationError struct {
	Step    int
	Message string
}

func (e *StepValidationError) Error() string {
	return fmt.Sprintf("step %d: %s", e.Step, e.Message)
}

func newStepError(step int, message string) error {
	return &StepValidationError{Step: step, Message: message}
}
