package sim

import (
	"errors"
	"fmt"
)

// ErrAlreadyRunning is returned by Run when another goroutine is already
// running the consumer loop of the same scheduler.
var ErrAlreadyRunning = errors.New("sim: scheduler is already running")

// ErrPastAction is the panic value used by strict schedulers when an action is
// submitted with a time earlier than the current time.
var ErrPastAction = errors.New("sim: action scheduled earlier than current time")

// ActionError reports the error returned by an action, which stopped the
// consumer loop.
type ActionError struct {
	Time   any
	Action any
	Err    error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("sim: action %T @ %v failed: %v", e.Action, e.Time, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}
