package sim

import (
	"fmt"
)

// A TimedAction is something going to happen at a point in time.
//
// Once submitted, an action belongs to the scheduler until it is popped. The
// scheduler drops its reference before calling Execute. To repeat, an action
// submits a new successor instead of resubmitting itself with a new time.
type TimedAction[T any] interface {
	// Time returns the time that the action should happen. It must not change
	// after the action is created.
	Time() T

	// Execute performs the action. It may submit more actions or request a
	// shutdown. A returned error stops the consumer loop.
	Execute() error
}

// ActionBase provides the time and ID fields for concrete actions. Embed it
// and implement Execute.
type ActionBase[T any] struct {
	ID   string
	time T
}

// NewActionBase creates a new ActionBase at the given time.
func NewActionBase[T any](t T) ActionBase[T] {
	return ActionBase[T]{
		ID:   GetIDGenerator().Generate(),
		time: t,
	}
}

// Time returns the time that the action is going to happen.
func (a ActionBase[T]) Time() T {
	return a.time
}

// ActionID returns the unique ID of the action.
func (a ActionBase[T]) ActionID() string {
	return a.ID
}

// ActionFunc is an action whose behavior is a plain function.
type ActionFunc[T any] struct {
	ActionBase[T]
	fn func() error
}

// NewFuncAction creates an action that runs fn at time t.
func NewFuncAction[T any](t T, fn func() error) *ActionFunc[T] {
	return &ActionFunc[T]{
		ActionBase: NewActionBase(t),
		fn:         fn,
	}
}

// Execute runs the wrapped function.
func (a *ActionFunc[T]) Execute() error {
	if a.fn == nil {
		return nil
	}

	return a.fn()
}

// Recover wraps an action so that a panic raised by its Execute is returned as
// an error. The scheduler never recovers panics by itself.
func Recover[T any](action TimedAction[T]) TimedAction[T] {
	return &recoveringAction[T]{inner: action}
}

type recoveringAction[T any] struct {
	inner TimedAction[T]
}

func (a *recoveringAction[T]) Time() T {
	return a.inner.Time()
}

func (a *recoveringAction[T]) Execute() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("action %T panicked: %v", a.inner, r)
		}
	}()

	return a.inner.Execute()
}

// Unwrap returns the wrapped action.
func (a *recoveringAction[T]) Unwrap() TimedAction[T] {
	return a.inner
}
