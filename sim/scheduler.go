package sim

import (
	"cmp"
	"fmt"
	"sync"
)

// A Scheduler executes timed actions one after another in time order.
//
// All the queue operations, the shutdown and pause flags and the current time
// are guarded by one mutex. The consumer waits on a condition variable tied to
// that mutex, so checking for work and parking happen atomically with respect
// to Submit. Actions execute outside of the lock.
type Scheduler[T any] struct {
	*HookableBase

	less           func(a, b T) bool
	strictOrdering bool

	mu    sync.Mutex
	cond  *sync.Cond
	queue *actionQueue[T]

	now               T
	state             State
	shutdownRequested bool
	paused            bool
	executed          uint64
}

// New creates a scheduler for an ordered time type. Most programs want the
// process-wide one returned by Instance instead.
func New[T cmp.Ordered]() *Scheduler[T] {
	return NewWithLess(cmp.Less[T])
}

// NewWithLess creates a scheduler that orders actions with less. less must be
// a strict total order.
func NewWithLess[T any](less func(a, b T) bool) *Scheduler[T] {
	if less == nil {
		panic("sim: less function must not be nil")
	}

	s := &Scheduler[T]{
		HookableBase: NewHookableBase(),
		less:         less,
		queue:        newActionQueue(less),
	}
	s.cond = sync.NewCond(&s.mu)

	return s
}

// Submit adds an action to the queue and wakes the consumer. It is safe to
// call from any goroutine, including from inside an executing action, and in
// any state. Submit never starts the consumer loop.
func (s *Scheduler[T]) Submit(action TimedAction[T]) {
	s.mu.Lock()

	if s.strictOrdering && s.less(action.Time(), s.now) {
		now := s.now
		s.mu.Unlock()
		panic(fmt.Errorf("%w: %T @ %v, now %v",
			ErrPastAction, action, action.Time(), now))
	}

	wasEmpty := s.queue.Len() == 0
	s.queue.Push(action)
	s.mu.Unlock()

	if wasEmpty {
		s.cond.Signal()
	}
}

// Run executes actions until a shutdown is requested. It blocks while the
// queue is empty or the scheduler is paused. Run returns nil after a shutdown
// and an *ActionError if an action fails. Actions still queued when Run
// returns stay queued for the next Run.
//
// Panics raised by actions are not recovered. They unwind through Run after
// the scheduler is marked as stopped.
func (s *Scheduler[T]) Run() error {
	s.mu.Lock()
	if s.state == StateRunning || s.state == StateShuttingDown {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.state = StateRunning
	s.mu.Unlock()

	defer s.stop()

	for {
		action, ok := s.next()
		if !ok {
			return nil
		}

		err := s.execute(action)
		if err != nil {
			return &ActionError{
				Time:   action.Time(),
				Action: action,
				Err:    err,
			}
		}
	}
}

// next parks until there is an action to run or a shutdown is requested. The
// popped action becomes the current time before the lock is released.
func (s *Scheduler[T]) next() (TimedAction[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for !s.shutdownRequested && (s.paused || s.queue.Len() == 0) {
		s.cond.Wait()
	}

	if s.shutdownRequested {
		s.state = StateShuttingDown
		return nil, false
	}

	action := s.queue.Pop()
	s.now = action.Time()
	s.executed++

	return action, true
}

func (s *Scheduler[T]) execute(action TimedAction[T]) error {
	hookCtx := HookCtx{
		Domain: s,
		Pos:    HookPosBeforeAction,
		Item:   action,
	}
	s.InvokeHook(hookCtx)

	err := action.Execute()

	hookCtx.Pos = HookPosAfterAction
	hookCtx.Detail = err
	s.InvokeHook(hookCtx)

	return err
}

// stop consumes the shutdown request so that a later Run starts afresh.
func (s *Scheduler[T]) stop() {
	s.mu.Lock()
	s.state = StateStopped
	s.shutdownRequested = false
	s.mu.Unlock()
}

// Shutdown requests the consumer loop to stop at the next action boundary. A
// consumer parked on an empty queue wakes up immediately. Queued actions are
// not executed. A request made while Run is not active makes the next Run
// return immediately.
func (s *Scheduler[T]) Shutdown() {
	s.mu.Lock()
	s.shutdownRequested = true
	s.mu.Unlock()

	s.cond.Broadcast()
}

// Pause prevents the scheduler from executing more actions until Continue is
// called. The action in flight, if any, completes.
func (s *Scheduler[T]) Pause() {
	s.mu.Lock()
	s.paused = true
	s.mu.Unlock()
}

// Continue allows a paused scheduler to execute actions again.
func (s *Scheduler[T]) Continue() {
	s.mu.Lock()
	s.paused = false
	s.mu.Unlock()

	s.cond.Broadcast()
}

// CurrentTime returns the time of the most recently popped action, or the zero
// value of T before the first pop. It is safe to call from any goroutine.
func (s *Scheduler[T]) CurrentTime() T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.now
}

// State returns the lifecycle state of the scheduler.
func (s *Scheduler[T]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Len returns the number of queued actions.
func (s *Scheduler[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.queue.Len()
}

// Executed returns the number of actions popped for execution so far.
func (s *Scheduler[T]) Executed() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.executed
}

// Peek returns the earliest queued action without removing it.
func (s *Scheduler[T]) Peek() (TimedAction[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	action := s.queue.Peek()

	return action, action != nil
}

// NextAction returns the earliest queued action, or nil if the queue is
// empty.
func (s *Scheduler[T]) NextAction() any {
	action, ok := s.Peek()
	if !ok {
		return nil
	}

	return action
}

// Status returns a consistent snapshot of the scheduler.
func (s *Scheduler[T]) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Status{
		State:    s.state,
		Now:      s.now,
		Pending:  s.queue.Len(),
		Executed: s.executed,
		Paused:   s.paused,
	}
}

// Clear drops all queued actions and returns how many were dropped. It does
// not change the state or the current time and may be called any number of
// times.
func (s *Scheduler[T]) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.queue.Clear()
}
