package sim

import "cmp"

// Builder can be used to build a scheduler.
type Builder[T any] struct {
	less           func(a, b T) bool
	strictOrdering bool
	hooks          []Hook
}

// MakeBuilder creates a builder for an ordered time type.
func MakeBuilder[T cmp.Ordered]() Builder[T] {
	return Builder[T]{
		less: cmp.Less[T],
	}
}

// MakeBuilderWithLess creates a builder for a time type ordered by less.
func MakeBuilderWithLess[T any](less func(a, b T) bool) Builder[T] {
	return Builder[T]{
		less: less,
	}
}

// WithStrictOrdering makes Submit panic with ErrPastAction when an action is
// earlier than the current time. By default such actions are accepted.
func (b Builder[T]) WithStrictOrdering() Builder[T] {
	b.strictOrdering = true
	return b
}

// WithHook registers a hook on the scheduler to build.
func (b Builder[T]) WithHook(hook Hook) Builder[T] {
	hooks := make([]Hook, 0, len(b.hooks)+1)
	hooks = append(hooks, b.hooks...)
	b.hooks = append(hooks, hook)

	return b
}

// Build creates the scheduler.
func (b Builder[T]) Build() *Scheduler[T] {
	s := NewWithLess(b.less)
	s.strictOrdering = b.strictOrdering

	for _, h := range b.hooks {
		s.AcceptHook(h)
	}

	return s
}
