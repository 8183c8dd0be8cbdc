package sim

import (
	"cmp"
	"reflect"
	"sync"
)

var (
	instancesMutex sync.Mutex
	instances      = make(map[reflect.Type]any)
)

// Instance returns the process-wide scheduler for time type T, creating it on
// the first call. Concurrent first calls observe the same scheduler. The
// scheduler lives until the process exits; use Clear and Shutdown to reset it.
func Instance[T cmp.Ordered]() *Scheduler[T] {
	key := reflect.TypeOf((*T)(nil)).Elem()

	instancesMutex.Lock()
	defer instancesMutex.Unlock()

	if s, ok := instances[key]; ok {
		return s.(*Scheduler[T])
	}

	s := New[T]()
	instances[key] = s

	return s
}
