// Package sim provides a generic discrete event scheduler.
//
// A TimedAction carries an ordering key, its time, and a single behavior,
// Execute. A Scheduler owns a queue of actions ordered by time and a single
// consumer loop that pops the earliest action, advances the current time to it
// and executes it. Any goroutine may submit actions, including an action that
// is executing on the consumer goroutine.
//
// Actions that share the same time are executed in an unspecified order.
//
// The scheduler does not reject an action whose time is earlier than the
// current time. Such an action simply sorts to the front of the queue and the
// current time moves backward when it executes. Producers that want the
// current time to be monotonic must submit actions no earlier than
// CurrentTime. Schedulers built with Builder.WithStrictOrdering panic instead.
//
// Each time type has one process-wide scheduler, returned by Instance:
//
//	s := sim.Instance[sim.VTimeInSec]()
//	s.Submit(sim.NewFuncAction(sim.VTimeInSec(1), func() error {
//		fmt.Println("hello")
//		s.Shutdown()
//		return nil
//	}))
//	err := s.Run()
package sim
