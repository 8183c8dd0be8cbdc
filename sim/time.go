package sim

import "time"

// VTimeInSec defines the time in the simulated space in the unit of second
type VTimeInSec float64

// VTimeInCycle defines the time in the simulated space in the unit of cycles.
type VTimeInCycle uint64

// TimestampBefore orders wall-clock timestamps. Use it with NewWithLess or
// MakeBuilderWithLess to key actions by time.Time.
func TimestampBefore(a, b time.Time) bool {
	return a.Before(b)
}
