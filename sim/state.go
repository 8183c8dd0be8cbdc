package sim

// State is the lifecycle state of a Scheduler.
type State int

// The scheduler moves from Idle to Running when Run starts, to ShuttingDown
// when the consumer observes a shutdown request, and to Stopped when Run
// returns. Run may be called again from Stopped.
const (
	StateIdle State = iota
	StateRunning
	StateShuttingDown
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateShuttingDown:
		return "ShuttingDown"
	case StateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// MarshalText lets the state appear by name in JSON.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Status is a snapshot of a scheduler, suitable for reporting.
type Status struct {
	State    State  `json:"state"`
	Now      any    `json:"now"`
	Pending  int    `json:"pending"`
	Executed uint64 `json:"executed"`
	Paused   bool   `json:"paused"`
}
