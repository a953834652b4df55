package services

// OutcomeState says why a soft-dependency call did or did not produce a value.
type OutcomeState int

const (
	// Skipped means the dependency is not configured; no call was made.
	Skipped OutcomeState = iota
	Stored
	Failed
)

func (s OutcomeState) String() string {
	switch s {
	case Stored:
		return "stored"
	case Failed:
		return "failed"
	default:
		return "skipped"
	}
}

// Outcome is the result of a best-effort call to a soft dependency. Callers
// branch on Get or Ok; State and Err exist for logging and metrics.
type Outcome[T any] struct {
	State OutcomeState
	Value T
	Err   error
}

func stored[T any](v T) Outcome[T] {
	return Outcome[T]{State: Stored, Value: v}
}

func skipped[T any]() Outcome[T] {
	return Outcome[T]{State: Skipped}
}

func failed[T any](err error) Outcome[T] {
	return Outcome[T]{State: Failed, Err: err}
}

func (o Outcome[T]) Ok() bool {
	return o.State == Stored
}

// Get returns the value and whether one is present.
func (o Outcome[T]) Get() (T, bool) {
	return o.Value, o.State == Stored
}
