package core

// ObserverStream is an append-only, step-indexed ring of values that
// subscribers pull from by cursor instead of being push-notified. This
// avoids reentrancy hazards from listener callbacks and makes lossy
// replication natural: a viewer that misses a poll simply resumes from
// the new cursor.
type ObserverStream[T any] struct {
	limit       uint64
	currentStep uint64
	entries     []streamEntry[T]
}

type streamEntry[T any] struct {
	step  uint64
	value T
}

// NewObserverStream constructs a stream that discards entries older than
// limit steps behind the current step. A limit of zero keeps every entry.
func NewObserverStream[T any](limit uint64) *ObserverStream[T] {
	return &ObserverStream[T]{limit: limit}
}

// Add appends a value at the current step, then advances the step by one.
func (s *ObserverStream[T]) Add(value T) {
	s.entries = append(s.entries, streamEntry[T]{step: s.currentStep, value: value})
	s.currentStep++
	s.prune()
}

// Tick advances the current step without adding a value.
func (s *ObserverStream[T]) Tick(delta uint64) {
	s.currentStep += delta
	s.prune()
}

func (s *ObserverStream[T]) prune() {
	if s.limit == 0 || s.currentStep <= s.limit {
		return
	}
	floor := s.currentStep - s.limit
	cut := 0
	for cut < len(s.entries) && s.entries[cut].step < floor {
		cut++
	}
	if cut > 0 {
		s.entries = append([]streamEntry[T]{}, s.entries[cut:]...)
	}
}

// Query returns every value with step >= since, in insertion order, plus the
// cursor to pass on the next call. Copy-on-pull: the returned slice is a
// fresh copy so concurrent viewers never alias the stream's backing array.
func (s *ObserverStream[T]) Query(since uint64) ([]T, uint64) {
	out := make([]T, 0)
	for _, e := range s.entries {
		if e.step >= since {
			out = append(out, e.value)
		}
	}
	return out, s.currentStep
}

// CurrentStep returns the stream's current step counter.
func (s *ObserverStream[T]) CurrentStep() uint64 { return s.currentStep }
