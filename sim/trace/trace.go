package trace

// Level controls the verbosity of event tracing.
type Level string

const (
	// LevelNone disables tracing (zero overhead).
	LevelNone Level = "none"
	// LevelEvents captures every applied event in dequeue order.
	LevelEvents Level = "events"
)

// validLevels maps accepted trace level strings.
var validLevels = map[Level]bool{
	LevelNone:   true,
	LevelEvents: true,
	"":          true, // empty defaults to none
}

// IsValidLevel returns true if the given level string is a recognized trace level.
func IsValidLevel(level string) bool {
	return validLevels[Level(level)]
}

// Trace collects applied-event records during a simulation run.
// Stale events discarded by the validity check are never recorded; the
// trace is the sequence of events that actually mutated state, in the
// order they were dequeued.
type Trace struct {
	Level  Level
	Events []Record
}

// New creates a Trace ready for recording at the given level.
func New(level Level) *Trace {
	return &Trace{
		Level:  level,
		Events: make([]Record, 0),
	}
}

// RecordEvent appends an applied-event record, subject to the trace level.
func (t *Trace) RecordEvent(r Record) {
	if t == nil || t.Level != LevelEvents {
		return
	}
	t.Events = append(t.Events, r)
}

// TimesNonDecreasing reports whether recorded event times never go
// backwards. The simulation guarantees this for every run; regression
// tests assert it over recorded traces.
func (t *Trace) TimesNonDecreasing() bool {
	for i := 1; i < len(t.Events); i++ {
		if t.Events[i].Time < t.Events[i-1].Time {
			return false
		}
	}
	return true
}
