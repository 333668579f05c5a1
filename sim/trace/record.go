// Package trace provides applied-event trace recording for simulation runs.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// Record captures a single applied event.
type Record struct {
	Time float64 // simulation clock when the event was applied
	Kind string  // event kind name ("redraw", "vertical-wall", ...)
	A    int     // arena index of participant A, -1 if absent
	B    int     // arena index of participant B, -1 if absent
}
