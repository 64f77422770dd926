// Package timing provides performance measurement utilities for Smartcmd.
package timing

import (
	"fmt"
	"strings"
	"time"
)

type mark struct {
	label   string
	elapsed time.Duration
}

// Timer tracks execution time of the stages of a completion call.
type Timer struct {
	start time.Time
	marks []mark
}

// NewTimer creates a timer starting now
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Mark records a checkpoint with a label and returns the elapsed time
func (t *Timer) Mark(label string) time.Duration {
	elapsed := time.Since(t.start)
	t.marks = append(t.marks, mark{label: label, elapsed: elapsed})
	return elapsed
}

// Elapsed returns total elapsed time since timer creation
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Get returns the duration for a specific mark
func (t *Timer) Get(label string) (time.Duration, bool) {
	for _, m := range t.marks {
		if m.label == label {
			return m.elapsed, true
		}
	}
	return 0, false
}

// Summary returns a formatted summary of all timings
func (t *Timer) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "total=%.3fms", float64(t.Elapsed().Microseconds())/1000.0)
	for _, m := range t.marks {
		fmt.Fprintf(&b, " %s=%.3fms", m.label, float64(m.elapsed.Microseconds())/1000.0)
	}
	return b.String()
}
