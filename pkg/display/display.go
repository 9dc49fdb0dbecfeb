// Package display defines the semantic rendering surface consumed by
// the control loop. The core never addresses pixels directly; it asks
// for a status line, a result panel with an outcome color, or an
// elapsed-time readout and lets the implementation place them.
package display

import "time"

// LineWidth is the character width of one result line. Class labels
// longer than this wrap onto a second line. It is a display contract,
// not an incidental limit.
const LineWidth = 12

// ResultLines is the maximum height of the result panel.
const ResultLines = 8

// Outcome selects the result panel background: green for a matching
// prediction, red for a mismatch, black when no ground truth applies.
type Outcome int

// Outcomes
const (
	Cleared Outcome = iota
	Match
	Mismatch
)

func (o Outcome) String() string {
	switch o {
	case Match:
		return "match"
	case Mismatch:
		return "mismatch"
	}
	return "cleared"
}

// Display renders semantic requests from the control loop. Calls are
// loop-synchronous; implementations must not block on slow consumers.
type Display interface {
	// Preview renders the live RGB565 frame view.
	Preview(pixels []uint16, side int)
	// Status shows the current mode/action text on the status line.
	Status(text string)
	// Result fills the result panel with the outcome color.
	Result(lines []string, outcome Outcome)
	// Elapsed shows one engine invocation time as a rate readout.
	Elapsed(d time.Duration)
	// ClearResult wipes the result panel.
	ClearResult()
}
