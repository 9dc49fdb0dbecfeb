package appliance

import "github.com/edgetalks/traincam.go/pkg/coordlog"

// Mode is the active appliance behavior. Inference and Validation share
// the prediction path; Validation additionally emits the structured
// completion line for accuracy harvesting.
type Mode int

// Modes
const (
	Inference Mode = iota
	Training
	Validation
)

func (m Mode) String() string {
	switch m {
	case Training:
		return "training"
	case Validation:
		return "validation"
	}
	return "inference"
}

// Mode-switch command characters.
const (
	cmdTrain    = 't'
	cmdInfer    = 'i'
	cmdValidate = 'v'
)

// ModeMachine owns the operating mode and the one-iteration "training
// session just started" flag. It is single-writer: only the loop driver
// applies commands.
type ModeMachine struct {
	Log *coordlog.Log

	mode        Mode
	justStarted bool
}

// NewModeMachine creates a machine in the default Inference mode.
func NewModeMachine(log *coordlog.Log) *ModeMachine {
	return &ModeMachine{Log: log}
}

// Mode returns the active mode.
func (m *ModeMachine) Mode() Mode {
	return m.mode
}

// Apply consumes one command character. Mode switches log the new mode
// and are idempotent; the just-started flag is raised only on the edge
// into Training. Any other character leaves the mode untouched.
func (m *ModeMachine) Apply(c byte) {
	switch c {
	case cmdTrain:
		if m.mode != Training {
			m.justStarted = true
		}
		m.mode = Training
		m.Log.Statusf("Switching to training mode")
	case cmdInfer:
		m.mode = Inference
		m.justStarted = false
		m.Log.Statusf("Switching to inference mode")
	case cmdValidate:
		m.mode = Validation
		m.justStarted = false
		m.Log.Statusf("Switching to validation mode")
	}
}

// ConsumeJustStarted reports and clears the one-iteration flag raised
// by the edge into Training.
func (m *ModeMachine) ConsumeJustStarted() bool {
	v := m.justStarted
	m.justStarted = false
	return v
}
