// Package coordlog emits the appliance coordination log: an append-only
// text stream correlating operator commands, mode changes and engine
// invocation timing. The structured line forms are a stable contract
// harvested by offline evaluation tooling; do not reformat them.
package coordlog

import (
	"fmt"
	"io"
	"sync"

	"github.com/golang/glog"
)

// Log writes coordination lines to all attached sinks. Lines are CRLF
// terminated, matching the serial-line heritage of the consumers.
type Log struct {
	lock  sync.Mutex
	sinks []io.Writer
}

// New creates a Log writing to the given sinks.
func New(sinks ...io.Writer) *Log {
	return &Log{sinks: sinks}
}

// Attach adds a sink. Safe to call while the loop is running.
func (l *Log) Attach(w io.Writer) {
	l.lock.Lock()
	l.sinks = append(l.sinks, w)
	l.lock.Unlock()
}

// CommandReceived records one operator command character, verbatim.
func (l *Log) CommandReceived(c byte) {
	l.linef("COMMAND RECEIVED: %c", c)
}

// TrainClass records the start of a training invocation for a class.
func (l *Log) TrainClass(cls int) {
	l.linef("Training: Train cls %d", cls)
}

// TrainingDone records the completion of the engine training step.
func (l *Log) TrainingDone() {
	l.linef("TRAINING DONE")
}

// ReadyForNext records that the pipeline is primed with a fresh frame.
func (l *Log) ReadyForNext() {
	l.linef("READY FOR NEXT TRAINING")
}

// InferenceComplete records a resolved prediction in validation mode.
func (l *Log) InferenceComplete(cls int) {
	l.linef("INFERENCE COMPLETE: %d", cls)
}

// InvalidClass records a rejected out-of-range class label.
func (l *Log) InvalidClass(cls int) {
	l.linef("Invalid class number %d", cls)
}

// Statusf records a free-form status line.
func (l *Log) Statusf(format string, args ...interface{}) {
	l.linef(format, args...)
}

func (l *Log) linef(format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	glog.V(1).Info(line)
	l.lock.Lock()
	defer l.lock.Unlock()
	for _, w := range l.sinks {
		if _, err := io.WriteString(w, line+"\r\n"); err != nil {
			glog.Warningf("log sink error: %v", err)
		}
	}
}
