package appliance

import (
	"fmt"
	"time"

	"github.com/edgetalks/traincam.go/pkg/coordlog"
	"github.com/edgetalks/traincam.go/pkg/display"
	"github.com/edgetalks/traincam.go/pkg/engine"
	"github.com/edgetalks/traincam.go/pkg/vision"
)

// Report summarizes one training invocation for callers and tests.
type Report struct {
	Label     int
	Predicted int
	Elapsed   time.Duration
}

// Trainer drives one on-device training step end to end. The label has
// been validated by the caller; an out-of-range label never reaches
// this component.
type Trainer struct {
	Frame   *vision.Frame
	Camera  vision.Source
	Engine  engine.Engine
	Display display.Display
	Log     *coordlog.Log
	Labels  []string
}

// TrainOnClass runs the training path for a declared class: prediction
// feedback from a forward pass, a re-capture so the step trains on the
// freshest frame, the engine training step with timing, result
// rendering, and a final re-capture priming the next iteration.
func (t *Trainer) TrainOnClass(label int) (*Report, error) {
	t.Log.TrainClass(label)

	scores, err := t.Engine.Forward(t.Frame.Samples)
	if err != nil {
		return nil, err
	}
	pred := vision.Resolve(scores)
	outcome := display.Mismatch
	if pred == label {
		outcome = display.Match
	}
	t.Display.Result(display.TrainingLines(t.Labels, pred, label), outcome)

	// Latest-frame-wins: train on the freshest capture, which may not
	// be the frame the operator saw when issuing the command.
	if err := t.Frame.CaptureLatest(t.Camera); err != nil {
		return nil, err
	}
	t.Display.Status(fmt.Sprintf("Train cls %d", label))

	target := engine.OneHot(label, t.Engine.NativeClasses())
	start := time.Now()
	if err := t.Engine.TrainStep(t.Frame.Samples, target); err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	t.Log.TrainingDone()
	t.Display.Status("Train done ")
	t.Display.Elapsed(elapsed)

	// prime the pipeline for the next iteration
	if err := t.Frame.CaptureLatest(t.Camera); err != nil {
		return nil, err
	}
	t.Log.ReadyForNext()

	return &Report{Label: label, Predicted: pred, Elapsed: elapsed}, nil
}
