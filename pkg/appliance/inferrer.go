package appliance

import (
	"time"

	"github.com/edgetalks/traincam.go/pkg/coordlog"
	"github.com/edgetalks/traincam.go/pkg/display"
	"github.com/edgetalks/traincam.go/pkg/engine"
	"github.com/edgetalks/traincam.go/pkg/vision"
)

// Inferrer runs the shared non-training prediction path on the frame
// captured at the start of the iteration.
type Inferrer struct {
	Frame   *vision.Frame
	Engine  engine.Engine
	Display display.Display
	Log     *coordlog.Log
	Labels  []string
}

// RunForward invokes one forward pass, resolves the prediction and
// renders it. In validation mode it additionally emits the structured
// completion line; inference mode proper does not.
func (inf *Inferrer) RunForward(validation bool) (int, time.Duration, error) {
	start := time.Now()
	raw, err := inf.Engine.Forward(inf.Frame.Samples)
	if err != nil {
		return 0, 0, err
	}
	scores := make([]int8, len(raw))
	copy(scores, raw)
	pred := vision.Resolve(scores)
	elapsed := time.Since(start)

	if validation {
		inf.Display.Status(" Validation ")
		inf.Log.InferenceComplete(pred)
	} else {
		inf.Display.Status(" Inference ")
	}
	inf.Display.Result(display.InferenceLines(inf.Labels, pred), display.Cleared)
	inf.Display.Elapsed(elapsed)

	return pred, elapsed, nil
}
