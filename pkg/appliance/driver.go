package appliance

import (
	"github.com/edgetalks/traincam.go/pkg/command"
	"github.com/edgetalks/traincam.go/pkg/coordlog"
	"github.com/edgetalks/traincam.go/pkg/display"
	"github.com/edgetalks/traincam.go/pkg/engine"
	fx "github.com/edgetalks/traincam.go/pkg/framework"
	"github.com/edgetalks/traincam.go/pkg/vision"
)

// Driver ties the appliance together once per loop iteration: capture
// and preview the latest frame, consume at most one command, advance
// the mode machine, then run exactly one orchestrator. While Training
// idles awaiting a class selection neither orchestrator runs, but the
// live preview still updates.
type Driver struct {
	Frame   *vision.Frame
	Camera  vision.Source
	Engine  engine.Engine
	Display display.Display
	Buttons Buttons
	Log     *coordlog.Log
	Labels  []string

	Modes    *ModeMachine
	trainer  *Trainer
	inferrer *Inferrer
}

// NewDriver wires a Driver from its collaborators.
func NewDriver(frame *vision.Frame, cam vision.Source, eng engine.Engine,
	disp display.Display, buttons Buttons, log *coordlog.Log, labels []string) *Driver {
	d := &Driver{
		Frame:   frame,
		Camera:  cam,
		Engine:  eng,
		Display: disp,
		Buttons: buttons,
		Log:     log,
		Labels:  labels,
		Modes:   NewModeMachine(log),
	}
	d.trainer = &Trainer{Frame: frame, Camera: cam, Engine: eng, Display: disp, Log: log, Labels: labels}
	d.inferrer = &Inferrer{Frame: frame, Engine: eng, Display: disp, Log: log, Labels: labels}
	return d
}

// AddToLoop implements LoopAdder.
func (d *Driver) AddToLoop(l *fx.Loop) {
	l.AddController(fx.StageSense, fx.ControlFunc(d.Sense))
	l.AddController(fx.StageControl, fx.ControlFunc(d.Dispatch))
}

// Sense captures the latest frame and refreshes the live preview. The
// blocking capture paces the loop: triggering the next iteration here
// keeps the appliance free-running at sensor rate.
func (d *Driver) Sense(cc fx.ControlContext) error {
	if err := d.Frame.CaptureLatest(d.Camera); err != nil {
		return err
	}
	d.Display.Preview(d.Frame.Pixels, d.Frame.Side())
	cc.TriggerNext()
	return nil
}

// Dispatch consumes this iteration's command, advances the mode machine
// and invokes the mode's orchestrator.
func (d *Driver) Dispatch(cc fx.ControlContext) error {
	cmd := command.Take(cc.Messages())
	if cmd != command.NoCommand {
		d.Log.CommandReceived(cmd)
	}
	d.Modes.Apply(cmd)

	if d.Modes.Mode() != Training {
		_, _, err := d.inferrer.RunForward(d.Modes.Mode() == Validation)
		return err
	}

	if d.Modes.ConsumeJustStarted() {
		d.Display.Status("Train Ready")
		d.Display.ClearResult()
	}
	label, ok := d.selectClass(cmd)
	if !ok {
		// awaiting class selection
		return nil
	}
	if label >= d.Engine.Classes() {
		d.Log.InvalidClass(label)
		return nil
	}
	_, err := d.trainer.TrainOnClass(label)
	return err
}

// selectClass resolves the declared training class for this iteration:
// a digit command wins over the buttons, and button B (class 1) is
// checked before button A (class 0).
func (d *Driver) selectClass(cmd byte) (int, bool) {
	if cmd >= '0' && cmd <= '9' {
		return int(cmd - '0'), true
	}
	a, b := d.Buttons.Levels()
	if b {
		return 1, true
	}
	if a {
		return 0, true
	}
	return 0, false
}
