package appliance

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/edgetalks/traincam.go/pkg/command"
	"github.com/edgetalks/traincam.go/pkg/coordlog"
	"github.com/edgetalks/traincam.go/pkg/display"
	"github.com/edgetalks/traincam.go/pkg/engine"
	fx "github.com/edgetalks/traincam.go/pkg/framework"
	"github.com/edgetalks/traincam.go/pkg/vision"
)

// scriptEngine returns scripted scores and records training targets.
type scriptEngine struct {
	classes  int
	native   int
	scores   []int8
	forwards int
	targets  [][]float32
}

func (e *scriptEngine) Classes() int       { return e.classes }
func (e *scriptEngine) NativeClasses() int { return e.native }

func (e *scriptEngine) Forward(frame []int8) ([]int8, error) {
	e.forwards++
	return e.scores, nil
}

func (e *scriptEngine) TrainStep(frame []int8, target []float32) error {
	recorded := make([]float32, len(target))
	copy(recorded, target)
	e.targets = append(e.targets, recorded)
	return nil
}

// countSource counts captures.
type countSource struct {
	captures int
}

func (s *countSource) Capture(dst []int8) error {
	s.captures++
	return nil
}

// recordDisplay records semantic display requests.
type recordDisplay struct {
	statuses []string
	results  [][]string
	outcomes []display.Outcome
	cleared  int
	previews int
}

func (d *recordDisplay) Preview(pixels []uint16, side int) { d.previews++ }
func (d *recordDisplay) Status(text string)                { d.statuses = append(d.statuses, text) }
func (d *recordDisplay) Elapsed(time.Duration)             {}
func (d *recordDisplay) ClearResult()                      { d.cleared++ }

func (d *recordDisplay) Result(lines []string, outcome display.Outcome) {
	d.results = append(d.results, lines)
	d.outcomes = append(d.outcomes, outcome)
}

type fakeButtons struct {
	a, b bool
}

func (b *fakeButtons) Levels() (bool, bool) { return b.a, b.b }

// testIter is a minimal ControlContext driving the Driver one
// iteration at a time.
type testIter struct {
	queue []fx.Message
}

func (t *testIter) Context() context.Context              { return context.Background() }
func (t *testIter) Time() time.Time                       { return time.Now() }
func (t *testIter) Stage() int                            { return fx.StageControl }
func (t *testIter) Messages() fx.MessageStore             { return t }
func (t *testIter) PostRun(...fx.Controller)              {}
func (t *testIter) PreRunAt(int, ...fx.Controller)        {}
func (t *testIter) PostRunAt(int, ...fx.Controller)       {}
func (t *testIter) PostMessage(msg fx.Message)            { t.queue = append(t.queue, msg) }
func (t *testIter) TriggerNext()                          {}
func (t *testIter) AddMessages(msgs ...fx.Message)        { t.queue = append(t.queue, msgs...) }

func (t *testIter) ProcessMessages(proc fx.MessageProcessor) {
	var remains []fx.Message
	for i, msg := range t.queue {
		mctx := &testMsgCtx{iter: t, msg: msg}
		proc.ProcessMessage(mctx)
		if !mctx.taken {
			remains = append(remains, msg)
		}
		if mctx.stop {
			remains = append(remains, t.queue[i+1:]...)
			break
		}
	}
	t.queue = remains
}

type testMsgCtx struct {
	iter  *testIter
	msg   fx.Message
	taken bool
	stop  bool
}

func (c *testMsgCtx) CurrentMessage() fx.Message       { return c.msg }
func (c *testMsgCtx) MessageTaken()                    { c.taken = true }
func (c *testMsgCtx) StopProcessing()                  { c.stop = true }
func (c *testMsgCtx) AddMessages(msgs ...fx.Message)   { c.iter.queue = append(c.iter.queue, msgs...) }

type harness struct {
	driver  *Driver
	engine  *scriptEngine
	camera  *countSource
	display *recordDisplay
	buttons *fakeButtons
	logBuf  *bytes.Buffer
	iter    *testIter
}

func newHarness(classes int, scores []int8) *harness {
	h := &harness{
		engine:  &scriptEngine{classes: classes, native: 10, scores: scores},
		camera:  &countSource{},
		display: &recordDisplay{},
		buttons: &fakeButtons{},
		logBuf:  &bytes.Buffer{},
		iter:    &testIter{},
	}
	log := coordlog.New(h.logBuf)
	labels := make([]string, classes)
	for i := range labels {
		labels[i] = "cls"
	}
	h.driver = NewDriver(vision.NewFrame(4, 4, 3), h.camera, h.engine,
		h.display, h.buttons, log, labels)
	return h
}

// step runs one full iteration: sense then dispatch, optionally with a
// command character queued.
func (h *harness) step(t *testing.T, cmds ...byte) {
	for _, c := range cmds {
		h.iter.PostMessage(&command.Msg{Char: c})
	}
	require.NoError(t, h.driver.Sense(h.iter))
	require.NoError(t, h.driver.Dispatch(h.iter))
}

func TestTrainingOnDigitCommand(t *testing.T) {
	h := newHarness(10, make([]int8, 10))

	h.step(t, 't')
	require.Equal(t, Training, h.driver.Modes.Mode())
	require.Contains(t, h.display.statuses, "Train Ready")
	require.Equal(t, 1, h.display.cleared)
	// awaiting class selection: no engine activity yet
	require.Zero(t, h.engine.forwards)

	h.step(t, '2')
	require.Len(t, h.engine.targets, 1)
	target := h.engine.targets[0]
	require.Len(t, target, 10)
	for i, v := range target {
		if i == 2 {
			require.Equal(t, float32(1), v)
		} else {
			require.Equal(t, float32(0), v)
		}
	}
	// feedback forward pass ran exactly once
	require.Equal(t, 1, h.engine.forwards)
	// capture per Sense plus the two training re-captures
	require.Equal(t, 4, h.camera.captures)
	require.Contains(t, h.logBuf.String(), "Training: Train cls 2\r\n")
	require.Contains(t, h.logBuf.String(), "TRAINING DONE\r\n")
	require.Contains(t, h.logBuf.String(), "READY FOR NEXT TRAINING\r\n")
}

func TestDigitIgnoredOutsideTraining(t *testing.T) {
	h := newHarness(10, make([]int8, 10))

	h.step(t, '9')
	require.Equal(t, Inference, h.driver.Modes.Mode())
	// forward pass still runs unconditionally
	require.Equal(t, 1, h.engine.forwards)
	require.Empty(t, h.engine.targets)
}

func TestValidationEmitsCompletionLine(t *testing.T) {
	scores := make([]int8, 10)
	scores[4] = 50
	h := newHarness(10, scores)

	h.step(t, 'v')
	require.Contains(t, h.logBuf.String(), "INFERENCE COMPLETE: 4\r\n")
	require.Contains(t, h.display.statuses, " Validation ")
}

func TestInferenceEmitsNoCompletionLine(t *testing.T) {
	scores := make([]int8, 10)
	scores[4] = 50
	h := newHarness(10, scores)

	h.step(t)
	require.Equal(t, 1, h.engine.forwards)
	require.NotContains(t, h.logBuf.String(), "INFERENCE COMPLETE")
	require.Contains(t, h.display.statuses, " Inference ")
}

func TestInvalidClassRejectedBeforeTraining(t *testing.T) {
	h := newHarness(5, make([]int8, 5))

	h.step(t, 't')
	h.step(t, '9')
	require.Contains(t, h.logBuf.String(), "Invalid class number 9\r\n")
	require.Empty(t, h.engine.targets)
	require.Zero(t, h.engine.forwards)
	require.Equal(t, Training, h.driver.Modes.Mode())
}

func TestButtonShortcuts(t *testing.T) {
	h := newHarness(5, make([]int8, 5))
	h.step(t, 't')

	h.buttons.b = true
	h.step(t)
	require.Len(t, h.engine.targets, 1)
	cls, err := engine.TargetClass(h.engine.targets[0])
	require.NoError(t, err)
	require.Equal(t, 1, cls)

	// button B wins over button A
	h.buttons.a = true
	h.step(t)
	cls, err = engine.TargetClass(h.engine.targets[1])
	require.NoError(t, err)
	require.Equal(t, 1, cls)

	// digit command wins over buttons
	h.step(t, '3')
	cls, err = engine.TargetClass(h.engine.targets[2])
	require.NoError(t, err)
	require.Equal(t, 3, cls)
}

func TestTrainingFeedbackOutcome(t *testing.T) {
	scores := make([]int8, 5)
	scores[2] = 40
	h := newHarness(5, scores)
	h.step(t, 't')

	h.step(t, '2')
	require.Equal(t, []display.Outcome{display.Match}, h.display.outcomes)

	h.step(t, '0')
	require.Equal(t, display.Mismatch, h.display.outcomes[1])
}

func TestTrainReadyNotRetriggered(t *testing.T) {
	h := newHarness(5, make([]int8, 5))
	h.step(t, 't')
	h.step(t, 't')
	h.step(t)

	ready := 0
	for _, s := range h.display.statuses {
		if s == "Train Ready" {
			ready++
		}
	}
	require.Equal(t, 1, ready)
	require.Equal(t, 1, h.display.cleared)
}

func TestCommandLoggedVerbatim(t *testing.T) {
	h := newHarness(5, make([]int8, 5))
	h.step(t, 'x')
	require.Contains(t, h.logBuf.String(), "COMMAND RECEIVED: x\r\n")
	// the sentinel itself is never logged
	h.logBuf.Reset()
	h.step(t)
	require.NotContains(t, h.logBuf.String(), "COMMAND RECEIVED")
}

func TestPreviewUpdatesWhileTrainingIdles(t *testing.T) {
	h := newHarness(5, make([]int8, 5))
	h.step(t, 't')
	h.step(t)
	h.step(t)
	require.Equal(t, 3, h.display.previews)
	require.Zero(t, h.engine.forwards)
}
