package display

import (
	"fmt"
	"io"
	"time"

	"github.com/golang/glog"
)

// Term renders the display contract as plain text, one line per
// update. It is the rendering surface when the appliance runs headless;
// previews are summarized at a high verbosity level instead of drawn.
type Term struct {
	Out io.Writer
}

// Preview implements Display.
func (t *Term) Preview(pixels []uint16, side int) {
	if glog.V(3) {
		var sum uint32
		for _, p := range pixels {
			sum += uint32(p)
		}
		glog.Infof("preview %dx%d checksum %08x", side, side, sum)
	}
}

// Status implements Display.
func (t *Term) Status(text string) {
	fmt.Fprintf(t.Out, "[status] %s\n", text)
}

// Result implements Display.
func (t *Term) Result(lines []string, outcome Outcome) {
	fmt.Fprintf(t.Out, "[result %s]\n", outcome)
	for _, line := range lines {
		// pad to the panel width to wipe previous text
		fmt.Fprintf(t.Out, "  %-*s\n", LineWidth, line)
	}
}

// Elapsed implements Display.
func (t *Term) Elapsed(d time.Duration) {
	ms := float64(d) / float64(time.Millisecond)
	if ms == 0 {
		return
	}
	rate := 1000 / ms
	decimal := int(rate)
	floating := int((rate - float64(decimal)) * 1000)
	fmt.Fprintf(t.Out, "  fps:%d.%03d \n", decimal, floating)
}

// ClearResult implements Display.
func (t *Term) ClearResult() {
	fmt.Fprintf(t.Out, "[result cleared]\n")
}
