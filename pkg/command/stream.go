package command

import (
	"context"
	"io"

	"github.com/golang/glog"

	fx "github.com/edgetalks/traincam.go/pkg/framework"
)

// StreamSource reads command characters one byte at a time from a byte
// stream (serial line, stdin) and posts them to the loop. Line
// terminators are skipped so the source works with line-buffered
// terminals as well as raw serial input.
type StreamSource struct {
	Reader io.Reader
}

// AddToLoop implements LoopAdder.
func (s *StreamSource) AddToLoop(l *fx.Loop) {
	l.AddRunnable(fx.NamedRun("command-stream", s))
}

// Run implements Runnable.
func (s *StreamSource) Run(ctx context.Context) error {
	loopCtl := fx.LoopCtlFrom(ctx)
	return fx.RunWithContext(ctx, func() error {
		buf := make([]byte, 1)
		for {
			n, err := s.Reader.Read(buf)
			if err == io.EOF {
				glog.V(1).Info("command stream closed")
				return nil
			}
			if err != nil {
				return err
			}
			if n == 0 || buf[0] == '\r' || buf[0] == '\n' {
				continue
			}
			loopCtl.PostMessage(&Msg{Char: buf[0]})
			loopCtl.TriggerNext()
		}
	})
}
