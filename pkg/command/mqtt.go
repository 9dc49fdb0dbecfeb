package command

import (
	"context"

	"github.com/edgetalks/traincam.go/pkg/comm/mqtt"
	fx "github.com/edgetalks/traincam.go/pkg/framework"
)

// MQTTSource posts command characters received on a broker topic, one
// character per message. Extra payload bytes are ignored.
type MQTTSource struct {
	Queue *mqtt.Queue
	Topic string
}

// AddToLoop implements LoopAdder.
func (s *MQTTSource) AddToLoop(l *fx.Loop) {
	l.AddRunnable(fx.NamedRun("command-mqtt", s))
}

// Run implements Runnable.
func (s *MQTTSource) Run(ctx context.Context) error {
	loopCtl := fx.LoopCtlFrom(ctx)
	sub := s.Queue.Sub(s.Topic, func(topic string, payload []byte) {
		if len(payload) == 0 {
			return
		}
		loopCtl.PostMessage(&Msg{Char: payload[0]})
		loopCtl.TriggerNext()
	})
	defer sub.Close()
	<-ctx.Done()
	return ctx.Err()
}
