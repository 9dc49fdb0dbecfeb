// Package command delivers operator command characters to the control
// loop. Recognized values are 't' (training), 'i' (inference), 'v'
// (validation) and ASCII digits declaring a training class; everything
// else is a no-op. The loop consumes at most one command per iteration;
// later arrivals stay queued.
package command

import (
	fx "github.com/edgetalks/traincam.go/pkg/framework"
)

// NoCommand is the per-iteration sentinel meaning "no command
// received". It is deliberately an ordinary character outside the
// recognized set, so sources never need to special-case it.
const NoCommand byte = 'c'

// Msg carries one command character into the loop.
type Msg struct {
	Char byte
}

// NewMessage implements Message.
func (m *Msg) NewMessage() fx.Message { return &Msg{} }

// Take consumes at most one command from the iteration's message store
// and returns it, or NoCommand when none arrived. Remaining commands
// stay queued for later iterations.
func Take(store fx.MessageStore) byte {
	cmd := NoCommand
	store.ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		if msg, ok := mctx.CurrentMessage().(*Msg); ok {
			cmd = msg.Char
			mctx.MessageTaken()
			mctx.StopProcessing()
		}
	}))
	return cmd
}
