package framework

import (
	"context"
	"time"
)

// Named is an abstraction for things with a name.
type Named interface {
	Name() string
}

// Runnable defines a generic interface for background runners.
type Runnable interface {
	Run(context.Context) error
}

// Message defines the abstract message consumed by the control loop.
type Message interface {
	// NewMessage creates an empty message.
	NewMessage() Message
}

// Controller defines one piece of per-iteration controlling logic.
type Controller interface {
	Control(ControlContext) error
}

// TimeSource provides the time for controlling logic.
type TimeSource interface {
	Time() time.Time
}

// ControlContext provides the context of the current iteration.
type ControlContext interface {
	TimeSource
	// Context retrieves context.Context.
	Context() context.Context
	// Stage gets the stage currently being run.
	Stage() int
	// Messages retrieves all messages collected when this
	// iteration starts.
	Messages() MessageStore
	// PostRun injects post-run one-shot hooks at the current stage.
	// If called from a post-run hook, new hooks are installed for
	// the next iteration.
	PostRun(hooks ...Controller)

	LoopControl
}

// Stages of one iteration, run in order. Sensing happens first so the
// control logic always observes fresh inputs, then actuation, then
// post-processing such as change notification.
const (
	StageSense int = iota
	StageControl
	StageActuate
	StagePost

	NumStages
)

// LoopControl exposes access to the controlling loop.
type LoopControl interface {
	// PreRunAt injects one-shot pre-run controller hooks at the
	// specified stage.
	PreRunAt(stage int, controllers ...Controller)
	// PostRunAt injects one-shot post-run controller hooks at the
	// specified stage.
	PostRunAt(stage int, controllers ...Controller)
	// PostMessage enqueues the message for the next iteration.
	PostMessage(Message)
	// TriggerNext schedules the next iteration to be executed
	// immediately after the current one.
	TriggerNext()
}

// MessageStore provides read/write access to a list of messages.
type MessageStore interface {
	// ProcessMessages uses a processor to process all messages.
	ProcessMessages(MessageProcessor)

	MessageAppender
}

// MessageAppender appends messages to the store.
type MessageAppender interface {
	// AddMessages appends messages for the next processing cycle.
	AddMessages(msgs ...Message)
}

// MessageProcessor is used by MessageStore to process messages.
type MessageProcessor interface {
	ProcessMessage(MessageProcessingContext)
}

// ProcessMessageFunc is the func form of MessageProcessor.
type ProcessMessageFunc func(MessageProcessingContext)

// ProcessMessage implements MessageProcessor.
func (f ProcessMessageFunc) ProcessMessage(mc MessageProcessingContext) {
	f(mc)
}

// MessageProcessingContext provides context for the current message.
type MessageProcessingContext interface {
	// CurrentMessage gets the message being processed.
	CurrentMessage() Message
	// MessageTaken indicates the message has been consumed and
	// should be removed from the store.
	MessageTaken()
	// StopProcessing indicates no need to examine further messages.
	// Unexamined messages stay queued for the next iteration.
	StopProcessing()

	MessageAppender
}

// ControlFunc defines the func form of Controller.
type ControlFunc func(ControlContext) error

// Control implements Controller.
func (f ControlFunc) Control(ctx ControlContext) error {
	return f(ctx)
}
