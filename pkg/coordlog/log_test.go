package coordlog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStructuredLineForms(t *testing.T) {
	testCases := []struct {
		name   string
		emit   func(l *Log)
		expect string
	}{
		{
			name:   "command received",
			emit:   func(l *Log) { l.CommandReceived('t') },
			expect: "COMMAND RECEIVED: t\r\n",
		},
		{
			name:   "train class",
			emit:   func(l *Log) { l.TrainClass(2) },
			expect: "Training: Train cls 2\r\n",
		},
		{
			name:   "training done",
			emit:   func(l *Log) { l.TrainingDone() },
			expect: "TRAINING DONE\r\n",
		},
		{
			name:   "ready for next",
			emit:   func(l *Log) { l.ReadyForNext() },
			expect: "READY FOR NEXT TRAINING\r\n",
		},
		{
			name:   "inference complete",
			emit:   func(l *Log) { l.InferenceComplete(4) },
			expect: "INFERENCE COMPLETE: 4\r\n",
		},
		{
			name:   "invalid class",
			emit:   func(l *Log) { l.InvalidClass(9) },
			expect: "Invalid class number 9\r\n",
		},
		{
			name:   "free-form status",
			emit:   func(l *Log) { l.Statusf("Switching to %s mode", "training") },
			expect: "Switching to training mode\r\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			tc.emit(New(&buf))
			require.Equal(t, tc.expect, buf.String())
		})
	}
}

func TestAttachFansOut(t *testing.T) {
	var a, b bytes.Buffer
	l := New(&a)
	l.Attach(&b)
	l.TrainingDone()
	require.Equal(t, "TRAINING DONE\r\n", a.String())
	require.Equal(t, "TRAINING DONE\r\n", b.String())
}
