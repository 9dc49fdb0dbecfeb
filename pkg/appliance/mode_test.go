package appliance

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edgetalks/traincam.go/pkg/coordlog"
)

func TestModeMachineTransitions(t *testing.T) {
	testCases := []struct {
		name     string
		commands []byte
		expect   Mode
	}{
		{
			name:     "default is inference",
			commands: nil,
			expect:   Inference,
		},
		{
			name:     "switch to training",
			commands: []byte{'t'},
			expect:   Training,
		},
		{
			name:     "switch to validation",
			commands: []byte{'v'},
			expect:   Validation,
		},
		{
			name:     "training then inference",
			commands: []byte{'t', 'i'},
			expect:   Inference,
		},
		{
			name:     "validation then training",
			commands: []byte{'v', 't'},
			expect:   Training,
		},
		{
			name:     "last switch wins",
			commands: []byte{'t', 'v', 'i', 'v'},
			expect:   Validation,
		},
		{
			name:     "unrecognized characters ignored",
			commands: []byte{'x', 'c', '7'},
			expect:   Inference,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewModeMachine(coordlog.New())
			for _, c := range tc.commands {
				m.Apply(c)
			}
			require.Equal(t, tc.expect, m.Mode())
		})
	}
}

func TestJustStartedFlagRaisedOnEdgeOnly(t *testing.T) {
	m := NewModeMachine(coordlog.New())

	m.Apply('t')
	require.True(t, m.ConsumeJustStarted())
	// consumed: stays down within the session
	require.False(t, m.ConsumeJustStarted())

	// idempotent re-entry does not re-raise
	m.Apply('t')
	require.False(t, m.ConsumeJustStarted())

	// leaving and re-entering raises again
	m.Apply('i')
	m.Apply('t')
	require.True(t, m.ConsumeJustStarted())
}

func TestJustStartedClearedBySwitchAway(t *testing.T) {
	m := NewModeMachine(coordlog.New())
	m.Apply('t')
	m.Apply('i')
	require.False(t, m.ConsumeJustStarted())
	require.Equal(t, Inference, m.Mode())
}

func TestModeSwitchLogsNewMode(t *testing.T) {
	var buf bytes.Buffer
	m := NewModeMachine(coordlog.New(&buf))
	m.Apply('t')
	m.Apply('v')
	m.Apply('i')
	require.Equal(t,
		"Switching to training mode\r\n"+
			"Switching to validation mode\r\n"+
			"Switching to inference mode\r\n",
		buf.String())
}
