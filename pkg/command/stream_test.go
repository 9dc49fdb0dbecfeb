package command

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fx "github.com/edgetalks/traincam.go/pkg/framework"
)

func TestTakeOneCommandPerIteration(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop := fx.NewLoop()
	loop.Interval = time.Millisecond

	var got []byte
	loop.AddController(fx.StageControl, fx.ControlFunc(func(cc fx.ControlContext) error {
		got = append(got, Take(cc.Messages()))
		if len(got) >= 3 {
			cancel()
		}
		return nil
	}))
	loop.PostMessage(&Msg{Char: 't'})
	loop.PostMessage(&Msg{Char: '2'})

	err := loop.Run(ctx)
	require.Equal(t, context.Canceled, err)
	require.Equal(t, []byte{'t', '2', NoCommand}, got[:3])
}

func TestStreamSourcePostsCharacters(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop := fx.NewLoop()
	loop.Interval = time.Millisecond
	loop.Add(&StreamSource{Reader: strings.NewReader("t\r\n2")})

	var got []byte
	loop.AddController(fx.StageControl, fx.ControlFunc(func(cc fx.ControlContext) error {
		if c := Take(cc.Messages()); c != NoCommand {
			got = append(got, c)
		}
		if len(got) >= 2 {
			cancel()
		}
		return nil
	}))

	loop.Run(ctx)
	require.Equal(t, []byte{'t', '2'}, got)
}
