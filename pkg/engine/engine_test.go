package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOneHot(t *testing.T) {
	testCases := []struct {
		name  string
		label int
		n     int
		hot   int
	}{
		{
			name:  "first class",
			label: 0,
			n:     10,
			hot:   0,
		},
		{
			name:  "mid class",
			label: 2,
			n:     10,
			hot:   2,
		},
		{
			name:  "last class",
			label: 9,
			n:     10,
			hot:   9,
		},
		{
			name:  "label beyond native space wraps",
			label: 12,
			n:     10,
			hot:   2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := OneHot(tc.label, tc.n)
			require.Len(t, v, tc.n)
			for i, x := range v {
				if i == tc.hot {
					require.Equal(t, float32(1), x)
				} else {
					require.Equal(t, float32(0), x)
				}
			}
		})
	}
}

func TestTargetClass(t *testing.T) {
	cls, err := TargetClass([]float32{0, 0, 1, 0})
	require.NoError(t, err)
	require.Equal(t, 2, cls)

	_, err = TargetClass([]float32{0, 0, 0})
	require.Error(t, err)

	_, err = TargetClass([]float32{1, 1, 0})
	require.Error(t, err)

	_, err = TargetClass([]float32{0, 0.5, 0})
	require.Error(t, err)
}

func TestCentroidLearnsClass(t *testing.T) {
	e := NewCentroid(3, 10)
	require.Equal(t, 3, e.Classes())
	require.Equal(t, 10, e.NativeClasses())

	frame := []int8{50, -40, 30, -20, 60, -60, 10, -10}
	for i := 0; i < 4; i++ {
		require.NoError(t, e.TrainStep(frame, OneHot(1, e.NativeClasses())))
	}

	scores, err := e.Forward(frame)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	require.Equal(t, 1, argmax(scores))
}

func TestCentroidUntrainedScoresEqual(t *testing.T) {
	e := NewCentroid(4, 10)
	frame := []int8{10, 20, 30}
	scores, err := e.Forward(frame)
	require.NoError(t, err)
	for _, s := range scores[1:] {
		require.Equal(t, scores[0], s)
	}
}

func TestCentroidTrainStepRejectsBadTarget(t *testing.T) {
	e := NewCentroid(2, 10)
	frame := []int8{1, 2, 3}

	// wrong length
	require.Error(t, e.TrainStep(frame, []float32{1, 0}))
	// no class set
	require.Error(t, e.TrainStep(frame, make([]float32, 10)))
	// geometry changed between steps
	require.NoError(t, e.TrainStep(frame, OneHot(0, 10)))
	require.Error(t, e.TrainStep([]int8{1, 2}, OneHot(0, 10)))
}

func argmax(scores []int8) int {
	best := 0
	for i := range scores {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return best
}
