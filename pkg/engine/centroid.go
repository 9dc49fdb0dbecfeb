package engine

import "fmt"

// DefaultNativeClasses matches the label space of the quantized models
// this appliance ships with.
const DefaultNativeClasses = 10

// DefaultRate is the centroid fold-in rate for one training step.
const DefaultRate = 0.5

// Centroid is a trainable classifier keeping one running centroid per
// native class. A forward pass scores each human-facing class by the
// negated mean absolute distance between the frame and its centroid,
// clamped into the int8 score range. A training step folds the frame
// into the labeled centroid.
//
// An untrained centroid stays at the zero vector, so real frames score
// low against it until the class has seen at least one sample.
type Centroid struct {
	Rate float32

	classes   int
	native    int
	centroids [][]float32
}

// NewCentroid creates an engine with the given human-facing class count
// and native label space.
func NewCentroid(classes, native int) *Centroid {
	if native < classes {
		native = classes
	}
	return &Centroid{
		Rate:      DefaultRate,
		classes:   classes,
		native:    native,
		centroids: make([][]float32, native),
	}
}

// Classes implements Engine.
func (e *Centroid) Classes() int {
	return e.classes
}

// NativeClasses implements Engine.
func (e *Centroid) NativeClasses() int {
	return e.native
}

// Forward implements Engine.
func (e *Centroid) Forward(frame []int8) ([]int8, error) {
	if len(frame) == 0 {
		return nil, fmt.Errorf("empty frame")
	}
	scores := make([]int8, e.classes)
	for c := 0; c < e.classes; c++ {
		d := e.distance(c, frame)
		s := 127 - int32(d)
		if s < -128 {
			s = -128
		}
		scores[c] = int8(s)
	}
	return scores, nil
}

// TrainStep implements Engine.
func (e *Centroid) TrainStep(frame []int8, target []float32) error {
	if len(frame) == 0 {
		return fmt.Errorf("empty frame")
	}
	if len(target) != e.native {
		return fmt.Errorf("target length %d, want %d", len(target), e.native)
	}
	cls, err := TargetClass(target)
	if err != nil {
		return err
	}
	cen := e.centroids[cls]
	if cen == nil {
		cen = make([]float32, len(frame))
		e.centroids[cls] = cen
	}
	if len(cen) != len(frame) {
		return fmt.Errorf("frame length %d, want %d", len(frame), len(cen))
	}
	for i, s := range frame {
		cen[i] += e.Rate * (float32(s) - cen[i])
	}
	return nil
}

// distance is the mean absolute distance between frame and the class
// centroid, in sample units.
func (e *Centroid) distance(cls int, frame []int8) float32 {
	cen := e.centroids[cls]
	var sum float32
	for i, s := range frame {
		var c float32
		if cen != nil {
			c = cen[i]
		}
		d := float32(s) - c
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum / float32(len(frame))
}
