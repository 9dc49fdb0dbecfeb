// Package engine defines the neural engine capability consumed by the
// control loop, and a small trainable implementation usable without
// accelerator hardware.
package engine

import "fmt"

// Engine performs one forward pass or one on-device training step over
// a caller-owned frame buffer. Calls are blocking and loop-synchronous;
// implementations are single-writer and need no internal locking.
type Engine interface {
	// Classes is the number of human-facing output classes. Forward
	// returns a score vector of exactly this length.
	Classes() int
	// NativeClasses is the length of the engine's native label
	// space. It may exceed Classes.
	NativeClasses() int
	// Forward runs one inference pass and returns per-class scores.
	// Higher value means higher confidence.
	Forward(frame []int8) ([]int8, error)
	// TrainStep runs one learning update toward the one-hot target.
	TrainStep(frame []int8, target []float32) error
}

// OneHot builds a length-n label vector with a single 1.0 entry. The
// human-facing class space may be smaller than the engine's native one;
// the index is reduced modulo n so an in-range label can never write
// outside the target vector.
func OneHot(label, n int) []float32 {
	v := make([]float32, n)
	v[label%n] = 1
	return v
}

// TargetClass returns the index of the 1.0 entry of a one-hot target.
func TargetClass(target []float32) (int, error) {
	cls := -1
	for i, v := range target {
		if v == 1 {
			if cls >= 0 {
				return 0, fmt.Errorf("target has multiple classes set")
			}
			cls = i
		} else if v != 0 {
			return 0, fmt.Errorf("target entry %d is %v, want 0 or 1", i, v)
		}
	}
	if cls < 0 {
		return 0, fmt.Errorf("target has no class set")
	}
	return cls, nil
}
