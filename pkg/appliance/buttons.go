package appliance

// Buttons samples the two physical class-shortcut lines. The levels are
// active (pressed) booleans, sampled once per iteration and meaningful
// only while in Training mode: button A declares class 0, button B
// declares class 1.
type Buttons interface {
	Levels() (classA, classB bool)
}

// NoButtons is the Buttons source for appliances without physical
// buttons wired.
type NoButtons struct{}

// Levels implements Buttons.
func (NoButtons) Levels() (bool, bool) { return false, false }
