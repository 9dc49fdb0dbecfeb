package vision

// SimSource generates deterministic gradient frames, shifting one step
// per capture. It stands in for the camera when the appliance runs
// without a sensor.
type SimSource struct {
	Width    int
	Height   int
	Channels int

	tick int
}

// Capture implements Source.
func (s *SimSource) Capture(dst []int8) error {
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			base := (y*s.Width + x) * s.Channels
			for c := 0; c < s.Channels; c++ {
				dst[base+c] = int8((x + y + s.tick + c*32) % 256 - 128)
			}
		}
	}
	s.tick++
	return nil
}
