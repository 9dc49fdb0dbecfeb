package vision

// PadSample fills the part of the square working buffer the sensor does
// not cover. It maps to black after the display conversion.
const PadSample int8 = -128

// Source produces one raw frame into the caller-provided buffer. The
// call blocks until the frame is complete; previous contents of dst are
// fully overwritten.
type Source interface {
	Capture(dst []int8) error
}

// Frame owns the single shared input buffer and the display-ready
// RGB565 view derived from it. There is exactly one Frame per
// appliance, allocated at startup and overwritten in place on every
// capture.
type Frame struct {
	Width    int
	Height   int
	Channels int

	// Samples holds side*side*Channels signed samples: the sensor
	// region first, then padding up to the square working region.
	Samples []int8
	// Pixels is the RGB565 view of Samples, refreshed on capture.
	Pixels []uint16

	side int
}

// NewFrame allocates the shared frame for a sensor of the given
// geometry. The working region is square with side max(width, height).
func NewFrame(width, height, channels int) *Frame {
	side := width
	if height > side {
		side = height
	}
	return &Frame{
		Width:    width,
		Height:   height,
		Channels: channels,
		Samples:  make([]int8, side*side*channels),
		Pixels:   make([]uint16, side*side),
		side:     side,
	}
}

// Side returns the side of the square working region.
func (f *Frame) Side() int {
	return f.side
}

// CaptureLatest overwrites the buffer with the newest frame from src,
// pads the shorter dimension and refreshes the pixel view. After it
// returns the buffer holds strictly the newest frame; capture is
// synchronous so no partial-frame hazard exists.
func (f *Frame) CaptureLatest(src Source) error {
	if err := src.Capture(f.Samples[:f.Width*f.Height*f.Channels]); err != nil {
		return err
	}
	f.pad()
	f.convert()
	return nil
}

func (f *Frame) pad() {
	for i := f.Width * f.Height * f.Channels; i < len(f.Samples); i++ {
		f.Samples[i] = PadSample
	}
}

// convert derives the RGB565 view. Samples are signed and centered on
// zero; shifting by 128 restores the unsigned channel value.
func (f *Frame) convert() {
	for i := 0; i < f.side*f.side; i++ {
		var red, green, blue uint16
		if f.Channels >= 3 {
			red = uint16(int32(f.Samples[i*f.Channels]) + 128)
			green = uint16(int32(f.Samples[i*f.Channels+1]) + 128)
			blue = uint16(int32(f.Samples[i*f.Channels+2]) + 128)
		} else {
			gray := uint16(int32(f.Samples[i*f.Channels]) + 128)
			red, green, blue = gray, gray, gray
		}
		f.Pixels[i] = (((red >> 3) & 0x1f) << 11) |
			(((green >> 2) & 0x3f) << 5) |
			((blue >> 3) & 0x1f)
	}
}
