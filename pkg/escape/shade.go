package escape

// RGB is an 8-bit-per-channel color triple.
type RGB struct {
	R, G, B int
}

// Shade maps an escape time to a banded ramp keyed to divergence speed.
// Points that reach the iteration cap shade black.
//
// The text renderer does not consume this; it is the hook for a graphics
// backend.
func (f Frame) Shade(iterations int) RGB {
	if iterations == f.MaxIterations {
		return RGB{}
	}

	hue := (iterations * 10) % 256

	return RGB{R: hue, G: hue / 2, B: hue / 4}
}
