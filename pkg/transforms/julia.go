package transforms

// Julia is the quadratic step z ← z² + C for a fixed parameter C.
//
// Unlike Mandelbrot, the added constant does not vary with the starting
// coordinate, so every orbit iterates toward the same Julia set.
type Julia struct {
	C complex128
}

func (j Julia) Next(z, _ complex128) complex128 {
	return z*z + j.C
}

var _ Transform = Julia{}
