package transforms

// Mandelbrot is the classic quadratic step z ← z² + c.
type Mandelbrot struct{}

func (Mandelbrot) Next(z, c complex128) complex128 {
	return z*z + c
}

var _ Transform = Mandelbrot{}
