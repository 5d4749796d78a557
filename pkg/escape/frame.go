package escape

import (
	"math/cmplx"

	"github.com/willbeason/text-fractal/pkg/transforms"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600

	// DefaultMaxIterations is the orbit step budget. Higher values reveal
	// more detail but take longer to compute.
	DefaultMaxIterations = 100

	// DefaultRadius is the escape radius. Once an orbit's magnitude
	// exceeds 2, divergence is guaranteed for the quadratic step.
	DefaultRadius = 2.0
)

// A View selects the region of the plane a frame covers: the base
// [-2, 2] square shrinks by Zoom and recenters on the offsets.
//
// Zoom must be nonzero; a zero zoom divides through to infinite
// coordinates, which the evaluator then reports as immediate escapes
// rather than failing.
type View struct {
	Zoom             float64
	OffsetX, OffsetY float64
}

// A Frame fixes the pixel grid, iteration budget, and orbit step for
// renders. The zero value is not useful; start from DefaultFrame.
type Frame struct {
	Width, Height int
	MaxIterations int
	Radius        float64
	Step          transforms.Transform
}

// DefaultFrame returns the tutorial's grid: 800×600 pixels, 100
// iterations, escape radius 2, Mandelbrot step.
func DefaultFrame() Frame {
	return Frame{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		MaxIterations: DefaultMaxIterations,
		Radius:        DefaultRadius,
		Step:          transforms.Mandelbrot{},
	}
}

// PointAt maps pixel (x, y) to its plane coordinate under v.
//
// x and y normalize independently onto [-2, 2] across the grid; the view
// then divides by zoom and pans by the offsets.
func (f Frame) PointAt(x, y int, v View) complex128 {
	re := (float64(x)/float64(f.Width)*4-2)/v.Zoom + v.OffsetX
	im := (float64(y)/float64(f.Height)*4-2)/v.Zoom + v.OffsetY

	return complex(re, im)
}

// Time reports the 0-based step at which the orbit for c first leaves
// the escape radius, or MaxIterations if it never does within budget.
//
// Reaching the cap means "presumed inside the set": bounded iteration
// cannot certify membership, only rule it out.
func (f Frame) Time(c complex128) int {
	z := complex(0, 0)

	for i := 0; i < f.MaxIterations; i++ {
		z = f.Step.Next(z, c)

		if cmplx.Abs(z) > f.Radius {
			return i
		}
	}

	return f.MaxIterations
}
