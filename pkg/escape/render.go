package escape

import (
	"bufio"
	"io"
)

const (
	insideGlyph  = ' '
	outsideGlyph = '*'
)

// Render scans the frame row-major under v, writing one glyph per pixel:
// a space for points that reach the iteration cap, an asterisk for
// points that escape, and a newline after each row.
//
// Every pixel costs a full evaluation; nothing is cached between pixels
// or frames, so identical parameters always reproduce identical bytes.
func (f Frame) Render(w io.Writer, v View) error {
	bw := bufio.NewWriter(w)

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.PointAt(x, y, v)

			if f.Time(c) == f.MaxIterations {
				bw.WriteByte(insideGlyph)
			} else {
				bw.WriteByte(outsideGlyph)
			}
		}

		bw.WriteByte('\n')
	}

	return bw.Flush()
}
