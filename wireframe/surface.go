package wireframe

// Color is a monochrome pixel state.
type Color uint8

const (
	Off Color = iota
	On
)

// Surface is the only thing the pipeline needs from a display.
//
// Implementations own clipping: DrawLine may receive coordinates outside
// 0..w-1 / 0..h-1.
type Surface interface {
	Size() (w, h int)
	DrawLine(x0, y0, x1, y1 int, c Color)
}
