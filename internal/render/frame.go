package render

import "github.com/jdhollis/kyte/internal/geom"

// Frame is a bounded drawing handle into the buffer currently being
// composed. A Frame is only valid for the duration of one Draw call; widgets
// receive it together with the region they may paint.
type Frame struct {
	buffer *Buffer
}

// NewFrame wraps a buffer for direct composition, mainly for widget tests.
// During normal operation Draw hands widgets their frame.
func NewFrame(buf *Buffer) *Frame {
	return &Frame{buffer: buf}
}

// Renderable is anything that can paint itself onto a region of a frame.
type Renderable interface {
	Render(f *Frame, region geom.Rect)
}

// Area returns the full area of the underlying buffer.
func (f *Frame) Area() geom.Rect {
	return f.buffer.Area()
}

// Render draws a widget into the given region.
func (f *Frame) Render(item Renderable, region geom.Rect) {
	item.Render(f, region)
}

// SetCell places a cell at absolute buffer coordinates. Writes outside the
// buffer are ignored.
func (f *Frame) SetCell(x, y int, cell Cell) {
	f.buffer.SetCell(x, y, cell)
}

// SetRune places a styled rune at absolute buffer coordinates, adding a
// continuation cell after wide characters.
func (f *Frame) SetRune(x, y int, r rune, style Style) {
	cell := NewCell(r, style)
	f.buffer.SetCell(x, y, cell)
	if cell.Width == 2 {
		f.buffer.SetCell(x+1, y, ContinuationCell(style))
	}
}

// SetString writes a string starting at (x, y), clipped to the region.
// Returns the x coordinate one past the last cell written.
func (f *Frame) SetString(x, y int, s string, style Style, region geom.Rect) int {
	for _, r := range s {
		w := RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > region.Right() {
			break
		}
		f.SetRune(x, y, r, style)
		x += w
	}
	return x
}

// SetStyle applies a style to every cell in the region, keeping symbols.
func (f *Frame) SetStyle(style Style, region geom.Rect) {
	for y := region.Top; y < region.Bottom(); y++ {
		for x := region.Left; x < region.Right(); x++ {
			cell := f.buffer.CellAt(x, y)
			cell.Style = style
			f.buffer.SetCell(x, y, cell)
		}
	}
}

// Fill sets every cell in the region to the given cell.
func (f *Frame) Fill(region geom.Rect, cell Cell) {
	for y := region.Top; y < region.Bottom(); y++ {
		for x := region.Left; x < region.Right(); x++ {
			f.buffer.SetCell(x, y, cell)
		}
	}
}
