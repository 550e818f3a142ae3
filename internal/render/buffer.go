package render

import (
	"fmt"

	"github.com/jdhollis/kyte/internal/geom"
)

// Buffer is a flat, row-major grid of cells covering a rectangular region of
// the terminal. The invariant len(cells) == area.Width*area.Height holds at
// all times; Resize re-establishes it.
type Buffer struct {
	cells []Cell
	area  geom.Rect
}

// NewBuffer creates a buffer for the given area, filled with blank cells.
func NewBuffer(area geom.Rect) *Buffer {
	b := &Buffer{}
	b.allocate(area)
	return b
}

func (b *Buffer) allocate(area geom.Rect) {
	b.area = area
	b.cells = make([]Cell, area.Area())
	for i := range b.cells {
		b.cells[i] = EmptyCell()
	}
}

// Area returns the region the buffer represents.
func (b *Buffer) Area() geom.Rect {
	return b.area
}

// index maps buffer-local coordinates to a linear offset.
func (b *Buffer) index(x, y int) int {
	return y*b.area.Width + x
}

// CellAt returns the cell at (x, y). Out-of-bounds reads return a blank
// cell.
func (b *Buffer) CellAt(x, y int) Cell {
	if x < 0 || x >= b.area.Width || y < 0 || y >= b.area.Height {
		return EmptyCell()
	}
	return b.cells[b.index(x, y)]
}

// SetCell stores a cell at (x, y). Out-of-bounds writes are ignored.
func (b *Buffer) SetCell(x, y int, cell Cell) {
	if x < 0 || x >= b.area.Width || y < 0 || y >= b.area.Height {
		return
	}
	b.cells[b.index(x, y)] = cell
}

// Clear resets every cell to blank.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = EmptyCell()
	}
}

// Resize reallocates storage to match newArea, keeping the content of every
// cell whose coordinates remain in bounds and default-filling the rest.
func (b *Buffer) Resize(newArea geom.Rect) {
	if newArea == b.area {
		return
	}

	old := b.cells
	oldArea := b.area
	b.allocate(newArea)

	copyWidth := min(oldArea.Width, newArea.Width)
	copyHeight := min(oldArea.Height, newArea.Height)
	for y := 0; y < copyHeight; y++ {
		for x := 0; x < copyWidth; x++ {
			b.cells[b.index(x, y)] = old[y*oldArea.Width+x]
		}
	}
}

// CellChange is one changed cell together with its buffer coordinates.
type CellChange struct {
	Cell Cell
	X, Y int
}

// Diff returns the cells of b that differ from other at the same position,
// in row-major order.
//
// If the two buffers cover different areas, positional comparison is
// meaningless and the diff is every cell of b: a full repaint.
func (b *Buffer) Diff(other *Buffer) []CellChange {
	if b.area != other.area {
		changes := make([]CellChange, 0, len(b.cells))
		for i, cell := range b.cells {
			changes = append(changes, CellChange{Cell: cell, X: i % b.area.Width, Y: i / b.area.Width})
		}
		return changes
	}

	var changes []CellChange
	for i, cell := range b.cells {
		if !cell.Equals(other.cells[i]) {
			changes = append(changes, CellChange{Cell: cell, X: i % b.area.Width, Y: i / b.area.Width})
		}
	}
	return changes
}

// copyFrom makes b an exact copy of other.
func (b *Buffer) copyFrom(other *Buffer) {
	if b.area != other.area {
		b.allocate(other.area)
	}
	copy(b.cells, other.cells)
}

// String renders the buffer's symbols as lines of text, for test failures.
func (b *Buffer) String() string {
	out := make([]byte, 0, len(b.cells)+b.area.Height)
	for y := 0; y < b.area.Height; y++ {
		for x := 0; x < b.area.Width; x++ {
			c := b.cells[b.index(x, y)]
			if c.IsContinuation() {
				continue
			}
			out = append(out, string(c.Rune)...)
		}
		out = append(out, '\n')
	}
	return string(out)
}

// checkInvariant panics if the size invariant is broken. It exists for
// tests; all mutating methods preserve the invariant.
func (b *Buffer) checkInvariant() {
	if len(b.cells) != b.area.Area() {
		panic(fmt.Sprintf("buffer invariant broken: %d cells for %v", len(b.cells), b.area))
	}
}
