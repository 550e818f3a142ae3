// Package geom provides terminal-cell geometry: rectangular regions and
// strategies for splitting one region into sub-regions.
package geom

import "fmt"

// Rect is a rectangular region of the terminal in cell coordinates.
// All fields are non-negative.
type Rect struct {
	Top    int
	Left   int
	Width  int
	Height int
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(top, left, width, height int) Rect {
	return Rect{Top: top, Left: left, Width: width, Height: height}
}

// Right returns the exclusive right edge coordinate.
func (r Rect) Right() int {
	return r.Left + r.Width
}

// Bottom returns the exclusive bottom edge coordinate.
func (r Rect) Bottom() int {
	return r.Top + r.Height
}

// Area returns the number of cells the rectangle covers.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// IsEmpty returns true if the rectangle covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the cell at (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

// String returns a readable representation for logs and test failures.
func (r Rect) String() string {
	return fmt.Sprintf("Rect(top=%d left=%d %dx%d)", r.Top, r.Left, r.Width, r.Height)
}

// Partition turns a single rectangle into an ordered list of smaller
// rectangles. A partition is a pure function: the parts must not exceed the
// bounds of the input and together must cover it exactly.
type Partition func(Rect) []Rect

// Split applies a partition strategy to the rectangle.
func (r Rect) Split(p Partition) []Rect {
	return p(r)
}

// BottomSplit splits a rectangle into its final row and everything above it.
// The returned slice has exactly two elements: index 0 is the bottom row
// (height 1) and index 1 is the remainder (height−1).
//
// The input must have height of at least 1; callers are responsible for
// guarding against degenerate terminal sizes.
func BottomSplit(r Rect) []Rect {
	return []Rect{
		{Top: r.Top + r.Height - 1, Left: r.Left, Width: r.Width, Height: 1},
		{Top: r.Top, Left: r.Left, Width: r.Width, Height: r.Height - 1},
	}
}
