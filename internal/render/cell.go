package render

import "github.com/mattn/go-runewidth"

// Cell is a single terminal cell: a displayed symbol plus its style.
// Cells are value types; they have no identity beyond their position in a
// Buffer.
type Cell struct {
	// Rune is the character to display. A value of 0 marks a continuation
	// cell, the second column of a wide character.
	Rune rune

	// Width is the display width: 0 for continuation cells, 1 for normal
	// characters, 2 for wide (CJK) characters.
	Width int

	// Style is the visual style for this cell.
	Style Style
}

// EmptyCell returns a blank cell: a space in the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1, Style: DefaultStyle()}
}

// NewCell creates a cell with the given rune and style.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Style: style}
}

// ContinuationCell returns the trailing cell of a wide character.
func ContinuationCell(style Style) Cell {
	return Cell{Rune: 0, Width: 0, Style: style}
}

// IsContinuation returns true for the second cell of a wide character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0 && c.Rune == 0
}

// Equals compares two cells by value.
func (c Cell) Equals(other Cell) bool {
	return c.Rune == other.Rune &&
		c.Width == other.Width &&
		c.Style.Equals(other.Style)
}

// RuneWidth returns the display width of a rune: 0 for control characters,
// 1 for normal characters, 2 for wide characters.
func RuneWidth(r rune) int {
	if r < 32 || r == 0x7F {
		return 0
	}
	return runewidth.RuneWidth(r)
}
