package text

import "fmt"

// Pos is a position in document coordinates: Row is the line index and Col
// is the character offset within that line. A valid position satisfies
// Row < line count and Col <= length of the addressed line.
type Pos struct {
	Col int
	Row int
}

// String returns a readable representation for logs and panics.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}
