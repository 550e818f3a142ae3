// Package text stores the content of one file being edited and supports
// position-addressed character insertion, deletion, and line splitting.
//
// A document may be bound to a file on disk or free-floating. Opening a
// path that does not exist yields an empty document bound to that path; a
// new file is a normal outcome, not an error.
package text

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Document is the text of a single file under edit, stored as a vector of
// lines. Line lookup by row is constant-time; edits cost the length of the
// affected line. The position-addressed interface is storage-agnostic, so a
// rope can replace the line vector without caller changes.
type Document struct {
	id    uuid.UUID
	lines [][]rune // always holds at least one line
	path  string
}

// New creates an empty, free-floating document.
func New() *Document {
	return &Document{
		id:    uuid.New(),
		lines: [][]rune{{}},
	}
}

// Open reads the file at path into a new document. A missing file yields an
// empty document bound to the path. Other errors (permissions, I/O) are
// returned to the caller.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			d := New()
			d.path = path
			return d, nil
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	d := New()
	d.path = path
	d.lines = splitLines(string(data))
	return d, nil
}

// splitLines breaks content on "\n", "\r\n", or lone "\r". Content ending
// with a line terminator produces a final empty line, which is where the
// cursor goes to append.
func splitLines(content string) [][]rune {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	parts := strings.Split(content, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	return lines
}

// ID returns the document's identity, used in log output.
func (d *Document) ID() uuid.UUID {
	return d.id
}

// Path returns the bound file path, or "" for free-floating documents.
func (d *Document) Path() string {
	return d.path
}

// LineCount returns the number of lines. Never zero.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the content of one line, without any terminator.
func (d *Document) Line(row int) string {
	d.assertRow(row)
	return string(d.lines[row])
}

// LineLen returns the character length of one line.
func (d *Document) LineLen(row int) int {
	d.assertRow(row)
	return len(d.lines[row])
}

// Lines returns a lazy, restartable sequence of line contents in document
// order, in display form (no line terminators).
func (d *Document) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, line := range d.lines {
			if !yield(string(line)) {
				return
			}
		}
	}
}

// LinesFrom iterates the lines starting at the given row. A row at or past
// the end yields nothing.
func (d *Document) LinesFrom(row int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if row < 0 {
			row = 0
		}
		for i := row; i < len(d.lines); i++ {
			if !yield(string(d.lines[i])) {
				return
			}
		}
	}
}

// Contents returns the whole document as a string, lines joined by "\n".
func (d *Document) Contents() string {
	var sb strings.Builder
	for i, line := range d.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// InsertRune inserts one character at pos and returns the position one
// column to the right.
func (d *Document) InsertRune(pos Pos, r rune) Pos {
	d.assertPos(pos)
	line := d.lines[pos.Row]
	d.lines[pos.Row] = slices.Insert(line, pos.Col, r)
	return Pos{Col: pos.Col + 1, Row: pos.Row}
}

// Backspace removes the character before pos and returns the new position.
// At column zero it joins the line with the previous one, returning a
// position at the previous line's old end; at the very start of the
// document it does nothing.
func (d *Document) Backspace(pos Pos) Pos {
	d.assertPos(pos)
	if pos.Col == 0 {
		if pos.Row == 0 {
			return pos
		}
		prevLen := len(d.lines[pos.Row-1])
		d.lines[pos.Row-1] = append(d.lines[pos.Row-1], d.lines[pos.Row]...)
		d.lines = slices.Delete(d.lines, pos.Row, pos.Row+1)
		return Pos{Col: prevLen, Row: pos.Row - 1}
	}

	line := d.lines[pos.Row]
	d.lines[pos.Row] = slices.Delete(line, pos.Col-1, pos.Col)
	return Pos{Col: pos.Col - 1, Row: pos.Row}
}

// Newline splits the line at pos; everything from the column onward starts
// a new line below. Returns the position at the start of that line.
func (d *Document) Newline(pos Pos) Pos {
	d.assertPos(pos)
	line := d.lines[pos.Row]

	tail := make([]rune, len(line)-pos.Col)
	copy(tail, line[pos.Col:])
	d.lines[pos.Row] = line[:pos.Col:pos.Col]
	d.lines = slices.Insert(d.lines, pos.Row+1, tail)
	return Pos{Col: 0, Row: pos.Row + 1}
}

// Write serializes the document back to its bound path, creating or
// truncating the file. Free-floating documents silently skip writing.
func (d *Document) Write() error {
	if d.path == "" {
		return nil
	}
	if err := os.WriteFile(d.path, []byte(d.Contents()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", d.path, err)
	}
	return nil
}

// assertRow panics on an out-of-range row. An invalid row is a bug in
// cursor maintenance, not a recoverable condition.
func (d *Document) assertRow(row int) {
	if row < 0 || row >= len(d.lines) {
		panic(fmt.Sprintf("row %d out of range (%d lines)", row, len(d.lines)))
	}
}

// assertPos panics on an invalid position.
func (d *Document) assertPos(pos Pos) {
	d.assertRow(pos.Row)
	if pos.Col < 0 || pos.Col > len(d.lines[pos.Row]) {
		panic(fmt.Sprintf("position %v out of range (line length %d)", pos, len(d.lines[pos.Row])))
	}
}
