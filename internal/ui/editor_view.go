package ui

import (
	"github.com/jdhollis/kyte/internal/editor"
	"github.com/jdhollis/kyte/internal/geom"
	"github.com/jdhollis/kyte/internal/render"
)

// EditorView composes the editable text body over a scrolling viewport
// with the status bar on the bottom row.
type EditorView struct {
	ed *editor.Editor

	// viewRow is the document row shown on the first line of the text
	// area.
	viewRow int

	Wrap     WrapMode
	Marker   rune
	TabWidth int
	BarStyle render.Style

	// Status is shown in the bar after the mode name until replaced or
	// cleared.
	Status string
}

// NewEditorView wraps an editor with default presentation: clipped lines
// and a black-on-white status bar.
func NewEditorView(ed *editor.Editor) *EditorView {
	return &EditorView{
		ed:       ed,
		Marker:   '…',
		TabWidth: 4,
		BarStyle: DefaultBarStyle(),
	}
}

// Editor returns the underlying editor model.
func (v *EditorView) Editor() *editor.Editor {
	return v.ed
}

// ViewRow returns the document row at the top of the viewport.
func (v *EditorView) ViewRow() int {
	return v.viewRow
}

// EnsureVisible scrolls the viewport the minimal distance needed to bring
// the cursor into a text area of the given height. Call it after every
// cursor movement and after a resize.
func (v *EditorView) EnsureVisible(height int) {
	if height <= 0 {
		return
	}
	row := v.ed.Cursor().Row
	if row < v.viewRow {
		v.viewRow = row
	}
	if row >= v.viewRow+height {
		v.viewRow = row - height + 1
	}
}

// Render draws the status bar on the bottom row and the visible slice of
// the document above it.
func (v *EditorView) Render(f *render.Frame, region geom.Rect) {
	parts := region.Split(geom.BottomSplit)
	bar, body := parts[0], parts[1]

	f.Render(&StatusBar{
		Mode:     v.ed.Mode().String(),
		Message:  v.Status,
		Position: v.ed.Cursor(),
		Style:    v.BarStyle,
	}, bar)

	doc := v.ed.Document()
	text := &Text{
		Lines:    doc.LinesFrom(v.viewRow),
		Mode:     v.Wrap,
		Marker:   v.Marker,
		TabWidth: v.TabWidth,
	}
	f.Render(text, body)
}

// ScreenCursor maps the document cursor to screen coordinates within the
// region, or nil when scrolled out of view. Columns account for
// double-width characters before the cursor.
func (v *EditorView) ScreenCursor(region geom.Rect) *render.CursorPos {
	c := v.ed.Cursor()
	y := region.Top + c.Row - v.viewRow
	// The bottom row belongs to the status bar.
	if y < region.Top || y >= region.Bottom()-1 {
		return nil
	}

	x := region.Left
	line := []rune(v.ed.Document().Line(c.Row))
	for i := 0; i < c.Col && i < len(line); i++ {
		x += RuneAdvance(line[i], x-region.Left, v.TabWidth)
	}
	if x >= region.Right() {
		x = region.Right() - 1
	}
	return &render.CursorPos{X: x, Y: y}
}
