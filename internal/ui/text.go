// Package ui holds the widgets drawn each frame: the text body, the status
// bar, and the editor view that composes them around a scrolling viewport.
package ui

import (
	"iter"

	"github.com/jdhollis/kyte/internal/geom"
	"github.com/jdhollis/kyte/internal/render"
)

// WrapMode selects how a Text widget treats lines wider than its region.
type WrapMode uint8

const (
	// WrapNone clips long lines at the region edge.
	WrapNone WrapMode = iota
	// WrapMarker clips long lines and draws a marker in the last column.
	WrapMarker
	// WrapSoft continues long lines on the next row.
	WrapSoft
)

// Text paints a sequence of lines into a region. Tabs advance to the next
// tab stop; they occupy cells but draw nothing.
type Text struct {
	Lines    iter.Seq[string]
	Mode     WrapMode
	Marker   rune
	TabWidth int
	Style    render.Style
}

// NewText builds a Text over the given lines with clipping and no marker.
func NewText(lines iter.Seq[string]) *Text {
	return &Text{Lines: lines, Marker: '…', TabWidth: 4}
}

// Render draws the text into the region according to the wrap mode.
func (t *Text) Render(f *render.Frame, region geom.Rect) {
	switch t.Mode {
	case WrapSoft:
		t.renderWrap(f, region)
	case WrapMarker:
		t.renderClip(f, region, true)
	default:
		t.renderClip(f, region, false)
	}
}

func (t *Text) renderClip(f *render.Frame, region geom.Rect, marker bool) {
	y := region.Top
	for line := range t.Lines {
		if y >= region.Bottom() {
			break
		}
		x := region.Left
		clipped := false
		for _, r := range line {
			w := RuneAdvance(r, x-region.Left, t.TabWidth)
			if w == 0 {
				continue
			}
			if x+w > region.Right() {
				clipped = true
				break
			}
			if r != '\t' {
				f.SetRune(x, y, r, t.Style)
			}
			x += w
		}
		if marker && clipped {
			f.SetRune(region.Right()-1, y, t.Marker, t.Style)
		}
		y++
	}
}

func (t *Text) renderWrap(f *render.Frame, region geom.Rect) {
	y := region.Top
	for line := range t.Lines {
		if y >= region.Bottom() {
			return
		}
		x := region.Left
		for _, r := range line {
			w := RuneAdvance(r, x-region.Left, t.TabWidth)
			if w == 0 {
				continue
			}
			if x+w > region.Right() {
				x = region.Left
				y++
				if y >= region.Bottom() {
					return
				}
				w = RuneAdvance(r, 0, t.TabWidth)
			}
			if r != '\t' {
				f.SetRune(x, y, r, t.Style)
			}
			x += w
		}
		y++
	}
}

// RuneAdvance is the number of columns r occupies when drawn at the given
// column. Tabs run to the next tab stop; everything else is its display
// width.
func RuneAdvance(r rune, col, tabWidth int) int {
	if r == '\t' {
		if tabWidth < 1 {
			tabWidth = 1
		}
		return tabWidth - col%tabWidth
	}
	return render.RuneWidth(r)
}
