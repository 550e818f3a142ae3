package ui

import (
	"fmt"

	"github.com/jdhollis/kyte/internal/geom"
	"github.com/jdhollis/kyte/internal/render"
	"github.com/jdhollis/kyte/internal/text"
)

// positionOffset is how far from the right edge the cursor position starts.
const positionOffset = 15

// StatusBar is the single-row bar at the bottom of the screen: the mode
// name on the left, an optional message after it, the 1-based cursor
// position fifteen columns in from the right edge.
type StatusBar struct {
	Mode     string
	Message  string
	Position text.Pos
	Style    render.Style
}

// DefaultBarStyle is black text on a white band.
func DefaultBarStyle() render.Style {
	return render.DefaultStyle().
		WithForeground(render.ColorBlack).
		WithBackground(render.ColorWhite)
}

// Render paints the bar across the region's bottom row.
func (b *StatusBar) Render(f *render.Frame, region geom.Rect) {
	if region.IsEmpty() {
		return
	}
	y := region.Bottom() - 1
	row := geom.Rect{Top: y, Left: region.Left, Width: region.Width, Height: 1}
	f.Fill(row, render.Cell{Rune: ' ', Width: 1, Style: b.Style})

	modeEnd := f.SetString(region.Left+1, y, b.Mode, b.Style, row)
	if b.Message != "" {
		f.SetString(modeEnd+2, y, b.Message, b.Style, row)
	}

	// The mode name has precedence when the bar is too narrow for both.
	pos := fmt.Sprintf("%d:%d", b.Position.Row+1, b.Position.Col+1)
	x := region.Right() - positionOffset
	if x <= modeEnd {
		x = modeEnd + 1
	}
	f.SetString(x, y, pos, b.Style, row)
}
