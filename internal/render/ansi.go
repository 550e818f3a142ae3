package render

import (
	"fmt"
	"io"
)

// ANSI/VT escape emission. Everything the renderer sends to the terminal
// goes through the two encoders here: cursor positioning and style deltas.

// writeCursorMove emits a cursor-position sequence for 0-based buffer
// coordinates. The wire format is 1-based row;column.
func writeCursorMove(w io.Writer, x, y int) error {
	_, err := fmt.Fprintf(w, "\x1b[%d;%dH", y+1, x+1)
	return err
}

// sgr emits a single SGR code.
func sgr(w io.Writer, code int) error {
	_, err := fmt.Fprintf(w, "\x1b[%dm", code)
	return err
}

// attrOffCodes maps each attribute to the SGR code that switches it off.
// Bold and dim share the "normal intensity" reset, which is why removals
// must be emitted before additions.
var attrOffCodes = []struct {
	attr Attribute
	code int
}{
	{AttrReverse, 27},
	{AttrBold, 22},
	{AttrDim, 22},
	{AttrItalic, 23},
	{AttrUnderline, 24},
	{AttrBlink, 25},
	{AttrHidden, 28},
	{AttrCrossedOut, 29},
}

// attrOnCodes maps each attribute to the SGR code that switches it on.
var attrOnCodes = []struct {
	attr Attribute
	code int
}{
	{AttrReverse, 7},
	{AttrBold, 1},
	{AttrDim, 2},
	{AttrItalic, 3},
	{AttrUnderline, 4},
	{AttrBlink, 5},
	{AttrHidden, 8},
	{AttrCrossedOut, 9},
}

// writeColor emits a foreground or background color. base is 30 for
// foreground, 40 for background.
func writeColor(w io.Writer, c Color, base int) error {
	switch {
	case c.Default:
		return sgr(w, base+9)
	case c.Indexed:
		_, err := fmt.Fprintf(w, "\x1b[%d;5;%dm", base+8, c.R)
		return err
	default:
		_, err := fmt.Fprintf(w, "\x1b[%d;2;%d;%d;%dm", base+8, c.R, c.G, c.B)
		return err
	}
}

// writeStyleChange emits the minimal SGR sequence for a style delta:
// colors first, then attribute removals, then attribute additions.
func writeStyleChange(w io.Writer, change StyleChange) error {
	if change.Fg != nil {
		if err := writeColor(w, *change.Fg, 30); err != nil {
			return err
		}
	}
	if change.Bg != nil {
		if err := writeColor(w, *change.Bg, 40); err != nil {
			return err
		}
	}

	for _, off := range attrOffCodes {
		if change.Sub.Has(off.attr) {
			if err := sgr(w, off.code); err != nil {
				return err
			}
		}
	}
	for _, on := range attrOnCodes {
		if change.Add.Has(on.attr) {
			if err := sgr(w, on.code); err != nil {
				return err
			}
		}
	}
	return nil
}
