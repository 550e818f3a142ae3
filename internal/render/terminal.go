package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jdhollis/kyte/internal/geom"
)

// SizeFunc measures the real terminal and returns its area.
type SizeFunc func() (geom.Rect, error)

// CursorPos is a screen position for the hardware cursor.
type CursorPos struct {
	X, Y int
}

// Terminal is a double-buffered, diff-based renderer. It owns exactly two
// buffers: the one the application draws into (current) and the one
// mirroring what is on screen. Application code never touches either buffer
// directly; it receives a Frame scoped to a single Draw call.
type Terminal struct {
	buffers [2]*Buffer
	current int
	out     *bufio.Writer
	size    SizeFunc
}

// NewTerminal creates a renderer writing to w, sized by measure.
func NewTerminal(w io.Writer, measure SizeFunc) (*Terminal, error) {
	area, err := measure()
	if err != nil {
		return nil, fmt.Errorf("measuring terminal: %w", err)
	}
	return &Terminal{
		buffers: [2]*Buffer{NewBuffer(area), NewBuffer(area)},
		out:     bufio.NewWriter(w),
		size:    measure,
	}, nil
}

// Area returns the area of the buffer currently being drawn into.
func (t *Terminal) Area() geom.Rect {
	return t.currentBuf().Area()
}

func (t *Terminal) currentBuf() *Buffer {
	return t.buffers[t.current]
}

func (t *Terminal) displayBuf() *Buffer {
	return t.buffers[1-t.current]
}

// Resize re-measures the real terminal and resizes the buffer being drawn
// into. The display-side buffer is left alone: the next diff sees mismatched
// areas and takes the full-repaint path, which guarantees a correct screen
// after any resize at the cost of one full redraw.
func (t *Terminal) Resize() error {
	area, err := t.size()
	if err != nil {
		return fmt.Errorf("measuring terminal: %w", err)
	}
	t.currentBuf().Resize(area)
	return nil
}

// Draw clears the current buffer, lets paint compose a frame over it, and
// flushes the difference against the screen. If paint returns a non-nil
// cursor position, the hardware cursor is placed there after the flush.
//
// Any write error is fatal to the draw and propagated; no partial-frame
// retry is attempted. The screen may be left inconsistent, which the next
// successful draw repairs since the display buffer still holds the last
// image that was fully flushed.
func (t *Terminal) Draw(paint func(*Frame) *CursorPos) error {
	t.currentBuf().Clear()
	final := paint(&Frame{buffer: t.currentBuf()})
	return t.flush(final)
}

func (t *Terminal) flush(final *CursorPos) error {
	diff := t.currentBuf().Diff(t.displayBuf())

	prevStyle := DefaultStyle()
	// nextX/nextY track where the terminal cursor lands after the previous
	// print, so runs of adjacent cells need no explicit moves.
	nextX, nextY := -1, -1

	for _, ch := range diff {
		if ch.Cell.IsContinuation() {
			// Covered by the wide rune printed in the cell before it.
			continue
		}
		if ch.X != nextX || ch.Y != nextY {
			if err := writeCursorMove(t.out, ch.X, ch.Y); err != nil {
				return err
			}
		}

		change := ch.Cell.Style.Diff(prevStyle)
		if !change.IsEmpty() {
			if err := writeStyleChange(t.out, change); err != nil {
				return err
			}
		}
		prevStyle = ch.Cell.Style

		if _, err := t.out.WriteRune(ch.Cell.Rune); err != nil {
			return err
		}
		nextX, nextY = ch.X+max(ch.Cell.Width, 1), ch.Y
	}

	if final != nil {
		if err := writeCursorMove(t.out, final.X, final.Y); err != nil {
			return err
		}
	}
	if err := writeStyleChange(t.out, DefaultStyle().Diff(prevStyle)); err != nil {
		return err
	}
	if err := t.out.Flush(); err != nil {
		return fmt.Errorf("flushing terminal output: %w", err)
	}

	// Swap roles: what was just drawn is now on screen. The next frame
	// starts from a faithful copy of it.
	t.current = 1 - t.current
	t.currentBuf().copyFrom(t.displayBuf())
	return nil
}
