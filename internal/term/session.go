// Package term owns the terminal lifecycle: raw mode, the alternate
// screen, cursor shape, size queries, and resize notifications. Everything
// here is about getting into and back out of full-screen operation without
// leaving the user's shell in a broken state.
package term

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/jdhollis/kyte/internal/geom"
)

const (
	enterAltScreen = "\x1b[?1049h"
	leaveAltScreen = "\x1b[?1049l"
)

// CursorShape selects the terminal cursor glyph (DECSCUSR).
type CursorShape uint8

const (
	// CursorDefault restores whatever shape the terminal started with.
	CursorDefault CursorShape = 0
	// CursorBlock is a steady block.
	CursorBlock CursorShape = 2
	// CursorBar is a steady vertical bar.
	CursorBar CursorShape = 6
)

// Session holds a terminal in raw mode on the alternate screen. Close
// restores everything; it is safe to call more than once and from a
// deferred path after a panic.
type Session struct {
	in    *os.File
	out   *os.File
	prior *term.State

	restoreOnce sync.Once
	restoreErr  error
}

// Open switches the input terminal into raw mode and the output terminal
// onto the alternate screen. Both files must be terminals.
func Open(in, out *os.File) (*Session, error) {
	if !term.IsTerminal(int(in.Fd())) {
		return nil, fmt.Errorf("terminal session: input is not a terminal")
	}
	if !term.IsTerminal(int(out.Fd())) {
		return nil, fmt.Errorf("terminal session: output is not a terminal")
	}

	prior, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("terminal session: enable raw mode: %w", err)
	}

	s := &Session{in: in, out: out, prior: prior}
	if _, err := io.WriteString(out, enterAltScreen); err != nil {
		s.Close()
		return nil, fmt.Errorf("terminal session: enter alternate screen: %w", err)
	}
	return s, nil
}

// In returns the input terminal.
func (s *Session) In() *os.File { return s.in }

// Out returns the output terminal.
func (s *Session) Out() *os.File { return s.out }

// Size reports the current terminal dimensions as a rectangle anchored at
// the origin.
func (s *Session) Size() (geom.Rect, error) {
	w, h, err := term.GetSize(int(s.out.Fd()))
	if err != nil {
		return geom.Rect{}, fmt.Errorf("terminal session: query size: %w", err)
	}
	return geom.Rect{Width: w, Height: h}, nil
}

// SetCursorShape changes the cursor glyph.
func (s *Session) SetCursorShape(shape CursorShape) error {
	if _, err := io.WriteString(s.out, cursorShapeSeq(shape)); err != nil {
		return fmt.Errorf("terminal session: set cursor shape: %w", err)
	}
	return nil
}

func cursorShapeSeq(shape CursorShape) string {
	return fmt.Sprintf("\x1b[%d q", shape)
}

// Close leaves the alternate screen and restores the original terminal
// modes. Only the first call does work; later calls return the first
// call's error.
func (s *Session) Close() error {
	s.restoreOnce.Do(func() {
		// Put the cursor shape back before abandoning the alternate
		// screen so the shell prompt is not left with an editing bar.
		io.WriteString(s.out, cursorShapeSeq(CursorDefault))
		if _, err := io.WriteString(s.out, leaveAltScreen); err != nil {
			s.restoreErr = fmt.Errorf("terminal session: leave alternate screen: %w", err)
		}
		if err := term.Restore(int(s.in.Fd()), s.prior); err != nil && s.restoreErr == nil {
			s.restoreErr = fmt.Errorf("terminal session: restore modes: %w", err)
		}
	})
	return s.restoreErr
}

// NotifyResize delivers a signal on ch whenever the terminal window
// changes size. The returned stop function unregisters the handler.
func NotifyResize(ch chan<- os.Signal) (stop func()) {
	signal.Notify(ch, unix.SIGWINCH)
	return func() { signal.Stop(ch) }
}
