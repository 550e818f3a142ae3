package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jdhollis/kyte/internal/config"
	"github.com/jdhollis/kyte/internal/editor"
	"github.com/jdhollis/kyte/internal/geom"
	"github.com/jdhollis/kyte/internal/input"
	"github.com/jdhollis/kyte/internal/render"
	"github.com/jdhollis/kyte/internal/term"
	"github.com/jdhollis/kyte/internal/text"
	"github.com/jdhollis/kyte/internal/ui"
)

// App owns one editing session: a document, its view, and the terminal
// they are drawn on.
type App struct {
	cfg  config.Config
	log  *Logger
	view *ui.EditorView

	cfgWatch *config.Watcher
}

// New opens the document at path and prepares an application around it.
// The terminal is not touched until Run.
func New(cfg config.Config, log *Logger, path string) (*App, error) {
	doc, err := text.Open(path)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:  cfg,
		log:  log,
		view: ui.NewEditorView(editor.New(doc)),
	}
	a.applyConfig(cfg)

	log.WithComponent("document").Info("opened %s (%d lines, id %s)", path, doc.LineCount(), doc.ID())
	return a, nil
}

// WatchConfig attaches a configuration watcher whose reloads are applied
// live during Run.
func (a *App) WatchConfig(w *config.Watcher) {
	a.cfgWatch = w
}

// View returns the editor view, mainly for tests.
func (a *App) View() *ui.EditorView {
	return a.view
}

// keyResult carries one decoded keypress or the read error that ended the
// input stream.
type keyResult struct {
	ev  input.Event
	err error
}

// Run takes over the terminal and blocks in the event loop until the user
// quits, the context is canceled, or a terminal error occurs.
func (a *App) Run(ctx context.Context) error {
	session, err := term.Open(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer session.Close()

	terminal, err := render.NewTerminal(session.Out(), session.Size)
	if err != nil {
		return err
	}

	if err := session.SetCursorShape(term.CursorBlock); err != nil {
		return err
	}

	keys := make(chan keyResult)
	go readKeys(session.In(), keys)

	winch := make(chan os.Signal, 1)
	stopWinch := term.NotifyResize(winch)
	defer stopWinch()

	// Nil channels block forever, so an absent watcher simply never
	// fires.
	var cfgChanges <-chan config.Config
	var cfgErrs <-chan error
	if a.cfgWatch != nil {
		cfgChanges = a.cfgWatch.Changes()
		cfgErrs = a.cfgWatch.Errors()
	}

	for {
		a.view.EnsureVisible(textHeight(terminal.Area()))
		if err := a.draw(terminal); err != nil {
			return fmt.Errorf("draw: %w", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case k := <-keys:
			if k.err != nil {
				if errors.Is(k.err, ErrInputClosed) {
					a.log.Info("input closed, exiting")
					return nil
				}
				return fmt.Errorf("read input: %w", k.err)
			}
			if err := a.handleKey(session, k.ev); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}

		case <-winch:
			if err := terminal.Resize(); err != nil {
				return fmt.Errorf("resize: %w", err)
			}
			a.log.Debug("resized to %v", terminal.Area())

		case cfg := <-cfgChanges:
			a.applyConfig(cfg)
			a.log.WithComponent("config").Info("configuration reloaded")

		case err := <-cfgErrs:
			a.log.WithComponent("config").Warn("configuration reload failed: %v", err)
		}
	}
}

func (a *App) draw(terminal *render.Terminal) error {
	return terminal.Draw(func(f *render.Frame) *render.CursorPos {
		area := f.Area()
		f.Render(a.view, area)
		return a.view.ScreenCursor(area)
	})
}

// cursorShaper is the slice of the terminal session the key handler
// needs.
type cursorShaper interface {
	SetCursorShape(term.CursorShape) error
}

// handleKey translates and applies one keypress. Quit is reported as
// ErrQuit; everything else is handled here.
func (a *App) handleKey(session cursorShaper, ev input.Event) error {
	ed := a.view.Editor()
	act := editor.Translate(ed.Mode(), ev)

	// A write result stays on screen only until the next action.
	if act.Kind != editor.ActionWrite && act.Kind != editor.ActionNone {
		a.view.Status = ""
	}

	switch act.Kind {
	case editor.ActionQuit:
		a.log.Info("quit")
		return ErrQuit

	case editor.ActionWrite:
		doc := ed.Document()
		if err := doc.Write(); err != nil {
			a.log.WithComponent("document").Error("write %s: %v", doc.Path(), err)
			a.view.Status = fmt.Sprintf("write failed: %v", err)
			return nil
		}
		a.log.WithComponent("document").Info("wrote %s (%d lines)", doc.Path(), doc.LineCount())
		a.view.Status = fmt.Sprintf("wrote %s", doc.Path())
		return nil

	case editor.ActionEnterInsert:
		ed.Apply(act)
		return session.SetCursorShape(term.CursorBar)

	case editor.ActionEnterNormal:
		ed.Apply(act)
		return session.SetCursorShape(term.CursorBlock)

	default:
		ed.Apply(act)
		return nil
	}
}

// applyConfig pushes configuration values into the running components.
func (a *App) applyConfig(cfg config.Config) {
	a.cfg = cfg
	a.log.SetLevel(ParseLogLevel(cfg.Log.Level))

	a.view.Wrap = wrapModeFor(cfg.Editor.Wrap)
	a.view.Marker = cfg.Editor.MarkerRune()
	a.view.TabWidth = cfg.Editor.TabWidth
	a.view.BarStyle = barStyle(cfg.UI)
}

func wrapModeFor(name string) ui.WrapMode {
	switch name {
	case config.WrapSoft:
		return ui.WrapSoft
	case config.WrapMarker:
		return ui.WrapMarker
	default:
		return ui.WrapNone
	}
}

// barStyle builds the status bar style from validated config values.
func barStyle(u config.UI) render.Style {
	style := ui.DefaultBarStyle()
	if fg, err := config.ParseColor(u.StatusForeground); err == nil {
		style = style.WithForeground(fg)
	}
	if bg, err := config.ParseColor(u.StatusBackground); err == nil {
		style = style.WithBackground(bg)
	}
	return style
}

// textHeight is the part of the screen above the status bar.
func textHeight(area geom.Rect) int {
	if area.Height < 1 {
		return 0
	}
	return area.Height - 1
}

// readKeys decodes keypresses until the stream ends, delivering each one
// on out. The final send carries the terminating error.
func readKeys(r io.Reader, out chan<- keyResult) {
	reader := input.NewReader(r)
	for {
		ev, err := reader.ReadEvent()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = ErrInputClosed
			}
			out <- keyResult{err: err}
			return
		}
		out <- keyResult{ev: ev}
	}
}
