// Package editor wraps a text document with a (column, row) cursor, the
// modal state machine, and the movement operations that keep the cursor on
// valid positions.
package editor

import (
	"github.com/jdhollis/kyte/internal/text"
)

// Editor is the cursor/editor model. All operations re-establish the cursor
// invariant: row < line count and column <= length of the current line.
type Editor struct {
	doc    *text.Document
	cursor text.Pos
	mode   Mode
}

// New creates an editor over a document, cursor at the origin, Normal mode.
func New(doc *text.Document) *Editor {
	return &Editor{doc: doc}
}

// Document returns the document under edit.
func (e *Editor) Document() *text.Document {
	return e.doc
}

// Cursor returns the current cursor position in document coordinates.
func (e *Editor) Cursor() text.Pos {
	return e.cursor
}

// Mode returns the current editing mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// SetMode switches the editing mode.
func (e *Editor) SetMode(m Mode) {
	e.mode = m
}

// InsertRune inserts a character at the cursor and advances it.
func (e *Editor) InsertRune(r rune) {
	e.cursor = e.doc.InsertRune(e.cursor, r)
}

// Newline splits the current line at the cursor.
func (e *Editor) Newline() {
	e.cursor = e.doc.Newline(e.cursor)
}

// Backspace deletes backward from the cursor, joining lines at column zero.
func (e *Editor) Backspace() {
	e.cursor = e.doc.Backspace(e.cursor)
}

// MoveLeft moves one column left, stopping at the line start.
func (e *Editor) MoveLeft() {
	if e.cursor.Col > 0 {
		e.cursor.Col--
	}
}

// MoveRight moves one column right, stopping just past the last character.
func (e *Editor) MoveRight() {
	if e.cursor.Col < e.doc.LineLen(e.cursor.Row) {
		e.cursor.Col++
	}
}

// MoveUp moves one row up, clamping the column to the destination line.
func (e *Editor) MoveUp() {
	if e.cursor.Row == 0 {
		return
	}
	e.cursor.Row--
	e.clampCol()
}

// MoveDown moves one row down, clamping the column to the destination line.
func (e *Editor) MoveDown() {
	if e.cursor.Row >= e.doc.LineCount()-1 {
		return
	}
	e.cursor.Row++
	e.clampCol()
}

func (e *Editor) clampCol() {
	if l := e.doc.LineLen(e.cursor.Row); e.cursor.Col > l {
		e.cursor.Col = l
	}
}

// Apply performs one translated action against the editor model. Quit and
// Write are not editor concerns and are ignored here; the caller routes
// them.
func (e *Editor) Apply(a Action) {
	switch a.Kind {
	case ActionInsertRune:
		e.InsertRune(a.Rune)
	case ActionNewline:
		e.Newline()
	case ActionBackspace:
		e.Backspace()
	case ActionMoveLeft:
		e.MoveLeft()
	case ActionMoveRight:
		e.MoveRight()
	case ActionMoveUp:
		e.MoveUp()
	case ActionMoveDown:
		e.MoveDown()
	case ActionEnterInsert:
		e.SetMode(ModeInsert)
	case ActionEnterNormal:
		e.SetMode(ModeNormal)
	}
}
