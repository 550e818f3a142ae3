package ui

import (
	"strings"
	"testing"

	"github.com/jdhollis/kyte/internal/editor"
	"github.com/jdhollis/kyte/internal/geom"
	"github.com/jdhollis/kyte/internal/render"
	"github.com/jdhollis/kyte/internal/text"
)

func editorOver(content string) *editor.Editor {
	d := text.New()
	pos := text.Pos{}
	for _, r := range content {
		if r == '\n' {
			pos = d.Newline(pos)
			continue
		}
		pos = d.InsertRune(pos, r)
	}
	e := editor.New(d)
	for e.Cursor() != (text.Pos{}) {
		if e.Cursor().Col > 0 {
			e.MoveLeft()
		} else {
			e.MoveUp()
		}
	}
	return e
}

func TestStatusBarLayout(t *testing.T) {
	area := geom.Rect{Width: 30, Height: 1}
	bar := &StatusBar{Mode: "NORMAL", Position: text.Pos{Col: 4, Row: 2}, Style: DefaultBarStyle()}
	buf := draw(t, area, bar)

	line := strings.Split(buf.String(), "\n")[0]
	if !strings.HasPrefix(line, " NORMAL") {
		t.Errorf("mode name missing on the left: %q", line)
	}
	// 1-based row:column, starting fifteen columns in from the right.
	if got := line[15 : 15+3]; got != "3:5" {
		t.Errorf("position = %q at offset 15: %q", got, line)
	}
	if got := buf.CellAt(0, 0).Style.Background; !got.Equals(render.ColorWhite) {
		t.Errorf("bar background = %v, want white", got)
	}
}

func TestStatusBarNarrowRegionKeepsModeName(t *testing.T) {
	// Too narrow for the position's usual right-aligned slot; the mode
	// name must survive and the position moves right of it.
	area := geom.Rect{Width: 12, Height: 1}
	bar := &StatusBar{Mode: "NORMAL", Position: text.Pos{}, Style: DefaultBarStyle()}
	buf := draw(t, area, bar)

	line := strings.Split(buf.String(), "\n")[0]
	if !strings.HasPrefix(line, " NORMAL") {
		t.Errorf("mode name lost on narrow bar: %q", line)
	}
	if !strings.Contains(line, "1:1") {
		t.Errorf("position missing on narrow bar: %q", line)
	}
}

func TestStatusBarShowsMessage(t *testing.T) {
	area := geom.Rect{Width: 40, Height: 1}
	bar := &StatusBar{Mode: "NORMAL", Message: "wrote a.txt", Style: DefaultBarStyle()}
	buf := draw(t, area, bar)

	line := strings.Split(buf.String(), "\n")[0]
	if !strings.Contains(line, "NORMAL  wrote a.txt") {
		t.Errorf("message missing after mode name: %q", line)
	}
}

func TestEditorViewBottomRowIsStatusBar(t *testing.T) {
	v := NewEditorView(editorOver("hello\nworld"))
	area := geom.Rect{Width: 20, Height: 4}
	buf := draw(t, area, v)

	got := rows(buf)
	if !strings.HasPrefix(got[0], "hello") || !strings.HasPrefix(got[1], "world") {
		t.Errorf("text rows = %q", got[:2])
	}
	if !strings.Contains(got[3], "NORMAL") {
		t.Errorf("bottom row should carry the mode name: %q", got[3])
	}
}

func TestEnsureVisibleScrollsDownAndBackUp(t *testing.T) {
	v := NewEditorView(editorOver("0\n1\n2\n3\n4\n5"))
	ed := v.Editor()

	const height = 3
	for i := 0; i < 4; i++ {
		ed.MoveDown()
		v.EnsureVisible(height)
	}
	// Cursor on row 4 with a 3-row view puts rows 2..4 on screen.
	if v.ViewRow() != 2 {
		t.Fatalf("viewRow = %d, want 2", v.ViewRow())
	}

	for i := 0; i < 4; i++ {
		ed.MoveUp()
		v.EnsureVisible(height)
	}
	if v.ViewRow() != 0 {
		t.Errorf("viewRow = %d after scrolling back, want 0", v.ViewRow())
	}
}

func TestScrolledViewRendersFromViewRow(t *testing.T) {
	v := NewEditorView(editorOver("aa\nbb\ncc\ndd"))
	ed := v.Editor()
	for i := 0; i < 3; i++ {
		ed.MoveDown()
	}
	area := geom.Rect{Width: 10, Height: 3}
	v.EnsureVisible(area.Height - 1)

	buf := draw(t, area, v)
	got := rows(buf)
	if !strings.HasPrefix(got[0], "cc") || !strings.HasPrefix(got[1], "dd") {
		t.Errorf("visible rows = %q, want cc/dd", got[:2])
	}
}

func TestScreenCursor(t *testing.T) {
	v := NewEditorView(editorOver("ab\ncd"))
	ed := v.Editor()
	ed.MoveDown()
	ed.MoveRight()

	area := geom.Rect{Width: 10, Height: 4}
	pos := v.ScreenCursor(area)
	if pos == nil {
		t.Fatal("cursor should be visible")
	}
	if pos.X != 1 || pos.Y != 1 {
		t.Errorf("screen cursor = (%d,%d), want (1,1)", pos.X, pos.Y)
	}
}

func TestScreenCursorAccountsForWideRunes(t *testing.T) {
	v := NewEditorView(editorOver("界x"))
	v.Editor().MoveRight()

	area := geom.Rect{Width: 10, Height: 4}
	pos := v.ScreenCursor(area)
	if pos == nil {
		t.Fatal("cursor should be visible")
	}
	if pos.X != 2 {
		t.Errorf("screen X = %d, want 2 after a double-width character", pos.X)
	}
}

func TestScreenCursorAccountsForTabs(t *testing.T) {
	v := NewEditorView(editorOver("\tx"))
	v.TabWidth = 4
	v.Editor().MoveRight()

	area := geom.Rect{Width: 10, Height: 4}
	pos := v.ScreenCursor(area)
	if pos == nil {
		t.Fatal("cursor should be visible")
	}
	if pos.X != 4 {
		t.Errorf("screen X = %d, want the first tab stop", pos.X)
	}
}

func TestScreenCursorNilWhenScrolledOut(t *testing.T) {
	v := NewEditorView(editorOver("0\n1\n2\n3\n4\n5"))
	ed := v.Editor()
	for i := 0; i < 5; i++ {
		ed.MoveDown()
	}
	area := geom.Rect{Width: 10, Height: 3}
	v.EnsureVisible(area.Height - 1)

	// Scrolled to the bottom; row 0 is now above the viewport.
	for i := 0; i < 5; i++ {
		ed.MoveUp()
	}
	if pos := v.ScreenCursor(area); pos != nil {
		t.Errorf("cursor above the viewport should map to nil, got %v", pos)
	}
}
