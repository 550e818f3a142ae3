package ui

import (
	"slices"
	"strings"
	"testing"

	"github.com/jdhollis/kyte/internal/geom"
	"github.com/jdhollis/kyte/internal/render"
)

func linesOf(ss ...string) func(func(string) bool) {
	return func(yield func(string) bool) {
		for _, s := range ss {
			if !yield(s) {
				return
			}
		}
	}
}

func draw(t *testing.T, area geom.Rect, widget render.Renderable) *render.Buffer {
	t.Helper()
	buf := render.NewBuffer(area)
	render.NewFrame(buf).Render(widget, area)
	return buf
}

func rows(buf *render.Buffer) []string {
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestTextClipsLongLines(t *testing.T) {
	area := geom.Rect{Width: 4, Height: 2}
	buf := draw(t, area, NewText(linesOf("abcdef", "gh")))

	want := []string{"abcd", "gh  "}
	if got := rows(buf); !slices.Equal(got, want) {
		t.Errorf("rows = %q, want %q", got, want)
	}
}

func TestTextMarkerFlagsClippedLines(t *testing.T) {
	text := NewText(linesOf("abcdef", "gh"))
	text.Mode = WrapMarker
	text.Marker = '>'

	area := geom.Rect{Width: 4, Height: 2}
	buf := draw(t, area, text)

	want := []string{"abc>", "gh  "}
	if got := rows(buf); !slices.Equal(got, want) {
		t.Errorf("rows = %q, want %q", got, want)
	}
}

func TestTextSoftWrapContinuesOnNextRow(t *testing.T) {
	text := NewText(linesOf("abcdef", "gh"))
	text.Mode = WrapSoft

	area := geom.Rect{Width: 4, Height: 3}
	buf := draw(t, area, text)

	want := []string{"abcd", "ef  ", "gh  "}
	if got := rows(buf); !slices.Equal(got, want) {
		t.Errorf("rows = %q, want %q", got, want)
	}
}

func TestTextSoftWrapStopsAtRegionBottom(t *testing.T) {
	text := NewText(linesOf("abcdefgh", "never"))
	text.Mode = WrapSoft

	area := geom.Rect{Width: 4, Height: 2}
	buf := draw(t, area, text)

	want := []string{"abcd", "efgh"}
	if got := rows(buf); !slices.Equal(got, want) {
		t.Errorf("rows = %q, want %q", got, want)
	}
}

func TestTextStopsAtRegionHeight(t *testing.T) {
	area := geom.Rect{Width: 4, Height: 1}
	buf := draw(t, area, NewText(linesOf("one", "two")))

	if got := rows(buf); !slices.Equal(got, []string{"one "}) {
		t.Errorf("rows = %q", got)
	}
}

func TestTextRespectsRegionOffset(t *testing.T) {
	area := geom.Rect{Width: 5, Height: 3}
	buf := render.NewBuffer(area)
	region := geom.Rect{Top: 1, Left: 2, Width: 3, Height: 2}
	render.NewFrame(buf).Render(NewText(linesOf("xyz")), region)

	want := []string{"     ", "  xyz", "     "}
	if got := rows(buf); !slices.Equal(got, want) {
		t.Errorf("rows = %q, want %q", got, want)
	}
}

func TestTextTabsAdvanceToTheNextStop(t *testing.T) {
	text := NewText(linesOf("a\tb", "\tc"))
	text.TabWidth = 4

	area := geom.Rect{Width: 8, Height: 2}
	buf := draw(t, area, text)

	want := []string{"a   b   ", "    c   "}
	if got := rows(buf); !slices.Equal(got, want) {
		t.Errorf("rows = %q, want %q", got, want)
	}
}

func TestRuneAdvance(t *testing.T) {
	tests := []struct {
		r    rune
		col  int
		want int
	}{
		{'a', 0, 1},
		{'界', 0, 2},
		{'\t', 0, 4},
		{'\t', 1, 3},
		{'\t', 3, 1},
		{'\t', 4, 4},
	}
	for _, tt := range tests {
		if got := RuneAdvance(tt.r, tt.col, 4); got != tt.want {
			t.Errorf("RuneAdvance(%q, %d) = %d, want %d", tt.r, tt.col, got, tt.want)
		}
	}
}

func TestTextWideRunesDoNotStraddleTheEdge(t *testing.T) {
	// Three columns fit "a" plus one double-width rune; the next
	// double-width rune must not be half-drawn.
	area := geom.Rect{Width: 3, Height: 1}
	buf := draw(t, area, NewText(linesOf("a界界")))

	if got := buf.CellAt(1, 0).Rune; got != '界' {
		t.Errorf("cell (1,0) = %q, want 界", got)
	}
	if got := buf.CellAt(2, 0); !got.IsContinuation() {
		t.Errorf("cell (2,0) should be the continuation, got %q", got.Rune)
	}
}
