package text

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func collectLines(d *Document) []string {
	var lines []string
	for line := range d.Lines() {
		lines = append(lines, line)
	}
	return lines
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpenSplitsLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"two lines", "ab\ncd", []string{"ab", "cd"}},
		{"trailing newline", "ab\n", []string{"ab", ""}},
		{"crlf", "ab\r\ncd", []string{"ab", "cd"}},
		{"lone cr", "ab\rcd", []string{"ab", "cd"}},
		{"empty file", "", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Open(writeTemp(t, tt.content))
			if err != nil {
				t.Fatal(err)
			}
			if got := collectLines(d); !slices.Equal(got, tt.want) {
				t.Errorf("lines = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOpenMissingFileIsNewDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.txt")

	d, err := Open(path)
	if err != nil {
		t.Fatalf("missing file must not be an error, got %v", err)
	}
	if d.Path() != path {
		t.Errorf("document should stay bound to %q, got %q", path, d.Path())
	}
	if d.LineCount() != 1 || d.Line(0) != "" {
		t.Errorf("new document should hold one empty line")
	}
}

func TestOpenPermissionErrorSurfaces(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("running as root; permission checks do not apply")
	}
	path := writeTemp(t, "secret")
	if err := os.Chmod(path, 0o000); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(path); err == nil {
		t.Error("unreadable file must surface an error")
	}
}

func TestInsertIntoEmptyDocument(t *testing.T) {
	d := New()

	pos := d.InsertRune(Pos{Col: 0, Row: 0}, 'x')

	if d.Line(0) != "x" {
		t.Errorf("line = %q, want \"x\"", d.Line(0))
	}
	if pos != (Pos{Col: 1, Row: 0}) {
		t.Errorf("cursor = %v, want (1,0)", pos)
	}
}

func TestInsertMidLine(t *testing.T) {
	d := mustDoc(t, "ad")

	pos := d.InsertRune(Pos{Col: 1, Row: 0}, 'b')
	pos = d.InsertRune(pos, 'c')

	if d.Line(0) != "abcd" {
		t.Errorf("line = %q, want \"abcd\"", d.Line(0))
	}
	if pos != (Pos{Col: 3, Row: 0}) {
		t.Errorf("cursor = %v, want (3,0)", pos)
	}
}

func TestNewlineSplitsAtEndOfFirstLine(t *testing.T) {
	d := mustDoc(t, "ab\ncd")

	pos := d.Newline(Pos{Col: 2, Row: 0})

	want := []string{"ab", "", "cd"}
	if got := collectLines(d); !slices.Equal(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
	if pos != (Pos{Col: 0, Row: 1}) {
		t.Errorf("cursor = %v, want (0,1)", pos)
	}
}

func TestNewlineSplitsMidLine(t *testing.T) {
	d := mustDoc(t, "abcd")

	pos := d.Newline(Pos{Col: 2, Row: 0})

	want := []string{"ab", "cd"}
	if got := collectLines(d); !slices.Equal(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
	if pos != (Pos{Col: 0, Row: 1}) {
		t.Errorf("cursor = %v, want (0,1)", pos)
	}
}

func TestBackspaceMidLine(t *testing.T) {
	d := mustDoc(t, "abc")

	pos := d.Backspace(Pos{Col: 2, Row: 0})

	if d.Line(0) != "ac" {
		t.Errorf("line = %q, want \"ac\"", d.Line(0))
	}
	if pos != (Pos{Col: 1, Row: 0}) {
		t.Errorf("cursor = %v, want (1,0)", pos)
	}
}

// TestBackspaceJoinsLines fixes the contract for backspace at column zero:
// the line joins the previous one and the cursor lands at the join point.
func TestBackspaceJoinsLines(t *testing.T) {
	d := mustDoc(t, "ab\ncd")

	pos := d.Backspace(Pos{Col: 0, Row: 1})

	want := []string{"abcd"}
	if got := collectLines(d); !slices.Equal(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
	if pos != (Pos{Col: 2, Row: 0}) {
		t.Errorf("cursor = %v, want (2,0)", pos)
	}
}

func TestBackspaceAtDocumentStartIsNoOp(t *testing.T) {
	d := mustDoc(t, "ab")

	pos := d.Backspace(Pos{Col: 0, Row: 0})

	if d.Line(0) != "ab" || pos != (Pos{Col: 0, Row: 0}) {
		t.Errorf("backspace at (0,0) must not change anything")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"plain", "one\ntwo\nthree"},
		{"trailing newline", "one\ntwo\n"},
		{"unicode", "héllo\n世界"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Open(writeTemp(t, tt.content))
			if err != nil {
				t.Fatal(err)
			}
			before := collectLines(d)

			if err := d.Write(); err != nil {
				t.Fatal(err)
			}
			reopened, err := Open(d.Path())
			if err != nil {
				t.Fatal(err)
			}

			if got := collectLines(reopened); !slices.Equal(got, before) {
				t.Errorf("after round trip lines = %q, want %q", got, before)
			}
		})
	}
}

func TestWriteCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.txt")
	d, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	pos := Pos{}
	for _, r := range "new" {
		pos = d.InsertRune(pos, r)
	}

	if err := d.Write(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new" {
		t.Errorf("file content = %q, want %q", data, "new")
	}
}

func TestFreeFloatingWriteIsNoOp(t *testing.T) {
	d := New()
	d.InsertRune(Pos{}, 'x')

	if err := d.Write(); err != nil {
		t.Errorf("pathless write must silently succeed, got %v", err)
	}
}

func TestLinesIsRestartable(t *testing.T) {
	d := mustDoc(t, "a\nb")

	first := collectLines(d)
	second := collectLines(d)

	if !slices.Equal(first, second) {
		t.Errorf("second iteration %q differs from first %q", second, first)
	}
}

func TestLinesFromSkipsRows(t *testing.T) {
	d := mustDoc(t, "a\nb\nc")

	var got []string
	for line := range d.LinesFrom(1) {
		got = append(got, line)
	}
	if !slices.Equal(got, []string{"b", "c"}) {
		t.Errorf("LinesFrom(1) = %q", got)
	}

	for range d.LinesFrom(5) {
		t.Fatal("LinesFrom past the end should yield nothing")
	}
}

func TestInvalidPositionPanics(t *testing.T) {
	tests := []struct {
		name string
		pos  Pos
	}{
		{"row past end", Pos{Col: 0, Row: 5}},
		{"column past line end", Pos{Col: 3, Row: 0}},
		{"negative column", Pos{Col: -1, Row: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for %v", tt.pos)
				}
			}()
			d := mustDoc(t, "ab")
			d.InsertRune(tt.pos, 'x')
		})
	}
}

func mustDoc(t *testing.T, content string) *Document {
	t.Helper()
	d, err := Open(writeTemp(t, content))
	if err != nil {
		t.Fatal(err)
	}
	return d
}
