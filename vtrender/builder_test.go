package vtrender

import (
	"image/color"
	"testing"

	headlessterm "github.com/vtcore/vtterm"
)

func TestBuildTrivialLineFastPath(t *testing.T) {
	term := headlessterm.New()
	term.WriteString("hello")

	buf := NewBuilder().Build(term, BuildOptions{})

	if len(buf.Lines) != term.Rows() {
		t.Fatalf("Lines = %d, want %d", len(buf.Lines), term.Rows())
	}
	if buf.Lines[0].Text != "hello" {
		t.Errorf("Lines[0].Text = %q, want %q", buf.Lines[0].Text, "hello")
	}
	// Uncovered rows (no cursor, no selection) stay on the trivial fast
	// path and contribute no per-cell records.
	for _, c := range buf.Cells {
		if c.Row != 0 {
			t.Errorf("unexpected slow-path cell on row %d", c.Row)
		}
	}
}

func TestBuildCursorLineTakesSlowPath(t *testing.T) {
	term := headlessterm.New()
	term.WriteString("hi")

	buf := NewBuilder().Build(term, BuildOptions{})

	found := false
	for _, c := range buf.Cells {
		if c.Row == 0 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected per-cell records for the cursor's row")
	}
	if buf.Cursor == nil {
		t.Fatalf("expected a visible cursor")
	}
	if buf.Cursor.Position.Col != 2 {
		t.Errorf("cursor col = %d, want 2", buf.Cursor.Position.Col)
	}
}

func TestBuildSelectionMarksLineFlag(t *testing.T) {
	term := headlessterm.New()
	term.WriteString("hello world")
	term.SetSelection(headlessterm.Position{Row: 0, Col: 0}, headlessterm.Position{Row: 0, Col: 4})

	buf := NewBuilder().Build(term, BuildOptions{})

	if buf.Lines[0].Flags&LineHasSelection == 0 {
		t.Errorf("expected LineHasSelection flag on row 0")
	}
}

func TestBuildCursorBlinkAnimationProgress(t *testing.T) {
	term := headlessterm.New()
	term.WriteString("x")
	term.WriteString("\x1b[1 q") // DECSCUSR: blinking block (the default, set explicitly)

	start := NewBuilder().Build(term, BuildOptions{FrameID: 0})
	mid := NewBuilder().Build(term, BuildOptions{FrameID: 30})

	if start.Cursor == nil || mid.Cursor == nil {
		t.Fatalf("expected a visible cursor in both frames")
	}
	if start.Cursor.AnimationProgress != 0 {
		t.Errorf("AnimationProgress at frame 0 = %v, want 0", start.Cursor.AnimationProgress)
	}
	if mid.Cursor.AnimationProgress != 1 {
		t.Errorf("AnimationProgress at frame 30 = %v, want 1 (midpoint of the cycle)", mid.Cursor.AnimationProgress)
	}
}

func TestBuildCursorSteadyStyleHasNoBlinkProgress(t *testing.T) {
	term := headlessterm.New()
	term.WriteString("x")
	term.WriteString("\x1b[2 q") // DECSCUSR: steady block

	buf := NewBuilder().Build(term, BuildOptions{FrameID: 30})

	if buf.Cursor == nil {
		t.Fatalf("expected a visible cursor")
	}
	if buf.Cursor.AnimationProgress != 0 {
		t.Errorf("steady cursor AnimationProgress = %v, want 0", buf.Cursor.AnimationProgress)
	}
}

func TestDistinctFgBgClamp(t *testing.T) {
	term := headlessterm.New()
	term.WriteString("x")

	same := color.RGBA{R: 10, G: 10, B: 10, A: 255}
	opts := BuildOptions{
		CursorFg: same,
		CursorBg: same,
	}
	buf := NewBuilder().Build(term, opts)

	for _, c := range buf.Cells {
		// After writing "x" the cursor sits on (0, 1).
		if c.Row == 0 && c.Col == 1 {
			if c.Attrs.Fg == c.Attrs.Bg {
				t.Errorf("fg and bg must differ after clamp, got %v == %v", c.Attrs.Fg, c.Attrs.Bg)
			}
		}
	}
}
