package headlessterm

import (
	"bytes"
	"strconv"
	"testing"
)

func TestDECRQSSReportsScrollingRegion(t *testing.T) {
	term := New(WithSize(24, 80))
	var buf bytes.Buffer
	term.SetResponseProvider(&buf)

	term.WriteString("\x1b[5;20r")     // DECSTBM
	term.WriteString("\x1bP$qr\x1b\\") // DECRQSS request for "r"

	top, bottom := term.ScrollRegion()
	if top != 4 || bottom != 20 {
		t.Fatalf("ScrollRegion() = %d,%d, want 4,20", top, bottom)
	}
	want := "\x1bP1$r" + strconv.Itoa(top+1) + ";" + strconv.Itoa(bottom) + "r\x1b\\"
	if buf.String() != want {
		t.Errorf("DECRQSS r reply = %q, want %q", buf.String(), want)
	}
}

func TestSetScrollingRegionFullScreenMatchesDefault(t *testing.T) {
	term := New(WithSize(24, 80))

	_, defaultBottom := term.ScrollRegion()
	term.WriteString("\x1b[1;24r") // DECSTBM spanning the whole page
	top, bottom := term.ScrollRegion()

	if top != 0 || bottom != defaultBottom {
		t.Errorf("ScrollRegion() after \"1;24r\" = %d,%d, want 0,%d (matching the default region)", top, bottom, defaultBottom)
	}
}

func TestDECRQSSReportsCursorStyle(t *testing.T) {
	term := New(WithSize(24, 80))
	var buf bytes.Buffer
	term.SetResponseProvider(&buf)

	term.WriteString("\x1b[4 q") // DECSCUSR steady underline
	term.WriteString("\x1bP$q q\x1b\\")

	want := "\x1bP1$r4 q\x1b\\"
	if buf.String() != want {
		t.Errorf("DECRQSS \" q\" reply = %q, want %q", buf.String(), want)
	}
}

func TestDECRQSSReportsSGRDefaultHasNoColorParams(t *testing.T) {
	term := New(WithSize(24, 80))
	var buf bytes.Buffer
	term.SetResponseProvider(&buf)

	term.WriteString("\x1bP$qm\x1b\\")

	want := "\x1bP1$r0m\x1b\\"
	if buf.String() != want {
		t.Errorf("DECRQSS \"m\" reply for default attrs = %q, want %q", buf.String(), want)
	}
}

func TestDECRQSSReportsSGRNamedPaletteColor(t *testing.T) {
	term := New(WithSize(24, 80))
	var buf bytes.Buffer
	term.SetResponseProvider(&buf)

	term.WriteString("\x1b[31m") // set foreground red (palette index 1)
	term.WriteString("\x1bP$qm\x1b\\")

	want := "\x1bP1$r0;31m\x1b\\"
	if buf.String() != want {
		t.Errorf("DECRQSS \"m\" reply for red fg = %q, want %q", buf.String(), want)
	}
}

func TestDECRQSSUnrecognizedRequest(t *testing.T) {
	term := New(WithSize(24, 80))
	var buf bytes.Buffer
	term.SetResponseProvider(&buf)

	term.WriteString("\x1bP$qZZZ\x1b\\")

	want := "\x1bP0$r\x1b\\"
	if buf.String() != want {
		t.Errorf("DECRQSS unrecognized reply = %q, want %q", buf.String(), want)
	}
}

func TestDECFRAFillsRectangle(t *testing.T) {
	term := New(WithSize(10, 10))

	// DECFRA: fill rows 2-4, cols 2-4 (1-based inclusive) with 'X'.
	term.WriteString("\x1b[88;2;2;4;4$x")

	for row := 1; row <= 3; row++ {
		for col := 1; col <= 3; col++ {
			cell := term.Cell(row, col)
			if cell.Char != 'X' {
				t.Errorf("cell(%d,%d) = %q, want 'X'", row, col, cell.Char)
			}
		}
	}
	if cell := term.Cell(0, 0); cell.Char == 'X' {
		t.Errorf("cell(0,0) should be untouched")
	}
}

func TestDECERAErasesRectangle(t *testing.T) {
	term := New(WithSize(10, 10))
	term.WriteString("\x1b[88;2;2;4;4$x")
	term.WriteString("\x1b[2;2;4;4$z")

	for row := 1; row <= 3; row++ {
		for col := 1; col <= 3; col++ {
			cell := term.Cell(row, col)
			if cell.Char != ' ' {
				t.Errorf("cell(%d,%d) = %q, want erased", row, col, cell.Char)
			}
		}
	}
}

func TestDECSCAProtectsFromSelectiveErase(t *testing.T) {
	term := New(WithSize(5, 10))

	term.WriteString("\x1b[1\"q") // DECSCA set protected
	term.WriteString("PROT")
	term.WriteString("\x1b[0\"q") // DECSCA clear protected
	term.WriteString("plain")

	term.WriteString("\x1b[?2J") // DECSED: selective erase whole screen

	for col := 0; col < 4; col++ {
		if cell := term.Cell(0, col); cell.Char == ' ' {
			t.Errorf("protected cell at col %d was erased", col)
		}
	}
	for col := 4; col < 9; col++ {
		if cell := term.Cell(0, col); cell.Char != ' ' {
			t.Errorf("unprotected cell at col %d survived selective erase, got %q", col, cell.Char)
		}
	}
}

func TestDECCRACopiesRectangle(t *testing.T) {
	term := New(WithSize(5, 10))
	term.WriteString("AB")
	term.WriteString("\x1b[1;1;1;2;0;3;5;0$v") // copy row1 cols1-2 to row3, col5

	if cell := term.Cell(2, 4); cell.Char != 'A' {
		t.Errorf("dest(2,4) = %q, want 'A'", cell.Char)
	}
	if cell := term.Cell(2, 5); cell.Char != 'B' {
		t.Errorf("dest(2,5) = %q, want 'B'", cell.Char)
	}
}

func TestDECCARASetsBoldInRectangle(t *testing.T) {
	term := New(WithSize(5, 10))
	term.WriteString("hello")
	term.WriteString("\x1b[1;1;1;5;1$r") // DECCARA: bold, rows1-1, cols1-5

	for col := 0; col < 5; col++ {
		cell := term.Cell(0, col)
		if !cell.HasFlag(CellFlagBold) {
			t.Errorf("cell(0,%d) missing bold after DECCARA", col)
		}
	}
}
