// Package vtrender builds a flattened, renderer-agnostic snapshot of a
// terminal's visible grid: one pass over the active buffer that resolves
// colors (SGR, selection, search highlight, cursor) into concrete RGBA
// values so a GPU or terminal-emulator frontend never has to reconstruct
// terminal state itself.
package vtrender

import (
	"image/color"

	headlessterm "github.com/vtcore/vtterm"
)

// LineFlags marks renderer-relevant properties of a physical row that don't
// belong on any single cell.
type LineFlags uint8

const (
	// LineWrapped indicates this row is a continuation of the row above it
	// (soft-wrapped), not the start of a new logical line.
	LineWrapped LineFlags = 1 << iota
	// LineHasSelection indicates at least one cell on this row falls inside
	// the active selection.
	LineHasSelection
	// LineHasSearchMatch indicates at least one cell on this row falls inside
	// a search match highlighted by BuildOptions.SearchMatches.
	LineHasSearchMatch
)

// RenderAttributes is the fully resolved paint for a cell or line: SGR
// colors and flags after selection/search/cursor overlays have been
// applied, with named/indexed colors already mapped to concrete RGBA.
type RenderAttributes struct {
	Fg             color.RGBA
	Bg             color.RGBA
	UnderlineColor color.RGBA
	Flags          headlessterm.CellFlags
	LineFlags      LineFlags
}

// RenderCell is one grid position ready to hand to a glyph rasterizer.
// Width is 2 for the leading cell of a wide character and 1 otherwise; the
// spacer cell after a wide character gets no RenderCell. GroupStart/GroupEnd
// bound runs of cells sharing identical RenderAttributes, so a renderer can
// batch a whole run into one draw call.
type RenderCell struct {
	Row, Col   int
	Width      int
	Codepoints []rune
	Attrs      RenderAttributes
	Image      *headlessterm.CellImage
	GroupStart bool
	GroupEnd   bool
}

// RenderLine summarizes one physical row: its cells' plain text (spacer
// cells omitted, zero cells rendered as space, matching Terminal.LineContent), a
// fallback fill attribute for any cell not covered by an explicit
// RenderCell (used by sparse backends that skip blank runs), and flags.
type RenderLine struct {
	LineOffset int
	Text       string
	TextAttrs  RenderAttributes
	FillAttrs  RenderAttributes
	Flags      LineFlags
}

// RenderCursor is the resolved on-screen cursor: position, shape, and
// column width (2 for a cursor parked on a wide character).
type RenderCursor struct {
	Position          headlessterm.Position
	Shape             headlessterm.CursorStyle
	Width             int
	AnimationProgress float64
}

// RenderBuffer is one complete, flattened frame: the cells of every row that
// takes the per-cell path (uniform rows appear only in Lines), every line
// summary, and the resolved cursor (nil if hidden). FrameID is a
// caller-supplied monotonic counter a renderer can use to skip redundant
// uploads when nothing changed.
type RenderBuffer struct {
	Cells   []RenderCell
	Lines   []RenderLine
	Cursor  *RenderCursor
	FrameID uint64
}
