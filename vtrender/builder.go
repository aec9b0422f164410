package vtrender

import (
	"image/color"

	headlessterm "github.com/vtcore/vtterm"
)

// BuildOptions configures one Build call: the overlays layered on top of
// plain SGR colors during the slow path.
type BuildOptions struct {
	// CursorLineColor, if non-nil, is blended into every cell on the row
	// the cursor occupies.
	CursorLineColor *color.RGBA
	// SelectionColor is alpha-blended into selected cells.
	SelectionColor color.RGBA
	// SearchMatches are cell ranges to highlight; each entry covers one row.
	SearchMatches []SearchMatch
	// SearchHighlightColor overlays cells covered by SearchMatches.
	SearchHighlightColor color.RGBA
	// ReverseVideo mirrors the terminal's DECSCNM global reverse-video mode.
	ReverseVideo bool
	// CursorFg/CursorBg override colors used when the cursor is drawn as an
	// inverted block (step 5 of color resolution).
	CursorFg, CursorBg color.RGBA
	// FrameID is copied verbatim into the returned RenderBuffer, and also
	// drives the cursor's blink phase (see blinkPhase).
	FrameID uint64
}

// blinkCyclesFrames is how many frames make up one full on/off blink cycle.
const blinkCyclesFrames = 60

// blinkPhase turns a monotonically increasing FrameID into a triangle-wave
// progress value in [0, 1]: 0 at the start of a blink cycle, 1 at the
// midpoint, back toward 0 at the end. Callers use it to drive cursor
// opacity for blinking cursor styles.
func blinkPhase(frameID uint64) float64 {
	pos := frameID % blinkCyclesFrames
	half := uint64(blinkCyclesFrames / 2)
	if pos < half {
		return float64(pos) / float64(half)
	}
	return float64(blinkCyclesFrames-pos) / float64(half)
}

// SearchMatch is one highlighted span within a single row, [StartCol, EndCol).
type SearchMatch struct {
	Row              int
	StartCol, EndCol int
}

// Builder flattens a Terminal's visible grid into a RenderBuffer.
type Builder struct{}

// NewBuilder returns a Builder. Builder holds no state; a single instance
// may be reused across frames and goroutines.
func NewBuilder() *Builder {
	return &Builder{}
}

func blend(base, overlay color.RGBA, alpha float64) color.RGBA {
	inv := 1 - alpha
	return color.RGBA{
		R: uint8(float64(base.R)*inv + float64(overlay.R)*alpha),
		G: uint8(float64(base.G)*inv + float64(overlay.G)*alpha),
		B: uint8(float64(base.B)*inv + float64(overlay.B)*alpha),
		A: 255,
	}
}

func matchesRow(matches []SearchMatch, row, col int) bool {
	for _, m := range matches {
		if m.Row == row && col >= m.StartCol && col < m.EndCol {
			return true
		}
	}
	return false
}

func rowHasMatch(matches []SearchMatch, row int) bool {
	for _, m := range matches {
		if m.Row == row {
			return true
		}
	}
	return false
}

// Build produces one frame's RenderBuffer from term's current active
// buffer, resolving colors through the six-step order: SGR/reverse-video,
// cursor-line overlay, selection blend, search highlight, cursor invert,
// then a final distinct-fg/bg clamp.
func (b *Builder) Build(term *headlessterm.Terminal, opts BuildOptions) RenderBuffer {
	rows := term.Rows()
	cols := term.Cols()
	cursorRow, cursorCol := term.CursorPos()
	cursorVisible := term.CursorVisible()
	selection := term.GetSelection()

	out := RenderBuffer{FrameID: opts.FrameID}

	for row := 0; row < rows; row++ {
		onCursorLine := cursorVisible && row == cursorRow
		hasSelection := selection.Active && rowHasSelectionOnRow(term, selection, row, cols)
		hasSearch := rowHasMatch(opts.SearchMatches, row)

		if !onCursorLine && !hasSelection && !hasSearch && isTrivialRow(term, row, cols) {
			out.Lines = append(out.Lines, b.trivialLine(term, row, cols))
			continue
		}

		var flags LineFlags
		if term.IsWrapped(row) {
			flags |= LineWrapped
		}
		if hasSelection {
			flags |= LineHasSelection
		}
		if hasSearch {
			flags |= LineHasSearchMatch
		}

		var prevAttrs *RenderAttributes
		rowCells := make([]RenderCell, 0, cols)

		for col := 0; col < cols; col++ {
			cell := term.Cell(row, col)
			if cell == nil {
				continue
			}
			if cell.IsWideSpacer() {
				continue
			}

			attrs := b.resolveCellColor(cell, row, col, cursorRow, cursorCol, cursorVisible, onCursorLine, term, selection, opts)
			attrs.LineFlags = flags

			width := 1
			if cell.IsWide() {
				width = 2
			}

			rc := RenderCell{
				Row:        row,
				Col:        col,
				Width:      width,
				Codepoints: []rune{cell.Char},
				Attrs:      attrs,
				Image:      cell.Image,
			}

			if prevAttrs == nil || *prevAttrs != attrs {
				if len(rowCells) > 0 {
					rowCells[len(rowCells)-1].GroupEnd = true
				}
				rc.GroupStart = true
			}

			rowCells = append(rowCells, rc)
			prevAttrs = &attrs
		}

		if len(rowCells) > 0 {
			rowCells[len(rowCells)-1].GroupEnd = true
		}

		out.Cells = append(out.Cells, rowCells...)
		out.Lines = append(out.Lines, RenderLine{
			LineOffset: row,
			Text:       term.LineContent(row),
			Flags:      flags,
		})
	}

	if cursorVisible {
		width := 1
		if c := term.Cell(cursorRow, cursorCol); c != nil && c.IsWide() {
			width = 2
		}
		shape := term.CursorStyle()
		var progress float64
		if shape.Blinks() {
			progress = blinkPhase(opts.FrameID)
		}
		out.Cursor = &RenderCursor{
			Position:          headlessterm.Position{Row: cursorRow, Col: cursorCol},
			Shape:             shape,
			Width:             width,
			AnimationProgress: progress,
		}
	}

	return out
}

// isTrivialRow reports whether a row needs no per-cell color overlay: every
// cell shares the same attributes (uniform fill), matching the "trivial
// line" fast path.
func isTrivialRow(term *headlessterm.Terminal, row, cols int) bool {
	var first *headlessterm.Cell
	for col := 0; col < cols; col++ {
		cell := term.Cell(row, col)
		if cell == nil || cell.IsWideSpacer() {
			continue
		}
		if first == nil {
			first = cell
			continue
		}
		if cell.Flags != first.Flags || !sameColor(cell.Fg, first.Fg) || !sameColor(cell.Bg, first.Bg) {
			return false
		}
	}
	return true
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func (b *Builder) trivialLine(term *headlessterm.Terminal, row, cols int) RenderLine {
	var attrs RenderAttributes
	if cell := term.Cell(row, 0); cell != nil {
		attrs = RenderAttributes{
			Fg:             headlessterm.ResolveDefaultColor(cell.Fg, true),
			Bg:             headlessterm.ResolveDefaultColor(cell.Bg, false),
			UnderlineColor: headlessterm.ResolveDefaultColor(cell.UnderlineColor, true),
			Flags:          cell.Flags,
		}
	}

	var flags LineFlags
	if term.IsWrapped(row) {
		flags |= LineWrapped
	}
	attrs.LineFlags = flags

	return RenderLine{
		LineOffset: row,
		Text:       term.LineContent(row),
		TextAttrs:  attrs,
		FillAttrs:  attrs,
		Flags:      flags,
	}
}

func rowHasSelectionOnRow(term *headlessterm.Terminal, sel headlessterm.Selection, row, cols int) bool {
	if row < sel.Start.Row || row > sel.End.Row {
		return false
	}
	for col := 0; col < cols; col++ {
		if term.IsSelected(row, col) {
			return true
		}
	}
	return false
}

// resolveCellColor applies the six-step color resolution order for one cell.
func (b *Builder) resolveCellColor(
	cell *headlessterm.Cell,
	row, col, cursorRow, cursorCol int,
	cursorVisible, onCursorLine bool,
	term *headlessterm.Terminal,
	sel headlessterm.Selection,
	opts BuildOptions,
) RenderAttributes {
	// Step 1: SGR fg/bg through the palette, with reverse-video applied
	// per-cell flag and per global DECSCNM mode.
	fg := headlessterm.ResolveDefaultColor(cell.Fg, true)
	bg := headlessterm.ResolveDefaultColor(cell.Bg, false)
	reverse := cell.HasFlag(headlessterm.CellFlagReverse) != opts.ReverseVideo
	if reverse {
		fg, bg = bg, fg
	}

	// Step 2: cursor-line overlay.
	if onCursorLine && opts.CursorLineColor != nil {
		bg = blend(bg, *opts.CursorLineColor, 0.15)
	}

	selected := sel.Active && term.IsSelected(row, col)
	// Step 3: selection blend.
	if selected {
		bg = blend(bg, opts.SelectionColor, 0.4)
	}

	// Step 4: search highlight overlay.
	if matchesRow(opts.SearchMatches, row, col) {
		bg = blend(bg, opts.SearchHighlightColor, 0.5)
	}

	// Step 5: cursor invert (block shape only), 50/50 with selection if both apply.
	isCursorCell := cursorVisible && row == cursorRow && col == cursorCol
	if isCursorCell && term.CursorStyle().IsBlock() {
		if selected {
			fg = blend(fg, opts.CursorFg, 0.5)
			bg = blend(bg, opts.CursorBg, 0.5)
		} else {
			fg, bg = opts.CursorFg, opts.CursorBg
		}
	}

	// Step 6: clamp to distinct fg/bg so text stays visible.
	if fg == bg {
		fg = color.RGBA{R: 255 - fg.R, G: 255 - fg.G, B: 255 - fg.B, A: 255}
	}

	underline := headlessterm.ResolveDefaultColor(cell.UnderlineColor, true)

	return RenderAttributes{
		Fg:             fg,
		Bg:             bg,
		UnderlineColor: underline,
		Flags:          cell.Flags,
	}
}
