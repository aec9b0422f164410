package headlessterm

// Rectangular-area operations (DECCRA, DECERA, DECFRA, DECCARA, DECRARA):
// each clamps its rectangle to the buffer bounds and operates in row-major
// order, matching the plain ClearRow/ClearRowRange idiom above.

// clampRect normalizes a rectangle to buffer bounds, returning ok=false if
// the rectangle is empty after clamping.
func (b *Buffer) clampRect(top, left, bottom, right int) (int, int, int, int, bool) {
	if top < 0 {
		top = 0
	}
	if left < 0 {
		left = 0
	}
	if bottom > b.rows {
		bottom = b.rows
	}
	if right > b.cols {
		right = b.cols
	}
	if top >= bottom || left >= right {
		return 0, 0, 0, 0, false
	}
	return top, left, bottom, right, true
}

// EraseRect resets every cell in [top,bottom)x[left,right) to default
// state, ignoring the protected flag (DECERA erases unconditionally;
// only selective erase honors protection).
func (b *Buffer) EraseRect(top, left, bottom, right int) {
	top, left, bottom, right, ok := b.clampRect(top, left, bottom, right)
	if !ok {
		return
	}
	for row := top; row < bottom; row++ {
		for col := left; col < right; col++ {
			b.cells[row][col].Reset()
			b.cells[row][col].MarkDirty()
		}
	}
	b.hasDirty = true
}

// FillRect writes ch into every cell in [top,bottom)x[left,right),
// keeping each cell's existing colors and flags (DECFRA changes only the
// character).
func (b *Buffer) FillRect(ch rune, top, left, bottom, right int) {
	top, left, bottom, right, ok := b.clampRect(top, left, bottom, right)
	if !ok {
		return
	}
	for row := top; row < bottom; row++ {
		for col := left; col < right; col++ {
			b.cells[row][col].Char = ch
			b.cells[row][col].MarkDirty()
		}
	}
	b.hasDirty = true
}

// ChangeAttributesRect applies set to every cell's flags in the rectangle
// (DECCARA: sets the given attribute bits, leaving others untouched).
func (b *Buffer) ChangeAttributesRect(set CellFlags, top, left, bottom, right int) {
	top, left, bottom, right, ok := b.clampRect(top, left, bottom, right)
	if !ok {
		return
	}
	for row := top; row < bottom; row++ {
		for col := left; col < right; col++ {
			b.cells[row][col].Flags |= set
			b.cells[row][col].MarkDirty()
		}
	}
	b.hasDirty = true
}

// ReverseAttributesRect toggles the given attribute bits on every cell in
// the rectangle (DECRARA).
func (b *Buffer) ReverseAttributesRect(toggle CellFlags, top, left, bottom, right int) {
	top, left, bottom, right, ok := b.clampRect(top, left, bottom, right)
	if !ok {
		return
	}
	for row := top; row < bottom; row++ {
		for col := left; col < right; col++ {
			b.cells[row][col].Flags ^= toggle
			b.cells[row][col].MarkDirty()
		}
	}
	b.hasDirty = true
}

// CopyRect copies [srcTop,srcBottom)x[srcLeft,srcRight) to a same-sized
// rectangle whose top-left corner is (dstTop,dstLeft) (DECCRA). Source and
// destination may overlap; copying proceeds row-major from the direction
// that avoids clobbering unread source cells.
func (b *Buffer) CopyRect(srcTop, srcLeft, srcBottom, srcRight, dstTop, dstLeft int) {
	srcTop, srcLeft, srcBottom, srcRight, ok := b.clampRect(srcTop, srcLeft, srcBottom, srcRight)
	if !ok {
		return
	}
	height := srcBottom - srcTop
	width := srcRight - srcLeft
	if dstTop+height > b.rows {
		height = b.rows - dstTop
	}
	if dstLeft+width > b.cols {
		width = b.cols - dstLeft
	}
	if dstTop < 0 || dstLeft < 0 || height <= 0 || width <= 0 {
		return
	}

	rowOrder := make([]int, height)
	for i := range rowOrder {
		rowOrder[i] = i
	}
	if dstTop > srcTop {
		for i, j := 0, len(rowOrder)-1; i < j; i, j = i+1, j-1 {
			rowOrder[i], rowOrder[j] = rowOrder[j], rowOrder[i]
		}
	}

	for _, i := range rowOrder {
		srcRow := b.cells[srcTop+i][srcLeft : srcLeft+width]
		row := make([]Cell, width)
		copy(row, srcRow)
		dstRow := b.cells[dstTop+i][dstLeft : dstLeft+width]
		copy(dstRow, row)
		for col := range dstRow {
			dstRow[col].MarkDirty()
		}
	}
	b.hasDirty = true
}

// ClearRowRangeSelective is ClearRowRange, but skips cells flagged
// CellFlagProtected (DECSEL/DECSED selective erase).
func (b *Buffer) ClearRowRangeSelective(row, startCol, endCol int) {
	if row < 0 || row >= b.rows {
		return
	}
	if startCol < 0 {
		startCol = 0
	}
	if endCol > b.cols {
		endCol = b.cols
	}
	for col := startCol; col < endCol; col++ {
		if b.cells[row][col].HasFlag(CellFlagProtected) {
			continue
		}
		b.cells[row][col].Reset()
		b.cells[row][col].MarkDirty()
	}
	b.hasDirty = true
}

// ClearRowSelective is ClearRow, but skips protected cells.
func (b *Buffer) ClearRowSelective(row int) {
	b.ClearRowRangeSelective(row, 0, b.cols)
}
