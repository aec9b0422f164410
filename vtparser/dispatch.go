package vtparser

import (
	"encoding/base64"
	"image/color"
	"strconv"
	"strings"
)

// param returns the i-th top-level parameter, or def if absent or zero.
// Zero is the implicit default for almost every VT parameter (CSI A ==
// CSI 0 A == "move up 1"); callers that need a genuine zero (e.g. DECSTBM's
// "top of page") use paramRaw instead.
func (d *Decoder) param(i, def int) int {
	if i >= len(d.params) || len(d.params[i]) == 0 || d.params[i][0] == 0 {
		return def
	}
	return int(d.params[i][0])
}

// paramRaw returns the i-th top-level parameter verbatim (def if absent),
// distinguishing an explicit 0 from "not supplied".
func (d *Decoder) paramRaw(i, def int) int {
	if i >= len(d.params) || len(d.params[i]) == 0 {
		return def
	}
	return int(d.params[i][0])
}

// subParam returns the j-th colon-separated sub-parameter of the i-th
// top-level parameter (SGR's `38:2::r:g:b` form), or def if absent.
func (d *Decoder) subParam(i, j, def int) int {
	if i >= len(d.params) || j >= len(d.params[i]) {
		return def
	}
	return int(d.params[i][j])
}

func (d *Decoder) paramCount() int { return len(d.params) }

// --- ESC dispatch -----------------------------------------------------

func (d *Decoder) dispatchEscape(final byte) {
	switch final {
	case 'D':
		d.h.LineFeed()
	case 'E':
		d.h.CarriageReturn()
		d.h.LineFeed()
	case 'H':
		d.h.HorizontalTabSet()
	case 'M':
		d.h.ReverseIndex()
	case 'Z':
		d.h.IdentifyTerminal(0)
	case 'c':
		d.h.ResetState()
	case '7':
		d.h.SaveCursorPosition()
	case '8':
		d.h.RestoreCursorPosition()
	case '=':
		d.h.SetKeypadApplicationMode()
	case '>':
		d.h.UnsetKeypadApplicationMode()
	case 'n':
		d.h.SetActiveCharset(2) // LS2
	case 'o':
		d.h.SetActiveCharset(3) // LS3
	case 'N', 'O':
		// SS2 / SS3 (single shift) are accepted and dropped: no shift is
		// recorded, and the next character is printed with the active
		// charset.
	}
}

func (d *Decoder) dispatchEscapeWithIntermediate(final byte) {
	if len(d.interm) == 1 && d.interm[0] == '#' && final == '8' {
		d.h.Decaln()
	}
}

func (d *Decoder) dispatchCharsetDesignation(slotByte, final byte) {
	var idx CharsetIndex
	switch slotByte {
	case '(':
		idx = CharsetIndexG0
	case ')':
		idx = CharsetIndexG1
	case '*':
		idx = CharsetIndexG2
	case '+':
		idx = CharsetIndexG3
	default:
		return
	}
	var cs Charset
	switch final {
	case 'B':
		cs = CharsetASCII
	case 'A':
		cs = CharsetUK
	case '0':
		cs = CharsetDECLineDrawing
	case '<':
		cs = CharsetDECSupplemental
	default:
		cs = CharsetASCII
	}
	d.h.ConfigureCharset(idx, cs)
}

// --- CSI dispatch -------------------------------------------------------

func (d *Decoder) dispatchCSI(final byte) {
	if len(d.interm) > 0 {
		d.dispatchCSIWithIntermediate(final)
		return
	}

	switch d.private {
	case '?':
		d.dispatchCSIPrivate(final)
		return
	case '>', '<', '=':
		d.dispatchCSIMarker(final)
		return
	}

	switch final {
	case '@':
		d.h.InsertBlank(d.param(0, 1))
	case 'A':
		d.h.MoveUp(d.param(0, 1))
	case 'B':
		d.h.MoveDown(d.param(0, 1))
	case 'C':
		d.h.MoveForward(d.param(0, 1))
	case 'D':
		d.h.MoveBackward(d.param(0, 1))
	case 'E':
		d.h.MoveDownCr(d.param(0, 1))
	case 'F':
		d.h.MoveUpCr(d.param(0, 1))
	case 'G', '`':
		d.h.GotoCol(d.param(0, 1) - 1)
	case 'H', 'f':
		d.h.Goto(d.param(0, 1)-1, d.param(1, 1)-1)
	case 'I':
		d.h.MoveForwardTabs(d.param(0, 1))
	case 'J':
		d.h.ClearScreen(clearModeFor(d.param(0, 0)))
	case 'K':
		d.h.ClearLine(lineClearModeFor(d.param(0, 0)))
	case 'L':
		d.h.InsertBlankLines(d.param(0, 1))
	case 'M':
		d.h.DeleteLines(d.param(0, 1))
	case 'P':
		d.h.DeleteChars(d.param(0, 1))
	case 'S':
		d.h.ScrollUp(d.param(0, 1))
	case 'T':
		d.h.ScrollDown(d.param(0, 1))
	case 'X':
		d.h.EraseChars(d.param(0, 1))
	case 'Z':
		d.h.MoveBackwardTabs(d.param(0, 1))
	case 'a':
		d.h.MoveForward(d.param(0, 1))
	case 'b':
		// REP: repeat preceding graphic character. Not represented on
		// Handler; the terminal has no notion of "the last printed rune"
		// at this layer, so it is a no-op here.
	case 'd':
		d.h.GotoLine(d.param(0, 1) - 1)
	case 'e':
		d.h.MoveDown(d.param(0, 1))
	case 'g':
		if d.param(0, 0) == 3 {
			d.h.ClearTabs(TabulationClearModeAll)
		} else {
			d.h.ClearTabs(TabulationClearModeCurrent)
		}
	case 'h':
		if mode := ansiModeFor(d.param(0, 0)); mode != 0 {
			d.h.SetMode(mode)
		}
	case 'l':
		if mode := ansiModeFor(d.param(0, 0)); mode != 0 {
			d.h.UnsetMode(mode)
		}
	case 'm':
		d.dispatchSGR()
	case 'n':
		d.h.DeviceStatus(d.param(0, 0))
	case 'r':
		top := d.paramRaw(0, 0)
		bottom := d.paramRaw(1, 0)
		d.h.SetScrollingRegion(top, bottom)
	case 's':
		if d.paramCount() > 0 {
			d.h.SetLeftRightMargin(d.paramRaw(0, 0), d.paramRaw(1, 0))
		} else {
			d.h.SaveCursorPosition()
		}
	case 't':
		switch d.param(0, 0) {
		case 14:
			d.h.TextAreaSizePixels()
		case 18:
			d.h.TextAreaSizeChars()
		}
	case 'u':
		d.h.RestoreCursorPosition()
	}
}

// dispatchCSIWithIntermediate handles finals qualified by a true
// intermediate byte (0x20-0x2F), e.g. "CSI Ps SP q" DECSCUSR.
func (d *Decoder) dispatchCSIWithIntermediate(final byte) {
	interm := d.interm[len(d.interm)-1]
	switch {
	case interm == ' ' && final == 'q':
		d.h.SetCursorStyle(cursorStyleFor(d.param(0, 1)))
	case interm == '$' && final == 'p':
		// DECRQM mode query: no reply channel modeled at this layer.
	case interm == '"' && final == 'p':
		// DECSCL conformance level select: accepted, no observable effect.
	case interm == ' ' && final == '@':
		d.h.ScrollLeftChars(d.param(0, 1))
	case interm == ' ' && final == 'A':
		d.h.ScrollRightChars(d.param(0, 1))
	case interm == '"' && final == 'q':
		d.h.SetProtected(d.param(0, 0) == 1)
	case interm == '$' && final == 'z':
		d.h.EraseRectangle(d.param(0, 1), d.param(1, 1), d.param(2, 1), d.param(3, 1))
	case interm == '$' && final == 'x':
		d.h.FillRectangle(rune(d.param(0, 0)), d.param(1, 1), d.param(2, 1), d.param(3, 1), d.param(4, 1))
	case interm == '$' && final == 'r':
		d.h.ChangeAttributesRectangle(d.rectAttrsFrom(4), d.param(0, 1), d.param(1, 1), d.param(2, 1), d.param(3, 1))
	case interm == '$' && final == 't':
		d.h.ReverseAttributesRectangle(d.rectAttrsFrom(4), d.param(0, 1), d.param(1, 1), d.param(2, 1), d.param(3, 1))
	case interm == '$' && final == 'v':
		d.h.CopyRectangle(d.param(0, 1), d.param(1, 1), d.param(2, 1), d.param(3, 1), d.param(5, 1), d.param(6, 1))
	}
}

// dispatchCSIMarker handles sequences using one of the '>','<','=' leading
// marker bytes instead of '?' (modifyOtherKeys and the kitty keyboard
// protocol both live here).
func (d *Decoder) dispatchCSIMarker(final byte) {
	switch {
	case d.private == '>' && final == 'm':
		d.h.SetModifyOtherKeys(ModifyOtherKeys(d.param(1, 0)))
	case d.private == '>' && final == 'u':
		d.h.PushKeyboardMode(kittyKeyboardModeFor(d.param(0, 0)))
	case d.private == '<' && final == 'u':
		d.h.PopKeyboardMode(d.param(0, 1))
	case d.private == '=' && final == 'u':
		d.dispatchKittyKeyboardSet()
	}
}

func (d *Decoder) dispatchKittyKeyboardSet() {
	behavior := KeyboardModeBehaviorReplace
	switch d.param(1, 1) {
	case 2:
		behavior = KeyboardModeBehaviorUnion
	case 3:
		behavior = KeyboardModeBehaviorDifference
	}
	d.h.SetKeyboardMode(kittyKeyboardModeFor(d.param(0, 0)), behavior)
}

func kittyKeyboardModeFor(n int) KeyboardMode {
	return KeyboardMode(n)
}

// dispatchCSIPrivate handles DEC private mode sequences (leading '?').
func (d *Decoder) dispatchCSIPrivate(final byte) {
	switch final {
	case 'h':
		for i := 0; i < d.paramCount(); i++ {
			if mode, ok := decPrivateModeFor(d.param(i, 0)); ok {
				d.h.SetMode(mode)
			}
		}
	case 'l':
		for i := 0; i < d.paramCount(); i++ {
			if mode, ok := decPrivateModeFor(d.param(i, 0)); ok {
				d.h.UnsetMode(mode)
			}
		}
	case 'J':
		d.h.SelectiveClearScreen(clearModeFor(d.param(0, 0)))
	case 'K':
		d.h.SelectiveClearLine(lineClearModeFor(d.param(0, 0)))
	case 'u':
		d.h.ReportKeyboardMode()
	}
}

// rectAttrsFrom decodes the trailing Ps attribute-selector list of
// DECCARA/DECRARA (the parameters from index start onward) into a
// RectAttrs bitmask. Ps=0 means "all of bold/underline/blink/reverse".
func (d *Decoder) rectAttrsFrom(start int) RectAttrs {
	var attrs RectAttrs
	for i := start; i < d.paramCount(); i++ {
		switch d.param(i, 0) {
		case 0:
			attrs |= RectAttrBold | RectAttrUnderline | RectAttrBlink | RectAttrReverse
		case 1:
			attrs |= RectAttrBold
		case 4:
			attrs |= RectAttrUnderline
		case 5:
			attrs |= RectAttrBlink
		case 7:
			attrs |= RectAttrReverse
		}
	}
	return attrs
}

func clearModeFor(n int) ClearMode {
	switch n {
	case 1:
		return ClearModeAbove
	case 2:
		return ClearModeAll
	case 3:
		return ClearModeSaved
	default:
		return ClearModeBelow
	}
}

func lineClearModeFor(n int) LineClearMode {
	switch n {
	case 1:
		return LineClearModeLeft
	case 2:
		return LineClearModeAll
	default:
		return LineClearModeRight
	}
}

func cursorStyleFor(n int) CursorStyle {
	switch n {
	case 0, 1:
		return CursorStyleBlinkingBlock
	case 2:
		return CursorStyleSteadyBlock
	case 3:
		return CursorStyleBlinkingUnderline
	case 4:
		return CursorStyleSteadyUnderline
	case 5:
		return CursorStyleBlinkingBar
	case 6:
		return CursorStyleSteadyBar
	default:
		return CursorStyleBlinkingBlock
	}
}

// ansiModeFor maps an ANSI SM/RM mode number (no private prefix) to a
// TerminalMode. 0 (no mapping known) is returned for unrecognized numbers;
// SetMode/UnsetMode implementations ignore it.
func ansiModeFor(n int) TerminalMode {
	switch n {
	case 4:
		return TerminalModeInsert
	case 20:
		return TerminalModeLineFeedNewLine
	default:
		return 0
	}
}

// decPrivateModeFor maps a DEC private mode number (CSI ? Pn h/l) to a
// TerminalMode. ok is false for modes this terminal does not model.
func decPrivateModeFor(n int) (TerminalMode, bool) {
	switch n {
	case 1:
		return TerminalModeCursorKeys, true
	case 3:
		return TerminalModeColumnMode, true
	case 6:
		return TerminalModeOrigin, true
	case 7:
		return TerminalModeLineWrap, true
	case 12:
		return TerminalModeBlinkingCursor, true
	case 25:
		return TerminalModeShowCursor, true
	case 1000:
		return TerminalModeReportMouseClicks, true
	case 1002:
		return TerminalModeReportCellMouseMotion, true
	case 1003:
		return TerminalModeReportAllMouseMotion, true
	case 1004:
		return TerminalModeReportFocusInOut, true
	case 1005:
		return TerminalModeUTF8Mouse, true
	case 1006:
		return TerminalModeSGRMouse, true
	case 1007:
		return TerminalModeAlternateScroll, true
	case 1042:
		return TerminalModeUrgencyHints, true
	case 47, 1047, 1049:
		return TerminalModeSwapScreenAndSetRestoreCursor, true
	case 2004:
		return TerminalModeBracketedPaste, true
	case 2026:
		return TerminalModeSyncUpdate, true
	case 2027:
		return TerminalModeGraphemeCluster, true
	case 9001:
		return TerminalModeWin32InputMode, true
	case 69:
		return TerminalModeLeftRightMargin, true
	case 2028:
		return TerminalModeTextReflow, true
	default:
		return 0, false
	}
}

// --- SGR --------------------------------------------------------------

func (d *Decoder) dispatchSGR() {
	if d.paramCount() == 0 {
		d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeReset})
		return
	}
	i := 0
	for i < d.paramCount() {
		p := d.param(i, 0)
		switch {
		case p == 0:
			d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeReset})
		case p == 1:
			d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeBold})
		case p == 2:
			d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeDim})
		case p == 3:
			d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeItalic})
		case p == 4:
			switch d.subParam(i, 1, 1) {
			case 0:
				d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeCancelUnderline})
			case 2:
				d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeDoubleUnderline})
			case 3:
				d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeCurlyUnderline})
			case 4:
				d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeDottedUnderline})
			case 5:
				d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeDashedUnderline})
			default:
				d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeUnderline})
			}
		case p == 5:
			d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeBlinkSlow})
		case p == 6:
			d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeBlinkFast})
		case p == 7:
			d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeReverse})
		case p == 8:
			d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeHidden})
		case p == 9:
			d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeStrike})
		case p == 21:
			d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeCancelBold})
		case p == 22:
			d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeCancelBoldDim})
		case p == 23:
			d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeCancelItalic})
		case p == 24:
			d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeCancelUnderline})
		case p == 25:
			d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeCancelBlink})
		case p == 27:
			d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeCancelReverse})
		case p == 28:
			d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeCancelHidden})
		case p == 29:
			d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeCancelStrike})
		case p >= 30 && p <= 37:
			idx := uint8(p - 30)
			d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeForeground, IndexedColor: &IndexedColor{Index: idx}})
		case p == 38:
			consumed, attr := d.parseSGRColor(i, CharAttributeForeground)
			d.h.SetTerminalCharAttribute(attr)
			i += consumed
			continue
		case p == 39:
			n := -1
			d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeForeground, NamedColor: &n})
		case p >= 40 && p <= 47:
			idx := uint8(p - 40)
			d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeBackground, IndexedColor: &IndexedColor{Index: idx}})
		case p == 48:
			consumed, attr := d.parseSGRColor(i, CharAttributeBackground)
			d.h.SetTerminalCharAttribute(attr)
			i += consumed
			continue
		case p == 49:
			n := -1
			d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeBackground, NamedColor: &n})
		case p == 58:
			consumed, attr := d.parseSGRColor(i, CharAttributeUnderlineColor)
			d.h.SetTerminalCharAttribute(attr)
			i += consumed
			continue
		case p == 59:
			n := -1
			d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeUnderlineColor, NamedColor: &n})
		case p >= 90 && p <= 97:
			idx := uint8(p-90) + 8
			d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeForeground, IndexedColor: &IndexedColor{Index: idx}})
		case p >= 100 && p <= 107:
			idx := uint8(p-100) + 8
			d.h.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeBackground, IndexedColor: &IndexedColor{Index: idx}})
		default:
			// Unknown SGR parameter: ignored per spec, not an error.
		}
		i++
	}
}

// parseSGRColor parses the 38/48/58 extended-color forms, supporting both
// semicolon (`38;2;r;g;b`, `38;5;n`) and colon (`38:2::r:g:b`) conventions.
// Returns how many top-level params were consumed (including the leading
// 38/48/58 itself) and the resolved attribute.
func (d *Decoder) parseSGRColor(i int, attr CharAttribute) (int, TerminalCharAttribute) {
	// Colon sub-parameter form: everything lives inside params[i].
	if len(d.params[i]) > 1 {
		switch d.params[i][1] {
		case 2:
			r := uint8(d.subParam(i, 3, 0))
			g := uint8(d.subParam(i, 4, 0))
			b := uint8(d.subParam(i, 5, 0))
			return 1, TerminalCharAttribute{Attr: attr, RGBColor: &RGBColor{R: r, G: g, B: b}}
		case 5:
			idx := uint8(d.subParam(i, 2, 0))
			return 1, TerminalCharAttribute{Attr: attr, IndexedColor: &IndexedColor{Index: idx}}
		}
		return 1, TerminalCharAttribute{Attr: attr}
	}

	// Semicolon form: the color-space selector and components are
	// separate top-level parameters.
	kind := d.param(i+1, 0)
	switch kind {
	case 2:
		r := uint8(d.param(i+2, 0))
		g := uint8(d.param(i+3, 0))
		b := uint8(d.param(i+4, 0))
		return 5, TerminalCharAttribute{Attr: attr, RGBColor: &RGBColor{R: r, G: g, B: b}}
	case 5:
		idx := uint8(d.param(i+2, 0))
		return 3, TerminalCharAttribute{Attr: attr, IndexedColor: &IndexedColor{Index: idx}}
	default:
		return 1, TerminalCharAttribute{Attr: attr}
	}
}

// --- OSC dispatch -------------------------------------------------------

func (d *Decoder) dispatchOSC() {
	s := string(d.strBuf)
	sep := strings.IndexByte(s, ';')
	var code, rest string
	if sep < 0 {
		code, rest = s, ""
	} else {
		code, rest = s[:sep], s[sep+1:]
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return
	}

	switch n {
	case 0, 2:
		d.h.SetTitle(rest)
	case 1:
		d.h.SetTitle(rest)
	case 4:
		d.dispatchOSCColorTable(rest)
	case 7:
		d.h.SetWorkingDirectory(rest)
	case 8:
		d.dispatchOSCHyperlink(rest)
	case 9:
		d.h.DesktopNotification(&NotificationPayload{PayloadType: "9", Data: []byte(rest)})
	case 10, 11, 12, 17, 19:
		d.dispatchOSCDynamicColor(code, rest)
	case 52:
		d.dispatchOSCClipboard(rest)
	case 99:
		d.dispatchOSCNotification(rest)
	case 104:
		if rest == "" {
			for idx := 0; idx < 256; idx++ {
				d.h.ResetColor(idx)
			}
			return
		}
		for _, part := range strings.Split(rest, ";") {
			if idx, err := strconv.Atoi(part); err == nil {
				d.h.ResetColor(idx)
			}
		}
	case 110:
		d.h.ResetColor(10)
	case 111:
		d.h.ResetColor(11)
	case 112:
		d.h.ResetColor(12)
	case 117:
		d.h.ResetColor(17)
	case 119:
		d.h.ResetColor(19)
	case 133:
		d.dispatchOSCShellIntegration(rest)
	case 777:
		d.dispatchOSCNotification(rest)
	case 1337:
		d.dispatchOSCUserVar(rest)
	}
}

// dynamicColorIndex maps an OSC 10/11/12/17/19 code to the palette slot
// SetColor/SetDynamicColor operate on (foreground, background, cursor, and
// two slots xterm has no named-color equivalent for in this terminal).
func dynamicColorIndex(code string) int {
	switch code {
	case "10":
		return 256 // NamedColorForeground
	case "11":
		return 257 // NamedColorBackground
	case "12":
		return 258 // NamedColorCursor
	case "17":
		return 300
	case "19":
		return 301
	default:
		return -1
	}
}

func (d *Decoder) dispatchOSCDynamicColor(code, rest string) {
	idx := dynamicColorIndex(code)
	if rest == "?" {
		d.h.SetDynamicColor(code, idx, "")
		return
	}
	if c, ok := parseXColor(rest); ok {
		d.h.SetColor(idx, c)
	}
}

func (d *Decoder) dispatchOSCColorTable(rest string) {
	parts := strings.Split(rest, ";")
	for i := 0; i+1 < len(parts); i += 2 {
		idx, err := strconv.Atoi(parts[i])
		if err != nil {
			continue
		}
		if c, ok := parseXColor(parts[i+1]); ok {
			d.h.SetColor(idx, c)
		}
	}
}

func (d *Decoder) dispatchOSCHyperlink(rest string) {
	sep := strings.IndexByte(rest, ';')
	if sep < 0 {
		d.h.SetHyperlink(nil)
		return
	}
	params, uri := rest[:sep], rest[sep+1:]
	if uri == "" {
		d.h.SetHyperlink(nil)
		return
	}
	id := ""
	for _, kv := range strings.Split(params, ":") {
		if strings.HasPrefix(kv, "id=") {
			id = strings.TrimPrefix(kv, "id=")
		}
	}
	d.h.SetHyperlink(&Hyperlink{ID: id, URI: uri})
}

func (d *Decoder) dispatchOSCClipboard(rest string) {
	sep := strings.IndexByte(rest, ';')
	if sep < 0 {
		return
	}
	selector, data := rest[:sep], rest[sep+1:]
	clip := byte('c')
	if len(selector) > 0 {
		clip = selector[0]
	}
	if data == "?" {
		d.h.ClipboardLoad(clip, "")
		return
	}
	decoded, err := base64Decode(data)
	if err != nil {
		return
	}
	d.h.ClipboardStore(clip, decoded)
}

func (d *Decoder) dispatchOSCShellIntegration(rest string) {
	mark := rest
	exitCode := 0
	if sep := strings.IndexByte(rest, ';'); sep >= 0 {
		mark = rest[:sep]
		if n, err := strconv.Atoi(rest[sep+1:]); err == nil {
			exitCode = n
		}
	}
	switch mark {
	case "A":
		d.h.ShellIntegrationMark(PromptStart, 0)
	case "B":
		d.h.ShellIntegrationMark(CommandStart, 0)
	case "C":
		d.h.ShellIntegrationMark(CommandExecuted, 0)
	case "D":
		d.h.ShellIntegrationMark(CommandFinished, exitCode)
	}
}

func (d *Decoder) dispatchOSCNotification(rest string) {
	if rest == "?" {
		d.h.DesktopNotification(&NotificationPayload{PayloadType: "?"})
		return
	}
	opts := map[string]string{}
	var body string
	parts := strings.Split(rest, ";")
	for _, p := range parts {
		if kv := strings.SplitN(p, "=", 2); len(kv) == 2 {
			opts[kv[0]] = kv[1]
		} else {
			body = p
		}
	}
	d.h.DesktopNotification(&NotificationPayload{PayloadType: "99", Options: opts, Data: []byte(body)})
}

func (d *Decoder) dispatchOSCUserVar(rest string) {
	eq := strings.IndexByte(rest, '=')
	if eq < 0 {
		return
	}
	name := rest[:eq]
	val, err := base64Decode(rest[eq+1:])
	if err != nil {
		return
	}
	d.h.SetUserVar(name, string(val))
}

// --- DCS / APC / PM / SOS dispatch ---------------------------------------

func (d *Decoder) dispatchDCS() {
	switch {
	case d.finalSeen == 'q' && len(d.interm) > 0 && d.interm[len(d.interm)-1] == '$':
		// DECRQSS: "DCS $ q <Pt> ST". d.strBuf holds the raw Pt request
		// bytes ("m", " q", "r", "s", ...); Handler composes the reply.
		d.h.RequestSettings(d.strBuf)
	case d.finalSeen == 'q':
		d.h.SixelReceived(d.params, d.strBuf)
	default:
		// Other device control strings are accepted and ignored.
	}
}

func (d *Decoder) dispatchAPC() {
	d.h.ApplicationCommandReceived(d.strBuf)
}

func (d *Decoder) dispatchPM() {
	d.h.PrivacyMessageReceived(d.strBuf)
}

func (d *Decoder) dispatchSOS() {
	d.h.StartOfStringReceived(d.strBuf)
}

// --- small helpers --------------------------------------------------------

// parseXColor parses an X11-style "rgb:rrrr/gggg/bbbb" or "#rrggbb" color
// spec as used by OSC 4/10/11/...
func parseXColor(s string) (color.Color, bool) {
	if strings.HasPrefix(s, "rgb:") {
		parts := strings.Split(s[4:], "/")
		if len(parts) != 3 {
			return nil, false
		}
		r, g, b := hex16(parts[0]), hex16(parts[1]), hex16(parts[2])
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, true
	}
	if strings.HasPrefix(s, "#") && (len(s) == 7) {
		r, err1 := strconv.ParseUint(s[1:3], 16, 8)
		g, err2 := strconv.ParseUint(s[3:5], 16, 8)
		b, err3 := strconv.ParseUint(s[5:7], 16, 8)
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, false
		}
		return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}, true
	}
	return nil, false
}

func hex16(s string) uint8 {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0
	}
	// Scale a 4/8/12/16-bit-per-component value down to 8 bits.
	bits := uint(len(s) * 4)
	if bits > 8 {
		v >>= bits - 8
	} else if bits == 4 {
		v *= 0x11
	}
	return uint8(v)
}

func base64Decode(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}
