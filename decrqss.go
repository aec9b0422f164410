package headlessterm

import (
	"fmt"
	"image/color"
)

// RequestSettings answers DECRQSS ("DCS $ q Pt ST"): Pt names a setting
// (SGR "m", cursor style " q", scrolling region "r", left/right margin
// "s"); the reply is "DCS 1 $ r <value><Pt final> ST" when recognized, or
// "DCS 0 $ r ST" otherwise.
func (t *Terminal) RequestSettings(pt []byte) {
	t.mu.RLock()
	request := string(pt)
	var value string
	var valid bool

	switch request {
	case "m":
		value = t.currentSGRString()
		valid = true
	case " q":
		value = fmt.Sprintf("%d q", cursorStyleParam(t.cursor.Style))
		valid = true
	case "r":
		value = fmt.Sprintf("%d;%dr", t.scrollTop+1, t.scrollBottom)
		valid = true
	case "s":
		value = fmt.Sprintf("%d;%ds", t.marginLeft+1, t.marginRight)
		valid = true
	}
	t.mu.RUnlock()

	if valid {
		t.writeResponseString("\x1bP1$r" + value + "\x1b\\")
		return
	}
	t.writeResponseString("\x1bP0$r\x1b\\")
}

// cursorStyleParam returns the DECSCUSR parameter value for style (the
// inverse of vtparser's cursorStyleFor).
func cursorStyleParam(style CursorStyle) int {
	switch style {
	case CursorStyleBlinkingBlock:
		return 1
	case CursorStyleSteadyBlock:
		return 2
	case CursorStyleBlinkingUnderline:
		return 3
	case CursorStyleSteadyUnderline:
		return 4
	case CursorStyleBlinkingBar:
		return 5
	case CursorStyleSteadyBar:
		return 6
	default:
		return 1
	}
}

// currentSGRString renders the cell template's attributes as an SGR
// parameter string terminated by 'm', e.g. "0;1;4m" for bold+underline.
func (t *Terminal) currentSGRString() string {
	params := []string{"0"}

	if t.template.HasFlag(CellFlagBold) {
		params = append(params, "1")
	}
	if t.template.HasFlag(CellFlagDim) {
		params = append(params, "2")
	}
	if t.template.HasFlag(CellFlagItalic) {
		params = append(params, "3")
	}
	if t.template.HasFlag(CellFlagUnderline) {
		params = append(params, "4")
	}
	if t.template.HasFlag(CellFlagBlinkSlow) {
		params = append(params, "5")
	}
	if t.template.HasFlag(CellFlagBlinkFast) {
		params = append(params, "6")
	}
	if t.template.HasFlag(CellFlagReverse) {
		params = append(params, "7")
	}
	if t.template.HasFlag(CellFlagHidden) {
		params = append(params, "8")
	}
	if t.template.HasFlag(CellFlagStrike) {
		params = append(params, "9")
	}

	if code, ok := sgrCodeForNamedColor(t.template.Fg, 30, true); ok {
		params = append(params, fmt.Sprintf("%d", code))
	}
	if code, ok := sgrCodeForNamedColor(t.template.Bg, 40, false); ok {
		params = append(params, fmt.Sprintf("%d", code))
	}

	out := ""
	for i, p := range params {
		if i > 0 {
			out += ";"
		}
		out += p
	}
	return out + "m"
}

// sgrCodeForNamedColor returns the SGR code for c if it resolves to one of
// the 16 named palette entries, offset by base (30 for fg, 40 for bg; bright
// colors 8-15 use the 90/100 short form). A nil color or the default
// foreground/background name resolves to "no explicit color" (the reset
// parameter "0" already covers it).
func sgrCodeForNamedColor(c color.Color, base int, fg bool) (int, bool) {
	if c == nil {
		return 0, false
	}
	if n, ok := c.(*NamedColor); ok {
		if (fg && n.Name == NamedColorForeground) || (!fg && n.Name == NamedColorBackground) {
			return 0, false
		}
	}

	resolved := ResolveDefaultColor(c, fg)
	for i := 0; i < 16; i++ {
		if resolved == DefaultPalette[i] {
			if i < 8 {
				return base + i, true
			}
			brightBase := 90
			if base == 40 {
				brightBase = 100
			}
			return brightBase + (i - 8), true
		}
	}
	return 0, false
}
