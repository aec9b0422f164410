package vtinput

import (
	"fmt"
	"strings"
)

// Generator holds the modal state that key/mouse encoding depends on:
// cursor-key and keypad application modes, bracketed paste, focus events,
// and the active mouse protocol/transport.
type Generator struct {
	cursorKeysApp    bool
	keypadApp        bool
	bracketedPaste   bool
	focusEvents      bool
	mouseProtocol    MouseProtocol
	mouseTransport   MouseTransport
	mouseWheelMode   MouseWheelMode
	pressedButtons   map[MouseButton]bool
	lastMouseRow     int
	lastMouseCol     int
	haveLastMousePos bool
}

// NewGenerator returns a Generator in the default (non-application) state.
func NewGenerator() *Generator {
	return &Generator{pressedButtons: make(map[MouseButton]bool)}
}

// SetCursorKeysMode toggles DECCKM (application cursor keys, mode 1).
func (g *Generator) SetCursorKeysMode(app bool) { g.cursorKeysApp = app }

// SetKeypadApplicationMode toggles DECKPAM/DECKPNM (application keypad).
func (g *Generator) SetKeypadApplicationMode(app bool) { g.keypadApp = app }

// SetBracketedPaste toggles bracketed-paste mode (2004).
func (g *Generator) SetBracketedPaste(on bool) { g.bracketedPaste = on }

// SetFocusEvents toggles focus in/out reporting (1004).
func (g *Generator) SetFocusEvents(on bool) { g.focusEvents = on }

// SetMouseProtocol selects which mouse events are reported, or MouseProtocolNone.
func (g *Generator) SetMouseProtocol(p MouseProtocol) { g.mouseProtocol = p }

// SetMouseTransport selects how mouse coordinates/buttons are encoded.
func (g *Generator) SetMouseTransport(t MouseTransport) { g.mouseTransport = t }

// SetMouseWheelMode controls wheel encoding when no mouse protocol is active.
func (g *Generator) SetMouseWheelMode(m MouseWheelMode) { g.mouseWheelMode = m }

// Rune encodes a printable character event. An Alt modifier prefixes ESC.
func (g *Generator) Rune(r rune, mods Modifiers) []byte {
	buf := []byte(string(r))
	if mods&ModAlt != 0 {
		return append([]byte{0x1b}, buf...)
	}
	return buf
}

// Key encodes a named key event into outbound bytes. Returns nil if the key
// produces no output.
func (g *Generator) Key(key Key, mods Modifiers) []byte {
	switch key {
	case KeyBackspace:
		if mods&ModCtrl != 0 {
			return []byte{0x08}
		}
		return []byte{0x7f}
	case KeyTab:
		if mods&ModShift != 0 {
			return []byte("\x1b[Z")
		}
		return []byte{'\t'}
	case KeyEnter, KeyKeypadEnter:
		return []byte{'\r'}
	case KeyEscape:
		return []byte{0x1b}
	}

	if letter, ok := arrowLetter(key); ok {
		return g.encodeArrowLike(letter, mods)
	}

	if letter, ok := homeEndLetter(key); ok {
		return g.encodeArrowLike(letter, mods)
	}

	if n, ok := tildeCode(key); ok {
		return g.encodeTilde(n, mods)
	}

	if letter, ok := functionLetter(key); ok {
		// F1-F4 send SS3 <letter> unmodified, regardless of cursor-key
		// mode; with modifiers they use the CSI-letter form like arrows.
		if mods == 0 {
			return []byte{0x1b, 'O', letter}
		}
		return g.encodeArrowLike(letter, mods)
	}

	if letter, digit, ok := keypadCode(key); ok {
		if g.keypadApp {
			return []byte{0x1b, 'O', letter}
		}
		return []byte{digit}
	}

	return nil
}

// keypadCode returns the application-mode SS3 letter and normal-mode digit
// byte for a numeric/operator keypad key.
func keypadCode(key Key) (letter byte, digit byte, ok bool) {
	switch key {
	case KeyKeypad0:
		return 'p', '0', true
	case KeyKeypad1:
		return 'q', '1', true
	case KeyKeypad2:
		return 'r', '2', true
	case KeyKeypad3:
		return 's', '3', true
	case KeyKeypad4:
		return 't', '4', true
	case KeyKeypad5:
		return 'u', '5', true
	case KeyKeypad6:
		return 'v', '6', true
	case KeyKeypad7:
		return 'w', '7', true
	case KeyKeypad8:
		return 'x', '8', true
	case KeyKeypad9:
		return 'y', '9', true
	case KeyKeypadDecimal:
		return 'n', '.', true
	case KeyKeypadAdd:
		return 'k', '+', true
	case KeyKeypadSubtract:
		return 'm', '-', true
	case KeyKeypadMultiply:
		return 'j', '*', true
	case KeyKeypadDivide:
		return 'o', '/', true
	}
	return 0, 0, false
}

// encodeArrowLike handles the CSI letter / SS3 letter family (arrows, Home,
// End, modified F1-F4): unmodified uses SS3 in application-cursor mode or CSI in
// normal mode; any modifier forces "CSI 1 ; <param> <letter>".
func (g *Generator) encodeArrowLike(letter byte, mods Modifiers) []byte {
	if mods == 0 {
		if g.cursorKeysApp {
			return []byte{0x1b, 'O', letter}
		}
		return []byte{0x1b, '[', letter}
	}
	return []byte(fmt.Sprintf("\x1b[1;%d%c", vtModifierParam(mods), letter))
}

// encodeTilde handles the "CSI n ~" family (PageUp/Down, Insert, Delete,
// F5-F12): a modifier inserts a second parameter "CSI n ; <param> ~".
func (g *Generator) encodeTilde(n int, mods Modifiers) []byte {
	if mods == 0 {
		return []byte(fmt.Sprintf("\x1b[%d~", n))
	}
	return []byte(fmt.Sprintf("\x1b[%d;%d~", n, vtModifierParam(mods)))
}

func arrowLetter(key Key) (byte, bool) {
	switch key {
	case KeyUp:
		return 'A', true
	case KeyDown:
		return 'B', true
	case KeyRight:
		return 'C', true
	case KeyLeft:
		return 'D', true
	}
	return 0, false
}

func homeEndLetter(key Key) (byte, bool) {
	switch key {
	case KeyHome:
		return 'H', true
	case KeyEnd:
		return 'F', true
	}
	return 0, false
}

func functionLetter(key Key) (byte, bool) {
	switch key {
	case KeyF1:
		return 'P', true
	case KeyF2:
		return 'Q', true
	case KeyF3:
		return 'R', true
	case KeyF4:
		return 'S', true
	}
	return 0, false
}

func tildeCode(key Key) (int, bool) {
	switch key {
	case KeyInsert:
		return 2, true
	case KeyDelete:
		return 3, true
	case KeyPageUp:
		return 5, true
	case KeyPageDown:
		return 6, true
	case KeyF5:
		return 15, true
	case KeyF6:
		return 17, true
	case KeyF7:
		return 18, true
	case KeyF8:
		return 19, true
	case KeyF9:
		return 20, true
	case KeyF10:
		return 21, true
	case KeyF11:
		return 23, true
	case KeyF12:
		return 24, true
	}
	return 0, false
}

// CtrlLetter encodes Ctrl+<letter> (A-Z, and a handful of punctuation) to
// its C0 control byte. Callers route printable Ctrl+key combinations here
// before falling back to Rune, since 'a'-'z' don't carry Ctrl information
// once turned into a rune by most input layers.
func CtrlLetter(r rune) (byte, bool) {
	upper := r
	if upper >= 'a' && upper <= 'z' {
		upper -= 'a' - 'A'
	}
	switch {
	case upper >= 'A' && upper <= 'Z':
		return byte(upper - 'A' + 1), true
	case upper == '@':
		return 0, true
	case upper == '[':
		return 0x1b, true
	case upper == '\\':
		return 0x1c, true
	case upper == ']':
		return 0x1d, true
	case upper == '^':
		return 0x1e, true
	case upper == '_':
		return 0x1f, true
	}
	return 0, false
}

// Paste wraps text in bracketed-paste markers iff bracketed paste is on.
func (g *Generator) Paste(text string) []byte {
	if !g.bracketedPaste {
		return []byte(text)
	}
	var b strings.Builder
	b.WriteString("\x1b[200~")
	b.WriteString(text)
	b.WriteString("\x1b[201~")
	return []byte(b.String())
}

// FocusIn/FocusOut emit xterm focus-event reports (1004) when enabled.
func (g *Generator) FocusIn() []byte {
	if !g.focusEvents {
		return nil
	}
	return []byte("\x1b[I")
}

func (g *Generator) FocusOut() []byte {
	if !g.focusEvents {
		return nil
	}
	return []byte("\x1b[O")
}
