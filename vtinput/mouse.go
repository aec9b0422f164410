package vtinput

import "fmt"

// MouseButton identifies which button a mouse event concerns.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonNone
	MouseWheelUp
	MouseWheelDown
)

// MouseEventKind distinguishes press/release/motion for mouse reporting.
type MouseEventKind int

const (
	MousePress MouseEventKind = iota
	MouseRelease
	MouseMotion
)

// MouseProtocol selects which mouse events are reported at all.
type MouseProtocol int

const (
	// MouseProtocolNone disables mouse reporting entirely.
	MouseProtocolNone MouseProtocol = iota
	// MouseProtocolNormal reports only button press/release (mode 1000).
	MouseProtocolNormal
	// MouseProtocolButtonTracking also reports motion while a button is held (mode 1002).
	MouseProtocolButtonTracking
	// MouseProtocolAnyEvent reports all motion regardless of button state (mode 1003).
	MouseProtocolAnyEvent
)

// MouseTransport selects how button/coordinate data is encoded on the wire.
type MouseTransport int

const (
	// MouseTransportDefault is the X10-style 3-byte encoding (CSI M).
	MouseTransportDefault MouseTransport = iota
	// MouseTransportExtended UTF-8 encodes coordinates beyond 223 (mode 1005).
	MouseTransportExtended
	// MouseTransportSGR uses "CSI < button ; col ; row M/m" (mode 1006).
	MouseTransportSGR
	// MouseTransportURXVT uses "CSI button ; col ; row M" (mode 1015).
	MouseTransportURXVT
	// MouseTransportSGRPixels is MouseTransportSGR with pixel coordinates (mode 1016).
	MouseTransportSGRPixels
)

// MouseWheelMode controls how wheel events are encoded when no mouse
// protocol is active (outside of active mouse reporting).
type MouseWheelMode int

const (
	MouseWheelModeNone MouseWheelMode = iota
	MouseWheelModeNormalCursorKeys
	MouseWheelModeApplicationCursorKeys
)

// MouseEvent describes one mouse interaction to encode. Row/Col are 0-based;
// encoding converts to the 1-based wire format. PixelX/PixelY are only used
// by MouseTransportSGRPixels.
type MouseEvent struct {
	Kind           MouseEventKind
	Button         MouseButton
	Row, Col       int
	PixelX, PixelY int
	Mods           Modifiers
}

// MouseEvent encodes a mouse interaction per the active protocol/transport.
// Returns nil if the event should not be reported (protocol off, motion
// filtered by the tracking mode, or position unchanged).
func (g *Generator) MouseEvent(ev MouseEvent) []byte {
	if g.mouseProtocol == MouseProtocolNone {
		return g.wheelFallback(ev)
	}

	if ev.Kind == MouseMotion {
		switch g.mouseProtocol {
		case MouseProtocolButtonTracking:
			if len(g.pressedButtons) == 0 {
				return nil
			}
		case MouseProtocolAnyEvent:
			// always reported
		default:
			return nil
		}
		if g.haveLastMousePos && g.lastMouseRow == ev.Row && g.lastMouseCol == ev.Col {
			return nil
		}
	}

	g.lastMouseRow, g.lastMouseCol = ev.Row, ev.Col
	g.haveLastMousePos = true

	switch ev.Kind {
	case MousePress:
		g.pressedButtons[ev.Button] = true
	case MouseRelease:
		delete(g.pressedButtons, ev.Button)
	}

	switch g.mouseTransport {
	case MouseTransportSGR, MouseTransportSGRPixels:
		return g.encodeSGRMouse(ev)
	case MouseTransportURXVT:
		return g.encodeURXVTMouse(ev)
	case MouseTransportExtended:
		return g.encodeExtendedMouse(ev)
	default:
		return g.encodeX10Mouse(ev)
	}
}

func mouseButtonCode(ev MouseEvent) int {
	base := 0
	switch ev.Button {
	case MouseButtonLeft:
		base = 0
	case MouseButtonMiddle:
		base = 1
	case MouseButtonRight:
		base = 2
	case MouseButtonNone:
		base = 3
	case MouseWheelUp:
		base = 64
	case MouseWheelDown:
		base = 65
	}
	if ev.Kind == MouseMotion && ev.Button != MouseButtonNone {
		base |= 32
	}
	if ev.Mods&ModShift != 0 {
		base |= 4
	}
	if ev.Mods&ModAlt != 0 {
		base |= 8
	}
	if ev.Mods&ModCtrl != 0 {
		base |= 16
	}
	return base
}

// encodeX10Mouse is the legacy 3-byte "CSI M Cb Cx Cy" form, each offset by
// 0x20. Fails silently (returns nil) for coordinates that would overflow a
// single byte once offset (xterm's >= 223 limit).
func (g *Generator) encodeX10Mouse(ev MouseEvent) []byte {
	col, row := ev.Col+1, ev.Row+1
	if col >= 223 || row >= 223 {
		return nil
	}
	btn := mouseButtonCode(ev)
	if ev.Kind == MouseRelease {
		btn = 3
	}
	return []byte{0x1b, '[', 'M', byte(btn + 0x20), byte(col + 0x20), byte(row + 0x20)}
}

// encodeExtendedMouse is MouseTransportDefault's UTF-8 coordinate variant
// (mode 1005): coordinates beyond 7 bits are UTF-8 encoded instead of
// truncated.
func (g *Generator) encodeExtendedMouse(ev MouseEvent) []byte {
	col, row := ev.Col+1, ev.Row+1
	btn := mouseButtonCode(ev)
	if ev.Kind == MouseRelease {
		btn = 3
	}
	out := []byte{0x1b, '[', 'M', byte(btn + 0x20)}
	out = append(out, []byte(string(rune(col+0x20)))...)
	out = append(out, []byte(string(rune(row+0x20)))...)
	return out
}

func (g *Generator) encodeSGRMouse(ev MouseEvent) []byte {
	col, row := ev.Col+1, ev.Row+1
	if g.mouseTransport == MouseTransportSGRPixels {
		col, row = ev.PixelX, ev.PixelY
	}
	final := byte('M')
	if ev.Kind == MouseRelease {
		final = 'm'
	}
	return []byte(fmt.Sprintf("\x1b[<%d;%d;%d%c", mouseButtonCode(ev), col, row, final))
}

func (g *Generator) encodeURXVTMouse(ev MouseEvent) []byte {
	if ev.Kind == MouseRelease {
		// URXVT reports press/drag only; releases are not distinctly encoded.
		return nil
	}
	col, row := ev.Col+1, ev.Row+1
	return []byte(fmt.Sprintf("\x1b[%d;%d;%dM", mouseButtonCode(ev), col, row))
}

// wheelFallback emits cursor-key-style sequences for wheel events when no
// mouse protocol is active, matching xterm's MouseWheelMode behavior.
func (g *Generator) wheelFallback(ev MouseEvent) []byte {
	if ev.Button != MouseWheelUp && ev.Button != MouseWheelDown {
		return nil
	}
	letter := byte('B')
	if ev.Button == MouseWheelUp {
		letter = 'A'
	}
	switch g.mouseWheelMode {
	case MouseWheelModeNormalCursorKeys:
		return []byte{0x1b, '[', letter}
	case MouseWheelModeApplicationCursorKeys:
		return []byte{0x1b, 'O', letter}
	default:
		return nil
	}
}
