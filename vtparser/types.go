// Package vtparser implements the byte-stream state machine and sequence
// dispatch layer for a VT/ANSI terminal emulator: it turns a raw stream of
// bytes (UTF-8 text interleaved with C0/C1 controls and escape sequences)
// into calls against a Handler.
package vtparser

// TerminalMode identifies a settable terminal mode (DECSET/DECRST or ANSI
// SM/RM). Values are arbitrary but stable within this package.
type TerminalMode int

const (
	TerminalModeCursorKeys TerminalMode = iota + 1
	TerminalModeColumnMode
	TerminalModeInsert
	TerminalModeOrigin
	TerminalModeLineWrap
	TerminalModeBlinkingCursor
	TerminalModeLineFeedNewLine
	TerminalModeShowCursor
	TerminalModeReportMouseClicks
	TerminalModeReportCellMouseMotion
	TerminalModeReportAllMouseMotion
	TerminalModeReportFocusInOut
	TerminalModeUTF8Mouse
	TerminalModeSGRMouse
	TerminalModeAlternateScroll
	TerminalModeUrgencyHints
	TerminalModeSwapScreenAndSetRestoreCursor
	TerminalModeBracketedPaste
	TerminalModeSyncUpdate
	TerminalModeGraphemeCluster
	TerminalModeWin32InputMode
	TerminalModeLeftRightMargin
	TerminalModeTextReflow
)

// ClearMode selects which part of the screen ED (Erase in Display) clears.
type ClearMode int

const (
	ClearModeBelow ClearMode = iota
	ClearModeAbove
	ClearModeAll
	ClearModeSaved
)

// LineClearMode selects which part of the line EL (Erase in Line) clears.
type LineClearMode int

const (
	LineClearModeRight LineClearMode = iota
	LineClearModeLeft
	LineClearModeAll
)

// RectAttrs is a bitmask of the attribute selectors DECCARA/DECRARA accept
// (a subset of SGR's character-attribute numbers: bold, underline, blink,
// reverse), decoded from the sequence's trailing Ps list.
type RectAttrs uint8

const (
	RectAttrBold RectAttrs = 1 << iota
	RectAttrUnderline
	RectAttrBlink
	RectAttrReverse
)

// TabulationClearMode selects which tab stops TBC clears.
type TabulationClearMode int

const (
	TabulationClearModeCurrent TabulationClearMode = iota
	TabulationClearModeAll
)

// CharAttribute identifies an SGR parameter family.
type CharAttribute int

const (
	CharAttributeReset CharAttribute = iota
	CharAttributeBold
	CharAttributeDim
	CharAttributeItalic
	CharAttributeUnderline
	CharAttributeDoubleUnderline
	CharAttributeCurlyUnderline
	CharAttributeDottedUnderline
	CharAttributeDashedUnderline
	CharAttributeBlinkSlow
	CharAttributeBlinkFast
	CharAttributeReverse
	CharAttributeHidden
	CharAttributeStrike
	CharAttributeCancelBold
	CharAttributeCancelBoldDim
	CharAttributeCancelItalic
	CharAttributeCancelUnderline
	CharAttributeCancelBlink
	CharAttributeCancelReverse
	CharAttributeCancelHidden
	CharAttributeCancelStrike
	CharAttributeForeground
	CharAttributeBackground
	CharAttributeUnderlineColor
)

// RGBColor is a resolved 24-bit color carried by a TerminalCharAttribute.
type RGBColor struct {
	R, G, B uint8
}

// IndexedColor is a palette-index color carried by a TerminalCharAttribute.
type IndexedColor struct {
	Index uint8
}

// TerminalCharAttribute describes one parsed SGR parameter, including any
// color payload (direct RGB, palette index, or named slot) it carries.
type TerminalCharAttribute struct {
	Attr         CharAttribute
	RGBColor     *RGBColor
	IndexedColor *IndexedColor
	NamedColor   *int
}

// CursorStyle identifies the DECSCUSR cursor rendering style.
type CursorStyle int

const (
	CursorStyleBlinkingBlock CursorStyle = iota
	CursorStyleSteadyBlock
	CursorStyleBlinkingUnderline
	CursorStyleSteadyUnderline
	CursorStyleBlinkingBar
	CursorStyleSteadyBar
)

// CharsetIndex identifies which of the four G0-G3 charset slots a
// designation sequence targets.
type CharsetIndex int

const (
	CharsetIndexG0 CharsetIndex = iota
	CharsetIndexG1
	CharsetIndexG2
	CharsetIndexG3
)

// Charset identifies a designated character set (SCS).
type Charset int

const (
	CharsetASCII Charset = iota
	CharsetUK
	CharsetDECLineDrawing
	CharsetDECSupplemental
)

// Hyperlink carries an OSC 8 hyperlink id/uri pair.
type Hyperlink struct {
	ID  string
	URI string
}

// KeyboardMode is a bitmask of Kitty keyboard protocol flags.
type KeyboardMode int

const (
	KeyboardModeNoMode             KeyboardMode = 0
	KeyboardModeDisambiguateEscape KeyboardMode = 1 << (iota - 1)
	KeyboardModeReportEventTypes
	KeyboardModeReportAlternateKeys
	KeyboardModeReportAllKeysAsEscape
	KeyboardModeReportAssociatedText
)

// KeyboardModeBehavior selects how SetKeyboardMode combines with the
// current top-of-stack value.
type KeyboardModeBehavior int

const (
	KeyboardModeBehaviorReplace KeyboardModeBehavior = iota
	KeyboardModeBehaviorUnion
	KeyboardModeBehaviorDifference
)

// ModifyOtherKeys is the xterm "modifyOtherKeys" resource value (CSI > 4 ; n m).
type ModifyOtherKeys int

// ShellIntegrationMark identifies an OSC 133 semantic prompt mark.
type ShellIntegrationMark int

const (
	PromptStart ShellIntegrationMark = iota
	CommandStart
	CommandExecuted
	CommandFinished
)

// NotificationPayload carries a parsed OSC 9 / OSC 99 desktop notification.
// PayloadType is "9" for the legacy plain-text form, "99" for the structured
// form (whose metadata keys end up in Options), or "?" for a capability
// query whose response is written back to the PTY.
type NotificationPayload struct {
	PayloadType string
	Options     map[string]string
	Data        []byte
}
