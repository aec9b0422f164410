package vtparser

import "image/color"

// Handler receives decoded terminal operations from a Decoder. A terminal
// implementation (grid, cursor, modes, providers) implements this interface;
// the Decoder's only job is turning bytes into these calls in order.
type Handler interface {
	Input(r rune)
	Bell()
	Backspace()
	CarriageReturn()
	LineFeed()
	Tab(n int)
	ClearLine(mode LineClearMode)
	ClearScreen(mode ClearMode)
	SelectiveClearLine(mode LineClearMode)
	SelectiveClearScreen(mode ClearMode)
	ClearTabs(mode TabulationClearMode)
	Goto(row, col int)
	GotoLine(row int)
	GotoCol(col int)
	MoveUp(n int)
	MoveDown(n int)
	MoveForward(n int)
	MoveBackward(n int)
	MoveUpCr(n int)
	MoveDownCr(n int)
	MoveForwardTabs(n int)
	MoveBackwardTabs(n int)
	InsertBlank(n int)
	InsertBlankLines(n int)
	DeleteChars(n int)
	DeleteLines(n int)
	EraseChars(n int)
	ScrollUp(n int)
	ScrollDown(n int)
	ScrollLeftChars(n int)
	ScrollRightChars(n int)
	SetScrollingRegion(top, bottom int)
	SetLeftRightMargin(left, right int)
	SetProtected(protected bool)
	EraseRectangle(top, left, bottom, right int)
	FillRectangle(ch rune, top, left, bottom, right int)
	ChangeAttributesRectangle(attrs RectAttrs, top, left, bottom, right int)
	ReverseAttributesRectangle(attrs RectAttrs, top, left, bottom, right int)
	CopyRectangle(srcTop, srcLeft, srcBottom, srcRight, dstTop, dstLeft int)
	RequestSettings(pt []byte)
	SetMode(mode TerminalMode)
	UnsetMode(mode TerminalMode)
	SetTerminalCharAttribute(attr TerminalCharAttribute)
	SetTitle(title string)
	SetCursorStyle(style CursorStyle)
	SaveCursorPosition()
	RestoreCursorPosition()
	ReverseIndex()
	ResetState()
	Substitute()
	Decaln()
	DeviceStatus(n int)
	IdentifyTerminal(b byte)
	ConfigureCharset(index CharsetIndex, charset Charset)
	SetActiveCharset(n int)
	SetKeypadApplicationMode()
	UnsetKeypadApplicationMode()
	SetColor(index int, c color.Color)
	ResetColor(i int)
	SetDynamicColor(prefix string, index int, terminator string)
	ClipboardLoad(clipboard byte, terminator string)
	ClipboardStore(clipboard byte, data []byte)
	SetHyperlink(hyperlink *Hyperlink)
	PushTitle()
	PopTitle()
	TextAreaSizeChars()
	TextAreaSizePixels()
	HorizontalTabSet()
	SetKeyboardMode(mode KeyboardMode, behavior KeyboardModeBehavior)
	PushKeyboardMode(mode KeyboardMode)
	PopKeyboardMode(n int)
	ReportKeyboardMode()
	SetModifyOtherKeys(modify ModifyOtherKeys)
	ReportModifyOtherKeys()
	ApplicationCommandReceived(data []byte)
	PrivacyMessageReceived(data []byte)
	StartOfStringReceived(data []byte)
	ShellIntegrationMark(mark ShellIntegrationMark, exitCode int)
	SetWorkingDirectory(uri string)
	SixelReceived(params [][]uint16, data []byte)
	DesktopNotification(payload *NotificationPayload)
	SetUserVar(name, value string)
}
