// Package terminal provides direct ANSI terminal control: raw-mode entry,
// cell-diffed output, and incremental input parsing. It bypasses
// terminfo/termcap, emitting sequences for xterm-compatible terminals.
package terminal

import "strconv"

// Key identifies a non-printable or functional key.
type Key uint16

const (
	KeyNone Key = iota
	KeyRune // printable character, see Event.Rune

	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete
	KeySpace
	KeyInsert

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20

	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause
	KeyMenu

	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ

	KeyCtrlSpace
	KeyCtrlBackslash
	KeyCtrlBracketRight
	KeyCtrlCaret
	KeyCtrlUnderscore
)

// Modifier is a bitmask of held modifier keys, matching the CSI/Kitty wire
// encoding directly (second parameter = 1 + bitmask).
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
	ModSuper Modifier = 1 << 3
	ModHyper Modifier = 1 << 4
	ModMeta  Modifier = 1 << 5
)

// KittyEventType distinguishes a Kitty keyboard-protocol key event's phase.
type KittyEventType uint8

const (
	KittyPress KittyEventType = iota + 1
	KittyRepeat
	KittyRelease
)

// EventType distinguishes the category of a parsed Event.
type EventType uint8

const (
	EventKey EventType = iota
	EventMouse
	EventPaste
	EventFocusGained
	EventFocusLost
)

// Event is one fully decoded input occurrence.
type Event struct {
	Type EventType

	// EventKey
	Key       Key
	Rune      rune
	Modifiers Modifier
	KittyType KittyEventType

	// EventMouse
	MouseButton MouseButton
	MouseAction MouseAction
	MouseX      int
	MouseY      int

	// EventPaste
	Text string
}

// ctrlLetterKeys maps control bytes 0x01-0x1A (excluding the ones with a
// dedicated Key constant) to their Ctrl+letter Key.
var ctrlLetterKeys = [26]Key{
	KeyCtrlA, KeyCtrlB, KeyCtrlC, KeyCtrlD, KeyCtrlE, KeyCtrlF, KeyCtrlG,
	KeyCtrlH, KeyCtrlI, KeyCtrlJ, KeyCtrlK, KeyCtrlL, KeyCtrlM, KeyCtrlN,
	KeyCtrlO, KeyCtrlP, KeyCtrlQ, KeyCtrlR, KeyCtrlS, KeyCtrlT, KeyCtrlU,
	KeyCtrlV, KeyCtrlW, KeyCtrlX, KeyCtrlY, KeyCtrlZ,
}

// tildeKeys maps a CSI "~" sequence's first parameter to a Key, per xterm
// convention (ranges 25-34 cover F13-F20 with the gaps xterm leaves).
var tildeKeys = map[int]Key{
	1: KeyHome, 7: KeyHome,
	2: KeyInsert,
	3: KeyDelete,
	4: KeyEnd, 8: KeyEnd,
	5: KeyPageUp,
	6: KeyPageDown,
	15: KeyF5,
	17: KeyF6, 18: KeyF7, 19: KeyF8, 20: KeyF9, 21: KeyF10,
	23: KeyF11, 24: KeyF12,
	25: KeyF13, 26: KeyF14,
	28: KeyF15, 29: KeyF16,
	31: KeyF17, 32: KeyF18, 33: KeyF19, 34: KeyF20,
}

// csiLetterKeys maps a CSI sequence's final letter (with no "~") to a Key.
var csiLetterKeys = map[byte]Key{
	'A': KeyUp, 'B': KeyDown, 'C': KeyRight, 'D': KeyLeft,
	'H': KeyHome, 'F': KeyEnd,
	'P': KeyF1, 'Q': KeyF2, 'R': KeyF3, 'S': KeyF4,
	'Z': KeyBacktab,
}

// ss3Keys maps the single byte following "ESC O" to a Key.
var ss3Keys = map[byte]Key{
	'A': KeyUp, 'B': KeyDown, 'C': KeyRight, 'D': KeyLeft,
	'H': KeyHome, 'F': KeyEnd,
	'P': KeyF1, 'Q': KeyF2, 'R': KeyF3, 'S': KeyF4,
}

// kittyCodepointKeys maps Kitty's private-use-area codepoints (CSI ... u)
// to functional keys, per the Kitty keyboard protocol specification.
var kittyCodepointKeys = map[rune]Key{
	57344: KeyEscape, 57345: KeyEnter, 57346: KeyTab, 57347: KeyBackspace,
	57348: KeyInsert, 57349: KeyDelete,
	57350: KeyLeft, 57351: KeyRight, 57352: KeyUp, 57353: KeyDown,
	57354: KeyPageUp, 57355: KeyPageDown, 57356: KeyHome, 57357: KeyEnd,
	57358: KeyCapsLock, 57359: KeyScrollLock, 57360: KeyNumLock,
	57361: KeyPrintScreen, 57362: KeyPause, 57363: KeyMenu,
	57364: KeyF1, 57365: KeyF2, 57366: KeyF3, 57367: KeyF4, 57368: KeyF5,
	57369: KeyF6, 57370: KeyF7, 57371: KeyF8, 57372: KeyF9, 57373: KeyF10,
	57374: KeyF11, 57375: KeyF12, 57376: KeyF13, 57377: KeyF14, 57378: KeyF15,
	57379: KeyF16, 57380: KeyF17, 57381: KeyF18, 57382: KeyF19, 57383: KeyF20,
}

// csiParam is one semicolon-separated CSI parameter with its optional
// colon sub-parameter (used by Kitty's event-type field).
type csiParam struct {
	value int
	sub   int
	hasSub bool
}

// Input is an incremental byte-stream parser. Grounded on
// terminal/input.go's inputReader/parseInput/parseEscape/parseCSI/parseSS3,
// restructured from a goroutine reading stdin directly into a pure
// buffer-in-events-out API: the caller owns the read loop and timing, Input
// only turns bytes into Events.
type Input struct {
	buf []byte

	inPaste  bool
	pasteBuf []byte
}

// NewInput creates an empty incremental parser.
func NewInput() *Input {
	return &Input{}
}

// HasPending reports whether bytes remain buffered, awaiting either more
// input or a Flush.
func (p *Input) HasPending() bool {
	return len(p.buf) > 0
}

// Advance feeds newly read bytes in and returns every event that could be
// completely decoded. Bytes that form an incomplete sequence remain
// buffered for the next call.
func (p *Input) Advance(data []byte) []Event {
	p.buf = append(p.buf, data...)

	var events []Event
	for len(p.buf) > 0 {
		n, ev, ok := p.parseOne(p.buf)
		if !ok {
			break
		}
		if n == 0 {
			break
		}
		p.buf = p.buf[n:]
		if ev != nil {
			events = append(events, *ev)
		}
	}
	return events
}

// Flush drains any pending bytes as literal key events — used when the
// caller has waited out the ESC-ambiguity timeout and concluded no more
// bytes are coming.
func (p *Input) Flush() []Event {
	var events []Event
	for len(p.buf) > 0 {
		events = append(events, literalKeyEvent(p.buf[0]))
		p.buf = p.buf[1:]
	}
	return events
}

func literalKeyEvent(b byte) Event {
	switch {
	case b >= 0x20 && b <= 0x7e:
		return Event{Type: EventKey, Key: KeyRune, Rune: rune(b)}
	case b == 0x08 || b == 0x7f:
		return Event{Type: EventKey, Key: KeyBackspace}
	case b == 0x09:
		return Event{Type: EventKey, Key: KeyTab}
	case b == 0x0a || b == 0x0d:
		return Event{Type: EventKey, Key: KeyEnter}
	default:
		return controlEvent(b)
	}
}

// parseOne attempts to decode exactly one event from the front of buf.
// Returns (bytesConsumed, event, ok); ok is false when buf's prefix is an
// incomplete sequence the caller should wait for more bytes to resolve
// (event is nil whenever no event was produced, including when n>0 bytes
// of a paste payload were merely appended to the in-progress buffer).
func (p *Input) parseOne(buf []byte) (int, *Event, bool) {
	if p.inPaste {
		return p.consumePaste(buf)
	}

	b := buf[0]

	if b >= 0x20 && b < 0x7f {
		return 1, &Event{Type: EventKey, Key: KeyRune, Rune: rune(b)}, true
	}

	if b == 0x1b {
		return p.parseEscape(buf)
	}

	if b < 0x20 {
		ev := controlEvent(b)
		return 1, &ev, true
	}
	if b == 0x7f {
		ev := Event{Type: EventKey, Key: KeyBackspace}
		return 1, &ev, true
	}

	if b >= 0xc0 {
		return decodeUTF8(buf)
	}
	// Stray continuation byte or otherwise invalid lead byte.
	return 1, nil, true
}

func controlEvent(b byte) Event {
	switch b {
	case 0x00:
		return Event{Type: EventKey, Key: KeyCtrlSpace}
	case 0x08:
		return Event{Type: EventKey, Key: KeyBackspace}
	case 0x09:
		return Event{Type: EventKey, Key: KeyTab}
	case 0x0a, 0x0d:
		return Event{Type: EventKey, Key: KeyEnter}
	case 0x1c:
		return Event{Type: EventKey, Key: KeyCtrlBackslash}
	case 0x1d:
		return Event{Type: EventKey, Key: KeyCtrlBracketRight}
	case 0x1e:
		return Event{Type: EventKey, Key: KeyCtrlCaret}
	case 0x1f:
		return Event{Type: EventKey, Key: KeyCtrlUnderscore}
	case 0x1b:
		return Event{Type: EventKey, Key: KeyEscape}
	default:
		if (b >= 0x01 && b <= 0x1a) {
			return Event{Type: EventKey, Key: ctrlLetterKeys[b-1], Modifiers: ModCtrl}
		}
		return Event{Type: EventKey, Key: KeyNone}
	}
}

func decodeUTF8(buf []byte) (int, *Event, bool) {
	b := buf[0]
	var size int
	switch {
	case b >= 0xc0 && b <= 0xdf:
		size = 2
	case b >= 0xe0 && b <= 0xef:
		size = 3
	case b >= 0xf0 && b <= 0xf7:
		size = 4
	default:
		return 1, nil, true
	}
	if len(buf) < size {
		return 0, nil, false
	}
	r := rune(b) & (0xff >> uint(size+1))
	for i := 1; i < size; i++ {
		if buf[i] < 0x80 || buf[i] > 0xbf {
			return 1, nil, true
		}
		r = r<<6 | rune(buf[i]&0x3f)
	}
	ev := Event{Type: EventKey, Key: KeyRune, Rune: r}
	return size, &ev, true
}

func (p *Input) parseEscape(buf []byte) (int, *Event, bool) {
	if len(buf) < 2 {
		return 0, nil, false
	}
	switch buf[1] {
	case '[':
		return p.parseCSI(buf)
	case 'O':
		return parseSS3(buf)
	case 0x1b:
		ev := Event{Type: EventKey, Key: KeyEscape, Modifiers: ModAlt}
		return 2, &ev, true
	}
	if buf[1] >= 0x20 && buf[1] <= 0x7e {
		ev := Event{Type: EventKey, Key: KeyRune, Rune: rune(buf[1]), Modifiers: ModAlt}
		return 2, &ev, true
	}
	if buf[1] >= 0x01 && buf[1] <= 0x1a {
		ev := Event{Type: EventKey, Key: ctrlLetterKeys[buf[1]-1], Modifiers: ModCtrl | ModAlt}
		return 2, &ev, true
	}
	ev := Event{Type: EventKey, Key: KeyEscape}
	return 1, &ev, true
}

func parseSS3(buf []byte) (int, *Event, bool) {
	if len(buf) < 3 {
		return 0, nil, false
	}
	if k, ok := ss3Keys[buf[2]]; ok {
		ev := Event{Type: EventKey, Key: k}
		return 3, &ev, true
	}
	ev := Event{Type: EventKey, Key: KeyEscape}
	return 1, &ev, true
}

// parseCSI decodes "ESC [ params intermediates final". Grounded on
// spec.md §4.17's CSI dispatch table, generalized from the teacher's
// string-literal sequence table (terminal/key.go's csiSequences) into
// numeric parameter parsing so every modifier combination is handled by
// one formula instead of one table row per combination.
func (p *Input) parseCSI(buf []byte) (int, *Event, bool) {
	if len(buf) < 3 {
		return 0, nil, false
	}
	if buf[2] == '<' {
		return p.parseSGRMouse(buf, 3)
	}

	i := 2
	for i < len(buf) && buf[i] >= 0x30 && buf[i] <= 0x3f {
		i++
	}
	paramBytes := buf[2:i]

	for i < len(buf) && buf[i] >= 0x20 && buf[i] <= 0x2f {
		i++
	}

	if i >= len(buf) {
		return 0, nil, false
	}
	final := buf[i]
	if final < 0x40 || final > 0x7e {
		// Not a valid final byte where we expected one; drop the lead.
		ev := Event{Type: EventKey, Key: KeyEscape}
		return 1, &ev, true
	}
	n := i + 1

	params := parseCSIParams(paramBytes)

	if len(paramBytes) == 3 && paramBytes[0] == '2' && paramBytes[1] == '0' && paramBytes[2] == '0' && final == '~' {
		p.inPaste = true
		p.pasteBuf = p.pasteBuf[:0]
		return n, nil, true
	}
	if final == 'I' {
		ev := Event{Type: EventFocusGained}
		return n, &ev, true
	}
	if final == 'O' && len(params) == 0 {
		ev := Event{Type: EventFocusLost}
		return n, &ev, true
	}

	switch final {
	case '~':
		first := paramAt(params, 0, 0)
		mod := modifierFromParam(paramAt(params, 1, 0))
		k, ok := tildeKeys[first]
		if !ok {
			ev := Event{Type: EventKey, Key: KeyEscape}
			return 1, &ev, true
		}
		ev := Event{Type: EventKey, Key: k, Modifiers: mod}
		return n, &ev, true

	case 'u':
		cp := paramAt(params, 0, 0)
		mod := modifierFromParam(paramAt(params, 1, 0))
		kittyType := KittyPress
		if len(params) > 1 && params[1].hasSub {
			kittyType = KittyEventType(params[1].sub)
		}
		ev := Event{Type: EventKey, Modifiers: mod, KittyType: kittyType}
		if k, ok := kittyCodepointKeys[rune(cp)]; ok {
			ev.Key = k
		} else {
			ev.Key = KeyRune
			ev.Rune = rune(cp)
		}
		return n, &ev, true

	default:
		mod := modifierFromParam(paramAt(params, 1, 0))
		if k, ok := csiLetterKeys[final]; ok {
			ev := Event{Type: EventKey, Key: k, Modifiers: mod}
			return n, &ev, true
		}
		ev := Event{Type: EventKey, Key: KeyEscape}
		return 1, &ev, true
	}
}

// parseSGRMouse decodes "ESC [ < Pb ; Px ; Py M|m", given n already
// pointing past the '<'.
func (p *Input) parseSGRMouse(buf []byte, n int) (int, *Event, bool) {
	start := n
	for n < len(buf) {
		b := buf[n]
		if b == 'M' || b == 'm' {
			break
		}
		n++
	}
	if n >= len(buf) {
		return 0, nil, false
	}
	final := buf[n]
	body := buf[start:n]
	total := n + 1

	parts := splitSemicolon(body)
	if len(parts) != 3 {
		ev := Event{Type: EventKey, Key: KeyEscape}
		return 1, &ev, true
	}
	pb, _ := strconv.Atoi(parts[0])
	px, _ := strconv.Atoi(parts[1])
	py, _ := strconv.Atoi(parts[2])

	ev := Event{
		Type:   EventMouse,
		MouseX: px - 1,
		MouseY: py - 1,
	}

	motion := pb&0x20 != 0
	scroll := pb&0x40 != 0
	base := pb & 0x03

	switch {
	case scroll:
		if base == 0 {
			ev.MouseButton = MouseBtnWheelUp
		} else if base == 1 {
			ev.MouseButton = MouseBtnWheelDown
		}
		ev.MouseAction = MouseActionPress
	case motion:
		switch base {
		case 0:
			ev.MouseButton = MouseBtnLeft
		case 1:
			ev.MouseButton = MouseBtnMiddle
		case 2:
			ev.MouseButton = MouseBtnRight
		}
		if final == 'm' {
			ev.MouseAction = MouseActionRelease
		} else if base == 3 {
			ev.MouseAction = MouseActionMove
		} else {
			ev.MouseAction = MouseActionDrag
		}
	default:
		switch base {
		case 0:
			ev.MouseButton = MouseBtnLeft
		case 1:
			ev.MouseButton = MouseBtnMiddle
		case 2:
			ev.MouseButton = MouseBtnRight
		}
		if final == 'M' {
			ev.MouseAction = MouseActionPress
		} else {
			ev.MouseAction = MouseActionRelease
		}
	}

	if pb&0x04 != 0 {
		ev.Modifiers |= ModShift
	}
	if pb&0x08 != 0 {
		ev.Modifiers |= ModAlt
	}
	if pb&0x10 != 0 {
		ev.Modifiers |= ModCtrl
	}

	return total, &ev, true
}

// consumePaste accumulates bytes verbatim while in bracketed-paste mode,
// watching for the "ESC [ 201 ~" terminator without consuming a partial
// match prematurely.
func (p *Input) consumePaste(buf []byte) (int, *Event, bool) {
	const term = "\x1b[201~"
	for i := 0; i < len(buf); i++ {
		if buf[i] == 0x1b {
			remaining := len(buf) - i
			if remaining < len(term) {
				if matchesPrefix(buf[i:], term) {
					if i > 0 {
						p.pasteBuf = append(p.pasteBuf, buf[:i]...)
						return i, nil, true
					}
					return 0, nil, false
				}
			} else if string(buf[i:i+len(term)]) == term {
				p.pasteBuf = append(p.pasteBuf, buf[:i]...)
				p.inPaste = false
				text := string(p.pasteBuf)
				p.pasteBuf = nil
				ev := Event{Type: EventPaste, Text: text}
				return i + len(term), &ev, true
			}
		}
	}
	p.pasteBuf = append(p.pasteBuf, buf...)
	return len(buf), nil, true
}

func matchesPrefix(data []byte, full string) bool {
	for i, b := range data {
		if i >= len(full) || b != full[i] {
			return false
		}
	}
	return true
}

// parseCSIParams parses semicolon-separated parameters with optional
// colon sub-parameters, using saturating arithmetic (values beyond a
// reasonable CSI range clamp rather than overflow).
func parseCSIParams(raw []byte) []csiParam {
	if len(raw) == 0 {
		return nil
	}
	var params []csiParam
	start := 0
	for i := 0; i <= len(raw); i++ {
		if i == len(raw) || raw[i] == ';' {
			params = append(params, parseOneCSIParam(raw[start:i]))
			start = i + 1
		}
	}
	return params
}

func parseOneCSIParam(field []byte) csiParam {
	if len(field) == 0 {
		return csiParam{}
	}
	colon := -1
	for i, b := range field {
		if b == ':' {
			colon = i
			break
		}
	}
	if colon < 0 {
		return csiParam{value: saturatingAtoi(field)}
	}
	return csiParam{
		value:  saturatingAtoi(field[:colon]),
		sub:    saturatingAtoi(field[colon+1:]),
		hasSub: true,
	}
}

func saturatingAtoi(b []byte) int {
	const max = 65535
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		if n > max {
			return max
		}
	}
	return n
}

func paramAt(params []csiParam, idx, def int) int {
	if idx >= len(params) {
		return def
	}
	return params[idx].value
}

// modifierFromParam decodes a CSI modifier parameter: wire value is
// 1+bitmask, with 0 or 1 meaning no modifiers.
func modifierFromParam(raw int) Modifier {
	if raw <= 1 {
		return ModNone
	}
	return Modifier(raw - 1)
}

func splitSemicolon(b []byte) []string {
	var parts []string
	start := 0
	for i := 0; i <= len(b); i++ {
		if i == len(b) || b[i] == ';' {
			parts = append(parts, string(b[start:i]))
			start = i + 1
		}
	}
	return parts
}
