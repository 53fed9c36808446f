package terminal

import "testing"

func TestInputPrintableRune(t *testing.T) {
	p := NewInput()
	events := p.Advance([]byte("a"))
	if len(events) != 1 || events[0].Key != KeyRune || events[0].Rune != 'a' {
		t.Fatalf("events = %+v, want single rune 'a'", events)
	}
}

func TestInputArrowKey(t *testing.T) {
	p := NewInput()
	events := p.Advance([]byte("\x1b[A"))
	if len(events) != 1 || events[0].Key != KeyUp {
		t.Fatalf("events = %+v, want KeyUp", events)
	}
}

func TestInputArrowKeyWithShiftModifier(t *testing.T) {
	p := NewInput()
	events := p.Advance([]byte("\x1b[1;2A"))
	if len(events) != 1 || events[0].Key != KeyUp || events[0].Modifiers != ModShift {
		t.Fatalf("events = %+v, want KeyUp+Shift", events)
	}
}

func TestInputIncompleteEscapeWaitsForMoreBytes(t *testing.T) {
	p := NewInput()
	events := p.Advance([]byte{0x1b})
	if len(events) != 0 {
		t.Fatalf("events = %+v, want none for a lone pending ESC", events)
	}
	if !p.HasPending() {
		t.Fatalf("expected pending bytes after a lone ESC")
	}
}

func TestInputFlushResolvesLoneEscape(t *testing.T) {
	p := NewInput()
	p.Advance([]byte{0x1b})
	events := p.Flush()
	if len(events) != 1 || events[0].Key != KeyEscape {
		t.Fatalf("events = %+v, want standalone Escape", events)
	}
	if p.HasPending() {
		t.Fatalf("expected no pending bytes after Flush")
	}
}

func TestInputTildeSequenceDecodesFunctionKey(t *testing.T) {
	p := NewInput()
	events := p.Advance([]byte("\x1b[5~"))
	if len(events) != 1 || events[0].Key != KeyPageUp {
		t.Fatalf("events = %+v, want KeyPageUp", events)
	}
}

func TestInputSGRMousePressDecodesButtonAndCoords(t *testing.T) {
	p := NewInput()
	events := p.Advance([]byte("\x1b[<0;10;20M"))
	if len(events) != 1 {
		t.Fatalf("events = %+v, want one mouse event", events)
	}
	ev := events[0]
	if ev.Type != EventMouse || ev.MouseButton != MouseBtnLeft || ev.MouseAction != MouseActionPress {
		t.Fatalf("ev = %+v, want left press", ev)
	}
	if ev.MouseX != 9 || ev.MouseY != 19 {
		t.Fatalf("ev coords = (%d,%d), want (9,19) (0-indexed)", ev.MouseX, ev.MouseY)
	}
}

func TestInputBracketedPasteAccumulatesUntilTerminator(t *testing.T) {
	p := NewInput()
	events := p.Advance([]byte("\x1b[200~hello"))
	if len(events) != 0 {
		t.Fatalf("events = %+v, want none before paste terminator", events)
	}
	events = p.Advance([]byte(" world\x1b[201~"))
	if len(events) != 1 || events[0].Type != EventPaste || events[0].Text != "hello world" {
		t.Fatalf("events = %+v, want Paste(\"hello world\")", events)
	}
}

func TestInputKittyKeyboardCodepointAndModifier(t *testing.T) {
	p := NewInput()
	events := p.Advance([]byte("\x1b[97;5u"))
	if len(events) != 1 || events[0].Key != KeyRune || events[0].Rune != 'a' || events[0].Modifiers != ModCtrl {
		t.Fatalf("events = %+v, want Ctrl+'a'", events)
	}
}

func TestInputSS3ArrowKey(t *testing.T) {
	p := NewInput()
	events := p.Advance([]byte("\x1bOA"))
	if len(events) != 1 || events[0].Key != KeyUp {
		t.Fatalf("events = %+v, want KeyUp via SS3", events)
	}
}

func TestInputCtrlLetter(t *testing.T) {
	p := NewInput()
	events := p.Advance([]byte{0x01})
	if len(events) != 1 || events[0].Key != KeyCtrlA || events[0].Modifiers != ModCtrl {
		t.Fatalf("events = %+v, want Ctrl+A", events)
	}
}

func TestInputAltPrintableChar(t *testing.T) {
	p := NewInput()
	events := p.Advance([]byte("\x1bx"))
	if len(events) != 1 || events[0].Key != KeyRune || events[0].Rune != 'x' || events[0].Modifiers != ModAlt {
		t.Fatalf("events = %+v, want Alt+'x'", events)
	}
}

func TestInputMultiByteUTF8Rune(t *testing.T) {
	p := NewInput()
	events := p.Advance([]byte("中"))
	if len(events) != 1 || events[0].Key != KeyRune || events[0].Rune != '中' {
		t.Fatalf("events = %+v, want rune '中'", events)
	}
}

func TestInputFocusEvents(t *testing.T) {
	p := NewInput()
	events := p.Advance([]byte("\x1b[I\x1b[O"))
	if len(events) != 2 || events[0].Type != EventFocusGained || events[1].Type != EventFocusLost {
		t.Fatalf("events = %+v, want FocusGained then FocusLost", events)
	}
}
