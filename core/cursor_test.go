package core

import "testing"

func TestCursorMoveLeftRightSaturate(t *testing.T) {
	buf := FromText("hello")
	c := &Cursor{Pos: Position{0, 2}}

	c.MoveLeft(10, buf, false)
	if c.Pos.Col != 0 {
		t.Errorf("MoveLeft saturate: col = %d, want 0", c.Pos.Col)
	}

	c.MoveRight(10, buf, false)
	if c.Pos.Col != 4 { // "hello" max col without past-end is 4
		t.Errorf("MoveRight saturate: col = %d, want 4", c.Pos.Col)
	}

	c.MoveRight(10, buf, true)
	if c.Pos.Col != 5 { // past-end allows col == len
		t.Errorf("MoveRight saturate past-end: col = %d, want 5", c.Pos.Col)
	}
}

func TestCursorStickyColumn(t *testing.T) {
	buf := FromText("longer line\nhi\nlonger line")
	c := &Cursor{Pos: Position{0, 8}, StickyCol: 8}

	c.MoveDown(1, buf, false)
	if c.Pos.Col != 1 { // "hi" max col is 1, sticky clamped
		t.Errorf("after MoveDown onto short line, col = %d, want 1", c.Pos.Col)
	}
	if c.StickyCol != 8 {
		t.Errorf("StickyCol should be preserved across vertical motion, got %d", c.StickyCol)
	}

	c.MoveDown(1, buf, false)
	if c.Pos.Col != 8 {
		t.Errorf("returning to a long line should restore sticky col, got %d", c.Pos.Col)
	}
}

func TestCursorMoveToFirstNonBlank(t *testing.T) {
	buf := FromText("   indented")
	c := &Cursor{Pos: Position{0, 0}}
	c.MoveToFirstNonBlank(buf, false)
	if c.Pos.Col != 3 {
		t.Errorf("MoveToFirstNonBlank col = %d, want 3", c.Pos.Col)
	}
}

func TestCursorFindCharForward(t *testing.T) {
	buf := FromText("abcXdefXghi")
	c := &Cursor{Pos: Position{0, 0}}

	if !c.FindChar(buf, 'X', true, false) {
		t.Fatal("expected f to find 'X'")
	}
	if c.Pos.Col != 3 {
		t.Errorf("f landing col = %d, want 3", c.Pos.Col)
	}

	if !c.RepeatFindChar(buf, false) {
		t.Fatal("expected ';' to repeat forward find")
	}
	if c.Pos.Col != 7 {
		t.Errorf("';' landing col = %d, want 7", c.Pos.Col)
	}
}

func TestCursorTillCharForward(t *testing.T) {
	buf := FromText("abcXdef")
	c := &Cursor{Pos: Position{0, 0}}
	if !c.FindChar(buf, 'X', true, true) {
		t.Fatal("expected t to find 'X'")
	}
	if c.Pos.Col != 2 {
		t.Errorf("t landing col = %d, want 2 (one before the match)", c.Pos.Col)
	}
}

func TestCursorTillCharBackwardAdjacentQuirk(t *testing.T) {
	// "T" immediately after the target character must fail: the source's
	// strict less-than comparison excludes an adjacent match.
	buf := FromText("aXbc")
	c := &Cursor{Pos: Position{0, 1}} // cursor sits right after 'X' would be col>=2; use col=2 ('b')
	c.Pos = Position{0, 2}
	if c.FindChar(buf, 'X', false, true) {
		t.Error("expected T to fail when the target is immediately adjacent")
	}
}

func TestCursorParagraphMotion(t *testing.T) {
	buf := FromText("a\nb\n\nc\nd\n\ne")
	c := &Cursor{Pos: Position{0, 0}}

	c.ParagraphForward(buf, 1)
	if c.Pos.Line != 2 {
		t.Errorf("paragraph forward landed on line %d, want 2", c.Pos.Line)
	}

	c.Pos = Position{3, 0}
	c.ParagraphBackward(buf, 1)
	if c.Pos.Line != 2 {
		t.Errorf("paragraph backward landed on line %d, want 2", c.Pos.Line)
	}
}
