package render

import "testing"

func TestFrameBufferClearFillsBackground(t *testing.T) {
	fb := NewFrameBuffer(3, 2, RGB(10, 20, 30))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			c := fb.Get(x, y)
			if c.Codepoint != ' ' || c.Bg != RGB(10, 20, 30) {
				t.Fatalf("cell (%d,%d) = %+v, want blank with bg set", x, y, c)
			}
		}
	}
}

func TestFrameBufferSetAndGet(t *testing.T) {
	fb := NewFrameBuffer(4, 4, Default)
	cell := Cell{Codepoint: 'x', Fg: RGB(255, 0, 0)}
	fb.Set(1, 1, cell)
	if got := fb.Get(1, 1); got != cell {
		t.Fatalf("Get(1,1) = %+v, want %+v", got, cell)
	}
	if got := fb.Get(-1, 0); got != EmptyCell {
		t.Fatalf("out-of-bounds Get = %+v, want EmptyCell", got)
	}
}

func TestFrameBufferPaintCellOutOfClipIsNoop(t *testing.T) {
	fb := NewFrameBuffer(4, 4, Default)
	clip := ClipRect{X: 0, Y: 0, Width: 2, Height: 2}
	fb.PaintCell(3, 3, clip, 'z', Opaque(0.5, 0, 0), Opaque(0, 0, 0), 0, UnderlineNone)
	if got := fb.Get(3, 3); got != EmptyCell {
		t.Fatalf("PaintCell outside clip wrote %+v, want untouched EmptyCell", got)
	}
}

func TestFrameBufferPaintCellCompositesBackground(t *testing.T) {
	fb := NewFrameBuffer(2, 1, Default)
	full := ClipRect{X: 0, Y: 0, Width: 2, Height: 1}
	fb.PaintCell(0, 0, full, 'a', Opaque(0.5, 0, 0), Opaque(0.2, 0, 0), 0, UnderlineNone)
	cell := fb.Get(0, 0)
	if cell.Codepoint != 'a' {
		t.Fatalf("codepoint = %q, want 'a'", cell.Codepoint)
	}
	if cell.Bg.Kind != CellColorRGB {
		t.Fatalf("bg kind = %v, want CellColorRGB after opaque paint", cell.Bg.Kind)
	}
}

func TestFrameBufferFillRect(t *testing.T) {
	fb := NewFrameBuffer(5, 5, Default)
	full := ClipRect{X: 0, Y: 0, Width: 5, Height: 5}
	fb.FillRect(1, 1, 2, 2, Opaque(0.3, 0, 0), full)
	for y := 1; y < 3; y++ {
		for x := 1; x < 3; x++ {
			if fb.Get(x, y).Codepoint != ' ' {
				t.Fatalf("cell (%d,%d) not filled", x, y)
			}
		}
	}
	if fb.Get(0, 0) != EmptyCell {
		t.Fatalf("cell outside rect was modified")
	}
}

func TestFrameBufferPaintTextWideCharContinuation(t *testing.T) {
	fb := NewFrameBuffer(5, 1, Default)
	full := ClipRect{X: 0, Y: 0, Width: 5, Height: 1}
	fb.PaintText(0, 0, "中 a", full, Opaque(1, 0, 0), Opaque(0, 0, 0), 0, UnderlineNone)
	if fb.Get(0, 0).Codepoint != '中' {
		t.Fatalf("col 0 = %q, want wide char", fb.Get(0, 0).Codepoint)
	}
	if !fb.Get(1, 0).IsContinuation() {
		t.Fatalf("col 1 should be a continuation cell after a wide char")
	}
	if fb.Get(2, 0).Codepoint != ' ' {
		t.Fatalf("col 2 = %q, want space", fb.Get(2, 0).Codepoint)
	}
	if fb.Get(3, 0).Codepoint != 'a' {
		t.Fatalf("col 3 = %q, want 'a'", fb.Get(3, 0).Codepoint)
	}
}

func TestFrameBufferWideCharCleanupClearsOrphanedHalf(t *testing.T) {
	fb := NewFrameBuffer(3, 1, Default)
	full := ClipRect{X: 0, Y: 0, Width: 3, Height: 1}
	fb.PaintText(0, 0, "中", full, Opaque(1, 0, 0), Opaque(0, 0, 0), 0, UnderlineNone)
	fb.PaintCell(0, 0, full, 'a', Opaque(1, 0, 0), Opaque(0, 0, 0), 0, UnderlineNone)
	if fb.Get(1, 0).IsContinuation() {
		t.Fatalf("stale continuation cell at col 1 after overwriting its wide char")
	}
}
