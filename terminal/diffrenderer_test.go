package terminal

import (
	"bytes"
	"testing"

	"github.com/lixenwraith/vied/render"
)

func TestDiffRendererFirstFrameIsFullRedraw(t *testing.T) {
	var dest bytes.Buffer
	ob := NewOutputBuffer(&dest)
	d := NewDiffRenderer(ob)

	fb := render.NewFrameBuffer(4, 2, render.Default)
	stats := d.Render(fb)
	if !stats.FullRedraw {
		t.Fatalf("first render should be a full redraw")
	}
	if stats.CellsWritten != 8 {
		t.Fatalf("CellsWritten = %d, want 8 for an untouched 4x2 frame", stats.CellsWritten)
	}
}

func TestDiffRendererSkipsUnchangedRows(t *testing.T) {
	var dest bytes.Buffer
	ob := NewOutputBuffer(&dest)
	d := NewDiffRenderer(ob)

	fb := render.NewFrameBuffer(4, 3, render.Default)
	d.Render(fb)

	fb.Set(1, 1, render.Cell{Codepoint: 'x'})
	stats := d.Render(fb)
	if stats.FullRedraw {
		t.Fatalf("second render should not be a full redraw")
	}
	if stats.RowsSkipped != 2 {
		t.Fatalf("RowsSkipped = %d, want 2 (rows 0 and 2 untouched)", stats.RowsSkipped)
	}
	if stats.CellsWritten != 1 {
		t.Fatalf("CellsWritten = %d, want 1", stats.CellsWritten)
	}
}

func TestDiffRendererForceRedrawRepaintsEverything(t *testing.T) {
	var dest bytes.Buffer
	ob := NewOutputBuffer(&dest)
	d := NewDiffRenderer(ob)

	fb := render.NewFrameBuffer(3, 3, render.Default)
	d.Render(fb)
	d.ForceRedraw()
	stats := d.Render(fb)
	if !stats.FullRedraw {
		t.Fatalf("expected full redraw after ForceRedraw")
	}
	if stats.CellsWritten != 9 {
		t.Fatalf("CellsWritten = %d, want 9", stats.CellsWritten)
	}
}
