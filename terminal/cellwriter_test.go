package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lixenwraith/vied/render"
)

func TestCellWriterMovesCursorOnlyWhenNotContiguous(t *testing.T) {
	var dest bytes.Buffer
	ob := NewOutputBuffer(&dest)
	cw := NewCellWriter()

	cw.RenderCell(ob, 5, 2, render.Cell{Codepoint: 'a'})
	cw.RenderCell(ob, 6, 2, render.Cell{Codepoint: 'b'})
	ob.Flush()

	out := dest.String()
	if strings.Count(out, "H") != 1 {
		t.Fatalf("expected exactly one cursor-position sequence for contiguous cells, got output %q", out)
	}
}

func TestCellWriterReemitsStyleOnChange(t *testing.T) {
	var dest bytes.Buffer
	ob := NewOutputBuffer(&dest)
	cw := NewCellWriter()

	cw.RenderCell(ob, 0, 0, render.Cell{Codepoint: 'a', Fg: render.RGB(255, 0, 0)})
	cw.RenderCell(ob, 1, 0, render.Cell{Codepoint: 'b', Fg: render.RGB(0, 255, 0)})
	ob.Flush()

	out := dest.String()
	if !strings.Contains(out, "255;0;0") || !strings.Contains(out, "0;255;0") {
		t.Fatalf("expected both distinct fg colors emitted, got %q", out)
	}
}

func TestCellWriterSkipsCodepointForContinuationCell(t *testing.T) {
	var dest bytes.Buffer
	ob := NewOutputBuffer(&dest)
	cw := NewCellWriter()

	cw.RenderCell(ob, 0, 0, render.Cell{Codepoint: '中'})
	cw.RenderCell(ob, 1, 0, render.Cell{Codepoint: 0})
	ob.Flush()

	if strings.Count(dest.String(), "中") != 1 {
		t.Fatalf("continuation cell should not write its own codepoint, got %q", dest.String())
	}
}
