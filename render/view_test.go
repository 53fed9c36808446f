package render

import (
	"testing"

	"github.com/lixenwraith/vied/core"
)

func TestViewGutterWidthScalesWithLineCount(t *testing.T) {
	v := NewView()
	buf := core.FromText("a\nb\nc\n")
	if w := v.GutterWidth(buf); w != 2 {
		t.Fatalf("GutterWidth = %d, want 2 (1 digit + 1 padding) for a 4-line buffer", w)
	}
}

func TestViewGutterWidthZeroWhenDisabled(t *testing.T) {
	v := NewView()
	v.ShowNumber = false
	buf := core.FromText("a\nb\n")
	if w := v.GutterWidth(buf); w != 0 {
		t.Fatalf("GutterWidth = %d, want 0 when numbers disabled", w)
	}
}

func TestViewDisplayColExpandsTabs(t *testing.T) {
	v := NewView()
	v.TabWidth = 4
	buf := core.FromText("a\tb")
	if col := v.DisplayCol(buf, 0, 2); col != 4 {
		t.Fatalf("DisplayCol after tab = %d, want 4", col)
	}
}

func TestViewEnsureCursorVisibleScrollsDown(t *testing.T) {
	v := NewView()
	v.ScrollOff = 2
	lines := ""
	for i := 0; i < 50; i++ {
		lines += "line\n"
	}
	buf := core.FromText(lines)
	v.EnsureCursorVisible(buf, core.Position{Line: 30, Col: 0}, 80, 10)
	if v.TopLine != 30-10+1+2 {
		t.Fatalf("TopLine = %d, want %d", v.TopLine, 30-10+1+2)
	}
}

func TestViewEnsureCursorVisibleScrollsRight(t *testing.T) {
	v := NewView()
	buf := core.FromText("0123456789abcdefghijklmnopqrstuvwxyz\n")
	v.EnsureCursorVisible(buf, core.Position{Line: 0, Col: 30}, 10, 24)
	if v.LeftCol != 21 {
		t.Fatalf("LeftCol = %d, want 21", v.LeftCol)
	}
}

func TestSelectionContainsCharKind(t *testing.T) {
	sel := Selection{Kind: VisualChar, Anchor: core.Position{Line: 0, Col: 2}, Cursor: core.Position{Line: 0, Col: 5}}
	if !sel.contains(core.Position{Line: 0, Col: 3}) {
		t.Fatalf("expected col 3 inside char selection [2,5]")
	}
	if sel.contains(core.Position{Line: 0, Col: 6}) {
		t.Fatalf("col 6 should be outside char selection [2,5]")
	}
}

func TestSelectionContainsBlockKind(t *testing.T) {
	sel := Selection{Kind: VisualBlock, Anchor: core.Position{Line: 0, Col: 4}, Cursor: core.Position{Line: 2, Col: 1}}
	if !sel.contains(core.Position{Line: 1, Col: 2}) {
		t.Fatalf("expected (1,2) inside block selection cols [1,4] lines [0,2]")
	}
	if sel.contains(core.Position{Line: 1, Col: 5}) {
		t.Fatalf("col 5 should be outside block selection cols [1,4]")
	}
}
