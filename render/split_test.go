package render

import "testing"

func TestSplitTreeSingleWindowFillsArea(t *testing.T) {
	tree := NewSplitTree()
	layout := tree.Layout(Rect{X: 0, Y: 0, W: 80, H: 24})
	if len(layout) != 1 {
		t.Fatalf("got %d windows, want 1", len(layout))
	}
	if r := layout[0]; r != (Rect{X: 0, Y: 0, W: 80, H: 24}) {
		t.Fatalf("root window area = %+v, want full screen", r)
	}
}

func TestSplitVerticalEvenHalves(t *testing.T) {
	tree := NewSplitTree()
	second := tree.SplitVertical(0)
	layout := tree.Layout(Rect{X: 0, Y: 0, W: 80, H: 24})
	left, right := layout[0], layout[second]
	if left.W+right.W != 80 {
		t.Fatalf("widths %d+%d != 80", left.W, right.W)
	}
	if left.X != 0 || right.X != left.W {
		t.Fatalf("panes not adjacent: left=%+v right=%+v", left, right)
	}
	if left.H != 24 || right.H != 24 {
		t.Fatalf("vertical split changed height: left=%+v right=%+v", left, right)
	}
}

func TestSplitHorizontalEvenHalves(t *testing.T) {
	tree := NewSplitTree()
	second := tree.SplitHorizontal(0)
	layout := tree.Layout(Rect{X: 0, Y: 0, W: 80, H: 24})
	top, bottom := layout[0], layout[second]
	if top.H+bottom.H != 24 {
		t.Fatalf("heights %d+%d != 24", top.H, bottom.H)
	}
	if top.Y != 0 || bottom.Y != top.H {
		t.Fatalf("panes not adjacent: top=%+v bottom=%+v", top, bottom)
	}
}

func TestSplitTreeRemoveCollapsesToSibling(t *testing.T) {
	tree := NewSplitTree()
	second := tree.SplitVertical(0)
	tree.Remove(second)
	layout := tree.Layout(Rect{X: 0, Y: 0, W: 80, H: 24})
	if len(layout) != 1 {
		t.Fatalf("got %d windows after remove, want 1", len(layout))
	}
	if r := layout[0]; r != (Rect{X: 0, Y: 0, W: 80, H: 24}) {
		t.Fatalf("surviving window area = %+v, want full screen restored", r)
	}
}

func TestSplitTreeKeepOnly(t *testing.T) {
	tree := NewSplitTree()
	second := tree.SplitVertical(0)
	third := tree.SplitHorizontal(second)
	tree.KeepOnly(third)
	leaves := tree.Leaves()
	if len(leaves) != 1 || leaves[0] != third {
		t.Fatalf("leaves = %v, want only [%d]", leaves, third)
	}
}

func TestSplitTreeCycleNextPrevWraps(t *testing.T) {
	tree := NewSplitTree()
	second := tree.SplitVertical(0)
	third := tree.SplitHorizontal(second)
	leaves := tree.Leaves()
	if len(leaves) != 3 {
		t.Fatalf("leaves = %v, want 3", leaves)
	}
	if got := tree.CycleNext(leaves[len(leaves)-1]); got != leaves[0] {
		t.Fatalf("CycleNext from last = %d, want wrap to %d", got, leaves[0])
	}
	if got := tree.CyclePrev(leaves[0]); got != leaves[len(leaves)-1] {
		t.Fatalf("CyclePrev from first = %d, want wrap to %d", got, leaves[len(leaves)-1])
	}
	_ = third
}

func TestSplitTreeNeighborDirectional(t *testing.T) {
	tree := NewSplitTree()
	right := tree.SplitVertical(0)
	area := Rect{X: 0, Y: 0, W: 80, H: 24}
	got, ok := tree.Neighbor(area, 0, DirRight)
	if !ok || got != right {
		t.Fatalf("Neighbor(0, right) = (%d,%v), want (%d,true)", got, ok, right)
	}
	got, ok = tree.Neighbor(area, right, DirLeft)
	if !ok || got != 0 {
		t.Fatalf("Neighbor(right, left) = (%d,%v), want (0,true)", got, ok)
	}
	if _, ok := tree.Neighbor(area, 0, DirUp); ok {
		t.Fatalf("Neighbor(0, up) should not exist in a left/right split")
	}
}

func TestSplitTreeSeparatorsCountMatchesSplits(t *testing.T) {
	tree := NewSplitTree()
	tree.SplitVertical(0)
	seps := tree.Separators(Rect{X: 0, Y: 0, W: 80, H: 24})
	if len(seps) != 1 {
		t.Fatalf("got %d separators, want 1 for a single vertical split", len(seps))
	}
}
