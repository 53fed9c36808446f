package render

// Rect is an axis-aligned screen area in cell coordinates.
type Rect struct {
	X, Y, W, H int
}

// WindowID identifies a leaf pane in a SplitTree.
type WindowID int

// SplitKind distinguishes how a node's children are arranged.
type SplitKind uint8

const (
	// SplitLeaf holds a single window, no children.
	SplitLeaf SplitKind = iota
	// SplitHorizontal stacks children top-to-bottom (":split").
	SplitHorizontal
	// SplitVertical arranges children left-to-right (":vsplit").
	SplitVertical
)

// splitNode is one node of the recursive Leaf|Horizontal|Vertical tree.
// Grounded on terminal/tui/layout.go's SplitH/SplitV ratio-based regions,
// regrounded from a flat one-shot ratio split into a persistent, mutable
// tree so windows can be added and removed independently.
type splitNode struct {
	kind     SplitKind
	window   WindowID
	children []*splitNode
	ratios   []float64
	parent   *splitNode
}

// SplitTree is the window layout: a single root node whose leaves are
// panes, grounded on spec.md's window split tree.
type SplitTree struct {
	root *splitNode
	next WindowID
}

// NewSplitTree creates a tree with a single window filling the whole area.
func NewSplitTree() *SplitTree {
	t := &SplitTree{next: 1}
	t.root = &splitNode{kind: SplitLeaf, window: 0}
	t.next = 1
	return t
}

func (t *SplitTree) findLeaf(id WindowID) *splitNode {
	return findLeafIn(t.root, id)
}

func findLeafIn(n *splitNode, id WindowID) *splitNode {
	if n == nil {
		return nil
	}
	if n.kind == SplitLeaf {
		if n.window == id {
			return n
		}
		return nil
	}
	for _, c := range n.children {
		if found := findLeafIn(c, id); found != nil {
			return found
		}
	}
	return nil
}

// Leaves returns every window id in left-to-right, depth-first order.
func (t *SplitTree) Leaves() []WindowID {
	var ids []WindowID
	collectLeaves(t.root, &ids)
	return ids
}

func collectLeaves(n *splitNode, out *[]WindowID) {
	if n == nil {
		return
	}
	if n.kind == SplitLeaf {
		*out = append(*out, n.window)
		return
	}
	for _, c := range n.children {
		collectLeaves(c, out)
	}
}

// splitLeaf replaces a leaf with a Horizontal/Vertical node holding the
// original window plus a freshly allocated one, splitting the area evenly.
func (t *SplitTree) splitLeaf(id WindowID, kind SplitKind) WindowID {
	leaf := t.findLeaf(id)
	if leaf == nil {
		return -1
	}
	newID := t.next
	t.next++

	original := &splitNode{kind: SplitLeaf, window: leaf.window, parent: leaf}
	fresh := &splitNode{kind: SplitLeaf, window: newID, parent: leaf}
	leaf.kind = kind
	leaf.children = []*splitNode{original, fresh}
	leaf.ratios = []float64{0.5, 0.5}
	leaf.window = 0
	return newID
}

// SplitHorizontal splits id's pane into a top pane (id) and bottom pane
// (the returned id), each taking half the area.
func (t *SplitTree) SplitHorizontal(id WindowID) WindowID {
	return t.splitLeaf(id, SplitHorizontal)
}

// SplitVertical splits id's pane into a left pane (id) and right pane
// (the returned id).
func (t *SplitTree) SplitVertical(id WindowID) WindowID {
	return t.splitLeaf(id, SplitVertical)
}

// Remove deletes id's pane. If it was the last window, the tree keeps a
// single empty leaf (window 0). Otherwise its parent collapses into its
// sibling, which takes over the parent's position in the grandparent.
func (t *SplitTree) Remove(id WindowID) {
	leaf := t.findLeaf(id)
	if leaf == nil {
		return
	}
	parent := leaf.parent
	if parent == nil {
		t.root = &splitNode{kind: SplitLeaf, window: 0}
		return
	}

	var sibling *splitNode
	for _, c := range parent.children {
		if c != leaf {
			sibling = c
			break
		}
	}
	if sibling == nil {
		return
	}

	grandparent := parent.parent
	sibling.parent = grandparent
	if grandparent == nil {
		t.root = sibling
		return
	}
	for i, c := range grandparent.children {
		if c == parent {
			grandparent.children[i] = sibling
			break
		}
	}
}

// KeepOnly collapses the tree to a single leaf holding id, discarding
// every other window.
func (t *SplitTree) KeepOnly(id WindowID) {
	t.root = &splitNode{kind: SplitLeaf, window: id}
}

// CycleNext returns the window id following id in depth-first order,
// wrapping around to the first.
func (t *SplitTree) CycleNext(id WindowID) WindowID {
	leaves := t.Leaves()
	for i, l := range leaves {
		if l == id {
			return leaves[(i+1)%len(leaves)]
		}
	}
	return id
}

// CyclePrev returns the window id preceding id in depth-first order,
// wrapping around to the last.
func (t *SplitTree) CyclePrev(id WindowID) WindowID {
	leaves := t.Leaves()
	for i, l := range leaves {
		if l == id {
			return leaves[(i-1+len(leaves))%len(leaves)]
		}
	}
	return id
}

// Direction is a screen-space navigation direction for Neighbor.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Layout computes the screen Rect of every window within area.
// Grounded on SplitH/SplitV's ratio-to-pixel rounding: every child but the
// last gets round(ratio*extent), the last absorbs the remainder so the
// split always tiles area exactly with no rounding gaps.
func (t *SplitTree) Layout(area Rect) map[WindowID]Rect {
	out := make(map[WindowID]Rect)
	layoutNode(t.root, area, out)
	return out
}

func layoutNode(n *splitNode, area Rect, out map[WindowID]Rect) {
	if n == nil {
		return
	}
	if n.kind == SplitLeaf {
		out[n.window] = area
		return
	}
	extent := area.W
	if n.kind == SplitHorizontal {
		extent = area.H
	}
	offset := 0
	remaining := extent
	for i, child := range n.children {
		var size int
		if i == len(n.children)-1 {
			size = remaining
		} else {
			size = int(float64(extent)*n.ratios[i] + 0.5)
			if size > remaining {
				size = remaining
			}
		}
		var childArea Rect
		if n.kind == SplitHorizontal {
			childArea = Rect{X: area.X, Y: area.Y + offset, W: area.W, H: size}
		} else {
			childArea = Rect{X: area.X + offset, Y: area.Y, W: size, H: area.H}
		}
		layoutNode(child, childArea, out)
		offset += size
		remaining -= size
	}
}

// Separator is a single-cell-wide/tall divider line between two panes.
type Separator struct {
	X, Y, W, H int
}

// Separators returns the divider lines for area's layout, one per internal
// split edge (not counting the screen's own border).
func (t *SplitTree) Separators(area Rect) []Separator {
	var seps []Separator
	separatorsNode(t.root, area, &seps)
	return seps
}

func separatorsNode(n *splitNode, area Rect, out *[]Separator) {
	if n == nil || n.kind == SplitLeaf {
		return
	}
	layout := make(map[WindowID]Rect)
	layoutNode(n, area, layout)

	extent := area.W
	if n.kind == SplitHorizontal {
		extent = area.H
	}
	offset := 0
	remaining := extent
	for i, child := range n.children {
		var size int
		if i == len(n.children)-1 {
			size = remaining
		} else {
			size = int(float64(extent)*n.ratios[i] + 0.5)
			if size > remaining {
				size = remaining
			}
		}
		var childArea Rect
		if n.kind == SplitHorizontal {
			childArea = Rect{X: area.X, Y: area.Y + offset, W: area.W, H: size}
		} else {
			childArea = Rect{X: area.X + offset, Y: area.Y, W: size, H: area.H}
		}
		if i > 0 {
			if n.kind == SplitHorizontal {
				*out = append(*out, Separator{X: area.X, Y: childArea.Y - 1, W: area.W, H: 1})
			} else {
				*out = append(*out, Separator{X: childArea.X - 1, Y: area.Y, W: 1, H: area.H})
			}
		}
		separatorsNode(child, childArea, out)
		offset += size
		remaining -= size
	}
}

// Neighbor finds the window adjacent to id in direction dir, chosen as the
// leaf whose area's edge is closest to and abuts id's own area. Returns
// (0, false) if no pane lies in that direction.
func (t *SplitTree) Neighbor(area Rect, id WindowID, dir Direction) (WindowID, bool) {
	layout := t.Layout(area)
	src, ok := layout[id]
	if !ok {
		return 0, false
	}
	var best WindowID
	bestDist := -1
	found := false
	for win, rect := range layout {
		if win == id {
			continue
		}
		if !adjacentInDirection(src, rect, dir) {
			continue
		}
		dist := directionalDistance(src, rect, dir)
		if !found || dist < bestDist {
			bestDist = dist
			best = win
			found = true
		}
	}
	return best, found
}

func adjacentInDirection(src, cand Rect, dir Direction) bool {
	switch dir {
	case DirLeft:
		return cand.X+cand.W <= src.X && verticalOverlap(src, cand)
	case DirRight:
		return cand.X >= src.X+src.W && verticalOverlap(src, cand)
	case DirUp:
		return cand.Y+cand.H <= src.Y && horizontalOverlap(src, cand)
	case DirDown:
		return cand.Y >= src.Y+src.H && horizontalOverlap(src, cand)
	}
	return false
}

func verticalOverlap(a, b Rect) bool {
	return a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func horizontalOverlap(a, b Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W
}

func directionalDistance(src, cand Rect, dir Direction) int {
	switch dir {
	case DirLeft:
		return src.X - (cand.X + cand.W)
	case DirRight:
		return cand.X - (src.X + src.W)
	case DirUp:
		return src.Y - (cand.Y + cand.H)
	case DirDown:
		return cand.Y - (src.Y + src.H)
	}
	return 0
}
