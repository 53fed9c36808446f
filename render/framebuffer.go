package render

import "github.com/mattn/go-runewidth"

// FrameBuffer is a row-major grid of Cells. Grounded on render.RenderBuffer
// (render/buffer.go): the same reallocate-only-if-undersized Resize and
// doubling-copy Clear, generalized from the game's per-pixel blend-mode
// compositor to the spec's Color-over-CellColor Porter-Duff paint path.
type FrameBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewFrameBuffer creates a width x height buffer filled with bg.
func NewFrameBuffer(width, height int, bg CellColor) *FrameBuffer {
	fb := &FrameBuffer{}
	fb.Resize(width, height, bg)
	return fb
}

// Resize adjusts buffer dimensions, reusing the backing array when it
// already has enough capacity, and clears to bg.
func (fb *FrameBuffer) Resize(width, height int, bg CellColor) {
	size := width * height
	if cap(fb.cells) < size {
		fb.cells = make([]Cell, size)
	} else {
		fb.cells = fb.cells[:size]
	}
	fb.width = width
	fb.height = height
	fb.Clear(bg)
}

// Clear resets every cell to a blank space with bg, via exponential copy.
func (fb *FrameBuffer) Clear(bg CellColor) {
	if len(fb.cells) == 0 {
		return
	}
	fb.cells[0] = Cell{Codepoint: ' ', Bg: bg}
	for filled := 1; filled < len(fb.cells); filled *= 2 {
		copy(fb.cells[filled:], fb.cells[:filled])
	}
}

// Bounds returns the buffer's dimensions.
func (fb *FrameBuffer) Bounds() (width, height int) {
	return fb.width, fb.height
}

// Row returns the backing slice for row y, with no bounds check — an
// internal fast path for DiffRenderer's row-wise equality shortcut, which
// exploits Cell's fixed, comparable layout to skip a whole unchanged row
// with one slice compare instead of per-cell ones.
func (fb *FrameBuffer) Row(y int) []Cell {
	return fb.cells[y*fb.width : y*fb.width+fb.width]
}

// CopyFrom replicates other's contents into fb, reallocating only if fb's
// capacity is insufficient — so a caller holding one "previous frame"
// buffer across renders of equal size never reallocates.
func (fb *FrameBuffer) CopyFrom(other *FrameBuffer) {
	if cap(fb.cells) < len(other.cells) {
		fb.cells = make([]Cell, len(other.cells))
	} else {
		fb.cells = fb.cells[:len(other.cells)]
	}
	copy(fb.cells, other.cells)
	fb.width = other.width
	fb.height = other.height
}

func (fb *FrameBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < fb.width && y >= 0 && y < fb.height
}

// Get returns the cell at (x,y), or the empty cell if out of bounds.
func (fb *FrameBuffer) Get(x, y int) Cell {
	if !fb.inBounds(x, y) {
		return EmptyCell
	}
	return fb.cells[y*fb.width+x]
}

// Set writes cell directly at (x,y), skipping compositing and the
// wide-char cleanup protocol. Out-of-bounds writes are ignored.
func (fb *FrameBuffer) Set(x, y int, cell Cell) {
	if !fb.inBounds(x, y) {
		return
	}
	fb.cells[y*fb.width+x] = cell
}

// cleanupWideCharAt enforces "continuation iff preceded by a wide char"
// before a write lands at (x,y): if the existing cell there is a
// continuation, blank the wide char that produced it; if the following
// cell is a continuation, blank it too, since the wide char it continued
// is about to be overwritten.
func (fb *FrameBuffer) cleanupWideCharAt(x, y int) {
	if cur := fb.Get(x, y); cur.IsContinuation() && x > 0 {
		fb.cells[y*fb.width+x-1] = Cell{Codepoint: ' ', Bg: cur.Bg}
	}
	if x+1 < fb.width {
		idx := y*fb.width + x + 1
		if fb.cells[idx].IsContinuation() {
			fb.cells[idx] = EmptyCell
		}
	}
}

// PaintCell composites fg/bg (as Colors) onto the cell at (x,y): bounds and
// clip checked first, then wide-char cleanup, then fg resolved directly
// (terminals have no fg alpha) and bg composited over the existing bg via
// Color.ResolveOver in linear sRGB.
func (fb *FrameBuffer) PaintCell(x, y int, clip ClipRect, codepoint rune, fg, bg Color, attrs Attr, underline UnderlineStyle) {
	if !fb.inBounds(x, y) || !clip.Contains(x, y) {
		return
	}
	fb.cleanupWideCharAt(x, y)
	existing := fb.Get(x, y)
	fb.cells[y*fb.width+x] = Cell{
		Codepoint: codepoint,
		Fg:        fg.ToCellColor(),
		Bg:        bg.ResolveOver(existing.Bg),
		Attrs:     attrs,
		Underline: underline,
	}
}

// FillRect fills the intersection of (x,y,w,h) with the buffer and clip
// with blank cells composited over bg.
func (fb *FrameBuffer) FillRect(x, y, w, h int, bg Color, clip ClipRect) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			fb.PaintCell(col, row, clip, ' ', bg, bg, 0, UnderlineNone)
		}
	}
}

// PaintText writes text starting at (x,y), advancing by each character's
// display width (Unicode East Asian Width via go-runewidth). Zero-width
// characters are skipped. A double-width character landing on the last
// available column is replaced with a space. Wide characters write a
// codepoint-0 continuation cell at x+1 with the same style.
func (fb *FrameBuffer) PaintText(x, y int, text string, clip ClipRect, fg, bg Color, attrs Attr, underline UnderlineStyle) {
	col := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if w == 2 && col == fb.width-1 {
			fb.PaintCell(col, y, clip, ' ', fg, bg, attrs, underline)
			col++
			continue
		}
		fb.PaintCell(col, y, clip, r, fg, bg, attrs, underline)
		if w == 2 {
			fb.cleanupWideCharAt(col+1, y)
			fb.PaintCell(col+1, y, clip, 0, fg, bg, attrs, underline)
		}
		col += w
	}
}
