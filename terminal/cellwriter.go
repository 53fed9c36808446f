package terminal

import (
	"bufio"

	"github.com/lixenwraith/vied/ansi"
	"github.com/lixenwraith/vied/render"
)

// CellWriter tracks the terminal's actual cursor position and style state
// so each RenderCell call emits only the bytes needed to move from the
// previous cell to this one. Grounded on terminal/output.go's
// writeStyleCoalesced/cellEqual style-tracking fields, split out of the
// diff-and-flush loop (now DiffRenderer's job) into a reusable per-cell
// emitter.
type CellWriter struct {
	lastX, lastY int
	havePos      bool

	lastFg        render.CellColor
	hasFg         bool
	lastBg        render.CellColor
	hasBg         bool
	lastAttrs     render.Attr
	hasAttrs      bool
	lastUnderline render.UnderlineStyle
	hasUnderline  bool
}

// NewCellWriter returns a CellWriter with no tracked position or style.
func NewCellWriter() *CellWriter {
	return &CellWriter{}
}

// ResetState forgets the tracked cursor position and style, forcing the
// next RenderCell to re-emit both from scratch.
func (cw *CellWriter) ResetState() {
	cw.havePos = false
	cw.hasFg = false
	cw.hasBg = false
	cw.hasAttrs = false
	cw.hasUnderline = false
}

// RenderCell writes cell at (x,y): it moves the cursor only if it isn't
// already sitting immediately after the last written cell, re-emits only
// the style fields that actually changed, then writes the codepoint
// (skipped entirely for a wide-char continuation cell, since the terminal
// already advanced past it when the wide char itself was written).
func (cw *CellWriter) RenderCell(ob *OutputBuffer, x, y int, cell render.Cell) {
	w := ob.Writer()

	if !cw.havePos || y != cw.lastY || x != cw.lastX {
		ansi.CursorTo(w, x, y)
	}

	cw.writeStyle(w, cell)

	if !cell.IsContinuation() {
		ob.WriteCodepoint(cell.Codepoint)
	}

	cw.lastX = x + 1
	cw.lastY = y
	cw.havePos = true
}

// writeStyle emits only the SGR fields that differ from the last cell
// written. An attrs change resets and re-applies attrs, and invalidates the
// tracked fg/bg/underline (SGR reset clears them on the terminal side too);
// underline, fg, and bg are then each diffed independently against their
// own last-known value.
func (cw *CellWriter) writeStyle(w *bufio.Writer, cell render.Cell) {
	if !cw.hasAttrs || cell.Attrs != cw.lastAttrs {
		if cw.hasAttrs && cw.lastAttrs != 0 {
			ansi.Reset(w)
			cw.hasFg = false
			cw.hasBg = false
			cw.hasUnderline = false
		}
		cw.lastAttrs = cell.Attrs
		cw.hasAttrs = true
		if cell.Attrs != 0 {
			cw.writeAttrs(w, cell.Attrs)
		}
	}

	if !cw.hasUnderline || cell.Underline != cw.lastUnderline {
		ansi.UnderlineStyle(w, uint8(cell.Underline))
		cw.lastUnderline = cell.Underline
		cw.hasUnderline = true
	}

	if !cw.hasFg || cell.Fg != cw.lastFg {
		writeFg(w, cell.Fg)
		cw.lastFg = cell.Fg
		cw.hasFg = true
	}

	if !cw.hasBg || cell.Bg != cw.lastBg {
		writeBg(w, cell.Bg)
		cw.lastBg = cell.Bg
		cw.hasBg = true
	}
}

func (cw *CellWriter) writeAttrs(w *bufio.Writer, attrs render.Attr) {
	if attrs.Has(render.AttrBold) {
		ansi.Bold(w)
	}
	if attrs.Has(render.AttrDim) {
		ansi.Dim(w)
	}
	if attrs.Has(render.AttrItalic) {
		ansi.Italic(w)
	}
	if attrs.Has(render.AttrSlowBlink) {
		ansi.SlowBlink(w)
	}
	if attrs.Has(render.AttrRapidBlink) {
		ansi.RapidBlink(w)
	}
	if attrs.Has(render.AttrInverse) {
		ansi.Inverse(w)
	}
	if attrs.Has(render.AttrHidden) {
		ansi.Hidden(w)
	}
	if attrs.Has(render.AttrStrikethrough) {
		ansi.Strikethrough(w)
	}
}

func writeFg(w *bufio.Writer, c render.CellColor) {
	switch c.Kind {
	case render.CellColorRGB:
		ansi.FgRGB(w, c.R, c.G, c.B)
	case render.CellColorAnsi256:
		ansi.Fg256(w, c.Ansi256Idx)
	default:
		ansi.FgDefault(w)
	}
}

func writeBg(w *bufio.Writer, c render.CellColor) {
	switch c.Kind {
	case render.CellColorRGB:
		ansi.BgRGB(w, c.R, c.G, c.B)
	case render.CellColorAnsi256:
		ansi.Bg256(w, c.Ansi256Idx)
	default:
		ansi.BgDefault(w)
	}
}
