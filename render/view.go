package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/vied/core"
	"github.com/mattn/go-runewidth"
)

// Selection describes an active visual-mode span between two buffer
// positions, inclusive of both ends, per the visual kind.
type Selection struct {
	Kind   VisualKind
	Anchor core.Position
	Cursor core.Position
}

// ordered returns the selection endpoints with Start never after End.
func (s Selection) ordered() (core.Position, core.Position) {
	if s.Cursor.Less(s.Anchor) {
		return s.Cursor, s.Anchor
	}
	return s.Anchor, s.Cursor
}

// contains reports whether pos falls inside the selection, per its kind.
func (s Selection) contains(pos core.Position) bool {
	start, end := s.ordered()
	switch s.Kind {
	case VisualLine:
		return pos.Line >= start.Line && pos.Line <= end.Line
	case VisualBlock:
		lo, hi := start.Col, end.Col
		if lo > hi {
			lo, hi = hi, lo
		}
		return pos.Line >= start.Line && pos.Line <= end.Line && pos.Col >= lo && pos.Col <= hi
	default:
		if pos.Line < start.Line || pos.Line > end.Line {
			return false
		}
		if pos.Line == start.Line && pos.Col < start.Col {
			return false
		}
		if pos.Line == end.Line && pos.Col > end.Col {
			return false
		}
		return true
	}
}

// CompletionItem is one row of a completion popup.
type CompletionItem struct {
	Text   string
	Detail string
}

// CompletionPopup anchors a completion menu below the cursor. Only the
// first 10 items are ever shown, per the popup's fixed height budget.
type CompletionPopup struct {
	Items    []CompletionItem
	Selected int
	X, Y     int
}

const maxPopupItems = 10

// RenderState bundles everything a single View.Render call needs to know
// about editor state outside the view's own scroll/config fields.
type RenderState struct {
	Buffer            *core.Buffer
	Cursor            core.Position
	Mode              Mode
	Selection         *Selection
	Theme             Theme
	Matches           []core.SearchMatch
	CurrentMatch      int
	StatusLeft        string
	StatusRight       string
	Popup             *CompletionPopup
	CommandLine       string
	CommandLineActive bool
	SearchLine        string
	SearchLineActive  bool
}

// View owns scroll position and display configuration for one window pane
// onto a Buffer. Grounded on terminal/tui/region.go's Region for the
// owned-rectangle shape, generalized with gutter/tab/scroll/selection
// rendering logic that has no teacher analog (the game has no buffer view).
type View struct {
	TopLine        int
	LeftCol        int
	ShowNumber     bool
	RelativeNumber bool
	ScrollOff      int
	TabWidth       int
}

// NewView returns a View with conventional defaults.
func NewView() *View {
	return &View{ShowNumber: true, ScrollOff: 3, TabWidth: 8}
}

// GutterWidth returns the column count reserved for line numbers: digits
// in the largest line number plus one column of padding, or 0 if numbers
// are disabled.
func (v *View) GutterWidth(buf *core.Buffer) int {
	if !v.ShowNumber {
		return 0
	}
	digits := len(fmt.Sprintf("%d", buf.LineCount()))
	return digits + 1
}

// DisplayCol maps a buffer column to its on-screen column for the given
// line, expanding tabs to the next TabWidth stop and accounting for
// double-width runes via go-runewidth.
func (v *View) DisplayCol(buf *core.Buffer, line, col int) int {
	content := []rune(buf.LineContent(line))
	display := 0
	for i := 0; i < col && i < len(content); i++ {
		display = v.advanceCol(display, content[i])
	}
	return display
}

func (v *View) advanceCol(display int, r rune) int {
	if r == '\t' {
		return display + (v.TabWidth - display%v.TabWidth)
	}
	w := runewidth.RuneWidth(r)
	if w < 1 {
		w = 1
	}
	return display + w
}

// EnsureCursorVisible adjusts TopLine and LeftCol so cursor stays within
// ScrollOff lines of the viewport's top/bottom and within the text area's
// left/right edges, scrolling the minimum distance needed.
func (v *View) EnsureCursorVisible(buf *core.Buffer, cursor core.Position, textWidth, textHeight int) {
	if textHeight > 0 {
		top := v.TopLine + v.ScrollOff
		bottom := v.TopLine + textHeight - 1 - v.ScrollOff
		switch {
		case cursor.Line < top:
			v.TopLine = cursor.Line - v.ScrollOff
		case cursor.Line > bottom:
			v.TopLine = cursor.Line - textHeight + 1 + v.ScrollOff
		}
		if v.TopLine < 0 {
			v.TopLine = 0
		}
		maxTop := buf.LineCount() - 1
		if v.TopLine > maxTop {
			v.TopLine = maxTop
		}
		if maxTop < 0 {
			v.TopLine = 0
		}
	}
	if textWidth > 0 {
		dispCol := v.DisplayCol(buf, cursor.Line, cursor.Col)
		if dispCol < v.LeftCol {
			v.LeftCol = dispCol
		} else if dispCol >= v.LeftCol+textWidth {
			v.LeftCol = dispCol - textWidth + 1
		}
		if v.LeftCol < 0 {
			v.LeftCol = 0
		}
	}
}

// Render paints the whole pane: gutter, text with selection/cursorline/
// search highlighting, status line, and (if active) the completion popup
// or the command/search input line.
func (v *View) Render(fb *FrameBuffer, area Rect, st RenderState) {
	buf := st.Buffer
	gutterW := v.GutterWidth(buf)
	statusH := 1
	textHeight := area.H - statusH
	if textHeight < 0 {
		textHeight = 0
	}
	textWidth := area.W - gutterW
	if textWidth < 0 {
		textWidth = 0
	}
	clip := ClipRect{X: area.X, Y: area.Y, Width: uint16(area.W), Height: uint16(area.H)}

	v.EnsureCursorVisible(buf, st.Cursor, textWidth, textHeight)

	for row := 0; row < textHeight; row++ {
		line := v.TopLine + row
		screenY := area.Y + row
		v.renderGutterCell(fb, area.X, screenY, clip, buf, line, st)
		if line < buf.LineCount() {
			v.renderTextLine(fb, area.X+gutterW, screenY, textWidth, clip, buf, line, st)
		} else {
			fb.FillRect(area.X+gutterW, screenY, textWidth, 1, st.Theme.Background, clip)
		}
	}

	v.renderStatusLine(fb, area.X, area.Y+textHeight, area.W, clip, st)

	if st.Popup != nil && len(st.Popup.Items) > 0 {
		v.renderPopup(fb, clip, st)
	}
	if st.CommandLineActive {
		fb.PaintText(area.X, area.Y+area.H-1, ":"+st.CommandLine, clip, st.Theme.Foreground, st.Theme.Background, 0, UnderlineNone)
	} else if st.SearchLineActive {
		fb.PaintText(area.X, area.Y+area.H-1, "/"+st.SearchLine, clip, st.Theme.Foreground, st.Theme.Background, 0, UnderlineNone)
	}
}

func (v *View) renderGutterCell(fb *FrameBuffer, x, y int, clip ClipRect, buf *core.Buffer, line int, st RenderState) {
	gutterW := v.GutterWidth(buf)
	if gutterW == 0 {
		return
	}
	fg := st.Theme.LineNumber
	if line == st.Cursor.Line {
		fg = st.Theme.CursorLineNumber
	}
	bg := st.Theme.Background
	if line == st.Cursor.Line {
		bg = st.Theme.CursorLine
	}
	if line >= buf.LineCount() {
		fb.FillRect(x, y, gutterW, 1, bg, clip)
		return
	}
	num := line + 1
	if v.RelativeNumber && line != st.Cursor.Line {
		num = line - st.Cursor.Line
		if num < 0 {
			num = -num
		}
	}
	text := fmt.Sprintf("%*d ", gutterW-1, num)
	fb.PaintText(x, y, text, clip, fg, bg, 0, UnderlineNone)
}

func (v *View) renderTextLine(fb *FrameBuffer, x, y, width int, clip ClipRect, buf *core.Buffer, line int, st RenderState) {
	bg := st.Theme.Background
	if line == st.Cursor.Line {
		bg = st.Theme.CursorLine
	}
	fb.FillRect(x, y, width, 1, bg, clip)

	content := []rune(buf.LineContent(line))
	col := 0
	screenCol := 0
	for col < len(content) && screenCol < v.LeftCol+width {
		r := content[col]
		w := 1
		var text string
		if r == '\t' {
			next := v.advanceCol(screenCol, r)
			w = next - screenCol
			text = strings.Repeat(" ", w)
		} else {
			w = runewidth.RuneWidth(r)
			if w < 1 {
				w = 1
			}
			text = string(r)
		}
		if screenCol+w > v.LeftCol {
			cellBg := bg
			if st.Selection != nil && st.Selection.contains(core.Position{Line: line, Col: col}) {
				cellBg = st.Theme.Selection
			}
			if v.inSearchMatch(st, line, col) {
				cellBg = st.Theme.SearchMatch
				if v.isCurrentMatch(st, line, col) {
					cellBg = st.Theme.SearchMatchCurrent
				}
			}
			screenX := x + screenCol - v.LeftCol
			fb.PaintText(screenX, y, text, clip, st.Theme.Foreground, cellBg, 0, UnderlineNone)
		}
		screenCol += w
		col++
	}
}

func (v *View) inSearchMatch(st RenderState, line, col int) bool {
	idx, ok := v.matchIndexAt(st, line, col)
	return ok && idx >= 0
}

func (v *View) isCurrentMatch(st RenderState, line, col int) bool {
	idx, ok := v.matchIndexAt(st, line, col)
	return ok && idx == st.CurrentMatch
}

func (v *View) matchIndexAt(st RenderState, line, col int) (int, bool) {
	pos := core.Position{Line: line, Col: col}
	for i, m := range st.Matches {
		if withinMatch(pos, m) {
			return i, true
		}
	}
	return 0, false
}

func withinMatch(pos core.Position, m core.SearchMatch) bool {
	if pos.Line < m.Start.Line || pos.Line > m.End.Line {
		return false
	}
	if pos.Line == m.Start.Line && pos.Col < m.Start.Col {
		return false
	}
	if pos.Line == m.End.Line && pos.Col >= m.End.Col {
		return false
	}
	return true
}

func (v *View) renderStatusLine(fb *FrameBuffer, x, y, width int, clip ClipRect, st RenderState) {
	group := st.Theme.StatusGroupFor(st.Mode)
	fb.FillRect(x, y, width, 1, group.Bg, clip)
	fb.PaintText(x, y, st.StatusLeft, clip, group.Fg, group.Bg, 0, UnderlineNone)
	rightStart := x + width - runewidth.StringWidth(st.StatusRight)
	if rightStart > x {
		fb.PaintText(rightStart, y, st.StatusRight, clip, group.Fg, group.Bg, 0, UnderlineNone)
	}
}

func (v *View) renderPopup(fb *FrameBuffer, clip ClipRect, st RenderState) {
	p := st.Popup
	items := p.Items
	if len(items) > maxPopupItems {
		items = items[:maxPopupItems]
	}
	width := 0
	for _, it := range items {
		w := runewidth.StringWidth(it.Text) + runewidth.StringWidth(it.Detail) + 2
		if w > width {
			width = w
		}
	}
	for i, it := range items {
		bg := st.Theme.Pmenu.Bg
		fg := st.Theme.Pmenu.Fg
		if i == p.Selected {
			bg = st.Theme.PmenuSel.Bg
			fg = st.Theme.PmenuSel.Fg
		}
		y := p.Y + i
		fb.FillRect(p.X, y, width, 1, bg, clip)
		fb.PaintText(p.X, y, " "+it.Text, clip, fg, bg, 0, UnderlineNone)
		if it.Detail != "" {
			detailX := p.X + width - runewidth.StringWidth(it.Detail) - 1
			fb.PaintText(detailX, y, it.Detail, clip, fg, bg, 0, UnderlineNone)
		}
	}
}
