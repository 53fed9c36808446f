package render

// CellColorKind tags which variant a CellColor holds.
type CellColorKind uint8

const (
	CellColorDefault CellColorKind = iota
	CellColorAnsi256
	CellColorRGB
)

// CellColor is the on-grid color representation written into a Cell: no
// alpha, resolved from a Color only at paint time. Grounded on
// terminal.RGB/terminal.Attr's AttrFg256/AttrBg256 split
// (terminal/terminal.go), generalized from "RGB plus a side-flag for
// palette mode" into an explicit three-way sum type so a Cell never needs
// an out-of-band bit to know how to interpret its own color.
type CellColor struct {
	Kind        CellColorKind
	Ansi256Idx  uint8
	R, G, B     uint8
}

// Default is the terminal's default foreground/background color.
var Default = CellColor{Kind: CellColorDefault}

// Ansi256 builds a CellColor from a 256-color palette index.
func Ansi256(idx uint8) CellColor {
	return CellColor{Kind: CellColorAnsi256, Ansi256Idx: idx}
}

// RGB builds a CellColor from 24-bit RGB components.
func RGB(r, g, b uint8) CellColor {
	return CellColor{Kind: CellColorRGB, R: r, G: g, B: b}
}

// IsDefault reports whether c is the terminal-default color.
func (c CellColor) IsDefault() bool {
	return c.Kind == CellColorDefault
}
