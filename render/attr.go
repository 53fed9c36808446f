package render

// Attr is an 8-bit text-attribute bitfield. Grounded on terminal.Attr's
// bitmask shape (terminal/terminal.go), expanded to the full spec set and
// dropping the terminal package's color-mode flag bits (AttrFg256/AttrBg256)
// since CellColor now carries its own Ansi256 variant instead of stashing
// the index in the color's red channel.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrSlowBlink
	AttrRapidBlink
	AttrInverse
	AttrHidden
	AttrStrikethrough
)

// Has reports whether all bits of want are set in a.
func (a Attr) Has(want Attr) bool {
	return a&want == want
}

// UnderlineStyle distinguishes the SGR 4:N underline variants.
type UnderlineStyle uint8

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineStraight
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)
