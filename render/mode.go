package render

// Mode is the editor's current input mode, used to pick the status-line
// style and to decide which keys the caller should route where. Grounded
// on core/mode.go's GameMode enum (the teacher carried two copies of this
// type, core/mode.go and core/modes.go, byte-identical down to the
// constant list — only one survives here, generalized from the game's
// five modes to the editor's set).
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeVisual
	ModeReplace
	ModeCommand
	ModeSearch
)

// VisualKind distinguishes the three visual-selection shapes: a Char
// selection spans a Range of runes, a Line selection spans whole lines,
// and a Block selection spans a rectangular column range across lines.
type VisualKind uint8

const (
	VisualChar VisualKind = iota
	VisualLine
	VisualBlock
)
