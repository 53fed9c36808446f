package core

// Word classification and motions. Ground truth: modes/motions.go's
// findNextWordStartVim / findWordEndVim / findPrevWordStartVim and their
// WORD-variant siblings, regrounded from (ctx, cursorX, cursorY) game-grid
// coordinates onto (Buffer, Position) text coordinates, and generalized
// from single-row scans to the whole rune stream so motions cross lines.
//
// Each function takes a start position and returns the landing position;
// callers apply a count by iterating and applying past-end clamping
// themselves (the motions here never clamp).

// NextWordStart is the 'w' motion.
func (b *Buffer) NextWordStart(from Position) Position {
	return b.forwardStart(from, false)
}

// NextWORDStart is the 'W' motion (space-delimited).
func (b *Buffer) NextWORDStart(from Position) Position {
	return b.forwardStart(from, true)
}

// PrevWordStart is the 'b' motion.
func (b *Buffer) PrevWordStart(from Position) Position {
	return b.backwardStart(from, false)
}

// PrevWORDStart is the 'B' motion (space-delimited).
func (b *Buffer) PrevWORDStart(from Position) Position {
	return b.backwardStart(from, true)
}

// WordEnd is the 'e' motion.
func (b *Buffer) WordEnd(from Position) Position {
	return b.wordEnd(from, false)
}

// WORDEnd is the 'E' motion (space-delimited).
func (b *Buffer) WORDEnd(from Position) Position {
	return b.wordEnd(from, true)
}

// forwardStart implements w/W: skip the current run if on Word/Punct, then
// skip whitespace and newlines, stopping at an empty-line boundary.
func (b *Buffer) forwardStart(from Position, wordMode bool) Position {
	n := len(b.runes)
	idx := b.mustIdx(from)
	if idx >= n {
		return from
	}

	cls := b.classAtIdx(idx, wordMode)
	if cls == ClassWord || cls == ClassPunct {
		for idx < n && b.classAtIdx(idx, wordMode) == cls {
			idx++
		}
	}

	for idx < n {
		c := b.classAtIdx(idx, wordMode)
		if c != ClassBlank && c != ClassNewline {
			break
		}
		if c == ClassNewline {
			idx++
			if idx < n && b.classAtIdx(idx, wordMode) == ClassNewline {
				break // empty line: a boundary, stop here
			}
			continue
		}
		idx++
	}

	if idx >= n {
		return from
	}
	pos, _ := b.CharIdxToPos(idx)
	return pos
}

// backwardStart implements b/B: step back one, skip whitespace/newlines
// (stopping at the start of an empty line), then skip backward over a
// Word/Punct run to its start.
func (b *Buffer) backwardStart(from Position, wordMode bool) Position {
	idx := b.mustIdx(from)
	idx--
	if idx < 0 {
		return from
	}

	for idx >= 0 {
		c := b.classAtIdx(idx, wordMode)
		if c == ClassBlank {
			idx--
			continue
		}
		if c == ClassNewline {
			pos, _ := b.CharIdxToPos(idx)
			if b.LineContentLen(pos.Line) == 0 {
				return Position{Line: pos.Line, Col: 0}
			}
			idx--
			continue
		}
		break
	}
	if idx < 0 {
		return Position{Line: 0, Col: 0}
	}

	cls := b.classAtIdx(idx, wordMode)
	for idx > 0 && b.classAtIdx(idx-1, wordMode) == cls {
		idx--
	}
	pos, _ := b.CharIdxToPos(idx)
	return pos
}

// wordEnd implements e/E: advance one, skip whitespace/newlines (empty
// lines are not boundaries here), then extend while the class is unchanged.
func (b *Buffer) wordEnd(from Position, wordMode bool) Position {
	n := len(b.runes)
	idx := b.mustIdx(from)
	idx++
	if idx >= n {
		return from
	}

	for idx < n {
		c := b.classAtIdx(idx, wordMode)
		if c != ClassBlank && c != ClassNewline {
			break
		}
		idx++
	}
	if idx >= n {
		return from
	}

	cls := b.classAtIdx(idx, wordMode)
	for idx+1 < n && b.classAtIdx(idx+1, wordMode) == cls {
		idx++
	}
	pos, _ := b.CharIdxToPos(idx)
	return pos
}
