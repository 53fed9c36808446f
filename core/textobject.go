package core

// Text objects. No direct teacher analog — the game has no selection
// concept — so these are new per the target behavior, except the bracket
// scan, which reuses the forward/backward depth-counter shape referenced
// by modes/motions.go's '%' matching-bracket case (a linear scan with an
// unsigned depth counter, not a bracket stack).

// InnerWord is 'iw': extend left/right while the class at the cursor
// matches (Word/Punctuation), or while Blank matches, or for a Newline
// return the newline span itself.
func (b *Buffer) InnerWord(pos Position) (Range, bool) {
	return b.innerWordImpl(pos, false)
}

// InnerWORD is 'iW': same as InnerWord but merges punctuation into Word.
func (b *Buffer) InnerWORD(pos Position) (Range, bool) {
	return b.innerWordImpl(pos, true)
}

func (b *Buffer) innerWordImpl(pos Position, wordMode bool) (Range, bool) {
	idx, ok := b.PosToCharIdx(pos)
	if !ok || idx >= len(b.runes) {
		return Range{}, false
	}
	cls := b.classAtIdx(idx, wordMode)
	if cls == ClassNewline {
		end := idx + 1
		if r, ok := b.RuneAt(idx); ok && r == '\r' {
			if nr, ok := b.RuneAt(idx + 1); ok && nr == '\n' {
				end = idx + 2
			}
		}
		startPos, _ := b.CharIdxToPos(idx)
		endPos, _ := b.CharIdxToPos(end)
		return Range{Start: startPos, End: endPos}, true
	}

	start, end := idx, idx+1
	for start > 0 && b.classAtIdx(start-1, wordMode) == cls {
		start--
	}
	for end < len(b.runes) && b.classAtIdx(end, wordMode) == cls {
		end++
	}
	startPos, _ := b.CharIdxToPos(start)
	endPos, _ := b.CharIdxToPos(end)
	return Range{Start: startPos, End: endPos}, true
}

// AroundWord is 'aw'.
func (b *Buffer) AroundWord(pos Position) (Range, bool) {
	return b.aroundWordImpl(pos, false)
}

// AroundWORD is 'aW'.
func (b *Buffer) AroundWORD(pos Position) (Range, bool) {
	return b.aroundWordImpl(pos, true)
}

func (b *Buffer) aroundWordImpl(pos Position, wordMode bool) (Range, bool) {
	idx, ok := b.PosToCharIdx(pos)
	if !ok || idx >= len(b.runes) {
		return Range{}, false
	}
	inner, ok := b.innerWordImpl(pos, wordMode)
	if !ok {
		return Range{}, false
	}
	cls := b.classAtIdx(idx, wordMode)
	if cls == ClassNewline {
		return inner, true
	}

	startIdx, _ := b.PosToCharIdx(inner.Start)
	endIdx, _ := b.PosToCharIdx(inner.End)

	if cls == ClassBlank {
		// extend end to include a following Word/Punct run, if any
		if endIdx < len(b.runes) {
			followCls := b.classAtIdx(endIdx, wordMode)
			if followCls == ClassWord || followCls == ClassPunct {
				for endIdx < len(b.runes) && b.classAtIdx(endIdx, wordMode) == followCls {
					endIdx++
				}
			}
		}
		startPos, _ := b.CharIdxToPos(startIdx)
		endPos, _ := b.CharIdxToPos(endIdx)
		return Range{Start: startPos, End: endPos}, true
	}

	// Word/Punct: prefer trailing blank, else leading blank, else inner.
	trailEnd := endIdx
	for trailEnd < len(b.runes) && b.classAtIdx(trailEnd, wordMode) == ClassBlank {
		trailEnd++
	}
	if trailEnd > endIdx {
		startPos, _ := b.CharIdxToPos(startIdx)
		endPos, _ := b.CharIdxToPos(trailEnd)
		return Range{Start: startPos, End: endPos}, true
	}

	leadStart := startIdx
	for leadStart > 0 && b.classAtIdx(leadStart-1, wordMode) == ClassBlank {
		leadStart--
	}
	if leadStart < startIdx {
		startPos, _ := b.CharIdxToPos(leadStart)
		endPos, _ := b.CharIdxToPos(endIdx)
		return Range{Start: startPos, End: endPos}, true
	}

	return inner, true
}

// QuoteObject finds the quote pair of quoteChar on the cursor's line.
// Quote columns are collected in order and paired left-to-right (1st+2nd,
// 3rd+4th, ...). If the cursor sits within a pair's closed [open,close]
// interval, that pair is used; otherwise the first pair starting strictly
// after the cursor is used.
func (b *Buffer) QuoteObject(pos Position, quoteChar rune, around bool) (Range, bool) {
	content := []rune(b.LineContent(pos.Line))
	var cols []int
	for i, r := range content {
		if r == quoteChar {
			cols = append(cols, i)
		}
	}
	if len(cols) < 2 {
		return Range{}, false
	}

	var openCol, closeCol int
	found := false
	for i := 0; i+1 < len(cols); i += 2 {
		o, c := cols[i], cols[i+1]
		if pos.Col >= o && pos.Col <= c {
			openCol, closeCol = o, c
			found = true
			break
		}
	}
	if !found {
		for i := 0; i+1 < len(cols); i += 2 {
			o, c := cols[i], cols[i+1]
			if o > pos.Col {
				openCol, closeCol = o, c
				found = true
				break
			}
		}
	}
	if !found {
		return Range{}, false
	}

	if around {
		return Range{
			Start: Position{Line: pos.Line, Col: openCol},
			End:   Position{Line: pos.Line, Col: closeCol + 1},
		}, true
	}
	if closeCol == openCol+1 {
		// empty quote pair: point range between the quotes
		return PointRange(Position{Line: pos.Line, Col: openCol + 1}), true
	}
	return Range{
		Start: Position{Line: pos.Line, Col: openCol + 1},
		End:   Position{Line: pos.Line, Col: closeCol},
	}, true
}

// BracketObject finds the bracket pair for open/close around pos, scanning
// across lines. If the character at the cursor is the opening bracket,
// scans forward for the matching close with a depth counter. If it is the
// closing bracket, scans backward symmetrically. Otherwise scans backward
// for the nearest unmatched opening bracket, then forward from it for its
// match, accepting only if the cursor lies strictly inside (open, close).
func (b *Buffer) BracketObject(pos Position, open, close rune) (openIdx, closeIdx int, ok bool) {
	idx, posOK := b.PosToCharIdx(pos)
	if !posOK || idx >= len(b.runes) {
		return 0, 0, false
	}
	cur, _ := b.RuneAt(idx)

	switch cur {
	case open:
		if c, found := b.scanForwardDepth(idx, open, close); found {
			return idx, c, true
		}
		return 0, 0, false
	case close:
		if o, found := b.scanBackwardDepth(idx, open, close); found {
			return o, idx, true
		}
		return 0, 0, false
	}

	o, found := b.scanUnmatchedOpenBackward(idx, open, close)
	if !found {
		return 0, 0, false
	}
	c, found := b.scanForwardDepth(o, open, close)
	if !found {
		return 0, 0, false
	}
	if !(idx > o && idx < c) {
		return 0, 0, false
	}
	return o, c, true
}

// BracketRange wraps BracketObject, returning the [open, close] range as a
// Range per the around/inner convention.
func (b *Buffer) BracketRange(pos Position, open, close rune, around bool) (Range, bool) {
	o, c, ok := b.BracketObject(pos, open, close)
	if !ok {
		return Range{}, false
	}
	if around {
		startPos, _ := b.CharIdxToPos(o)
		endPos, _ := b.CharIdxToPos(c + 1)
		return Range{Start: startPos, End: endPos}, true
	}
	if c == o+1 {
		startPos, _ := b.CharIdxToPos(o + 1)
		return PointRange(startPos), true
	}
	startPos, _ := b.CharIdxToPos(o + 1)
	endPos, _ := b.CharIdxToPos(c)
	return Range{Start: startPos, End: endPos}, true
}

func (b *Buffer) scanForwardDepth(from int, open, close rune) (int, bool) {
	depth := uint(0)
	for i := from; i < len(b.runes); i++ {
		r := b.runes[i]
		switch r {
		case open:
			depth++
		case close:
			if depth > 0 {
				depth--
			}
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func (b *Buffer) scanBackwardDepth(from int, open, close rune) (int, bool) {
	depth := uint(0)
	for i := from; i >= 0; i-- {
		r := b.runes[i]
		switch r {
		case close:
			depth++
		case open:
			if depth > 0 {
				depth--
			}
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func (b *Buffer) scanUnmatchedOpenBackward(from int, open, close rune) (int, bool) {
	depth := uint(0)
	for i := from - 1; i >= 0; i-- {
		r := b.runes[i]
		switch r {
		case close:
			depth++
		case open:
			if depth > 0 {
				depth--
				continue
			}
			return i, true
		}
	}
	return 0, false
}
