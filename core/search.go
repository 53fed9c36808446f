package core

// SearchMatch is a found pattern occurrence expressed as a half-open Range.
type SearchMatch struct {
	Start Position
	End   Position
}

func (b *Buffer) matchesAt(idx int, pat []rune) bool {
	for i, r := range pat {
		if b.runes[idx+i] != r {
			return false
		}
	}
	return true
}

// FindForward finds the next occurrence of pat starting strictly after
// from, wrapping around the end of the buffer back to the start. Grounded
// on searchForward's forward-scan-then-wrap structure; the "remaining part
// of start line" third pass is folded away here, since Buffer addresses
// text as one flat rune stream rather than a row/column grid, so a single
// wrap pass already covers it.
func (b *Buffer) FindForward(pat string, from Position) (Position, bool) {
	patRunes := []rune(pat)
	n := len(b.runes)
	if len(patRunes) == 0 || n == 0 {
		return Position{}, false
	}
	fromIdx, ok := b.PosToCharIdx(from)
	if !ok {
		return Position{}, false
	}
	maxStart := n - len(patRunes)
	if maxStart < 0 {
		return Position{}, false
	}

	for i := fromIdx + 1; i <= maxStart; i++ {
		if b.matchesAt(i, patRunes) {
			pos, _ := b.CharIdxToPos(i)
			return pos, true
		}
	}
	limit := fromIdx
	if limit > maxStart {
		limit = maxStart
	}
	for i := 0; i <= limit; i++ {
		if b.matchesAt(i, patRunes) {
			pos, _ := b.CharIdxToPos(i)
			return pos, true
		}
	}
	return Position{}, false
}

// FindBackward finds the previous occurrence of pat at or before from,
// wrapping around the start of the buffer back to the end. Symmetric to
// FindForward; unlike it, the scan includes from's own column so that a
// match starting exactly at the cursor is found.
func (b *Buffer) FindBackward(pat string, from Position) (Position, bool) {
	patRunes := []rune(pat)
	n := len(b.runes)
	if len(patRunes) == 0 || n == 0 {
		return Position{}, false
	}
	fromIdx, ok := b.PosToCharIdx(from)
	if !ok {
		return Position{}, false
	}
	maxStart := n - len(patRunes)
	if maxStart < 0 {
		return Position{}, false
	}

	start := fromIdx
	if start > maxStart {
		start = maxStart
	}
	for i := start; i >= 0; i-- {
		if b.matchesAt(i, patRunes) {
			pos, _ := b.CharIdxToPos(i)
			return pos, true
		}
	}
	for i := maxStart; i > fromIdx; i-- {
		if b.matchesAt(i, patRunes) {
			pos, _ := b.CharIdxToPos(i)
			return pos, true
		}
	}
	return Position{}, false
}

// FindAll returns every non-overlapping occurrence of pat within lines
// [startLine, endLine], in order. After a match, the next search resumes
// at match_start + max(1, len(pat)) so a zero-width-equivalent pattern
// cannot stall the scan.
func (b *Buffer) FindAll(pat string, startLine, endLine int) []SearchMatch {
	patRunes := []rune(pat)
	if len(patRunes) == 0 {
		return nil
	}
	startIdx, _, ok1 := b.lineSpan(startLine)
	_, endIdx, ok2 := b.lineSpan(endLine)
	if !ok1 || !ok2 {
		return nil
	}

	step := len(patRunes)
	if step < 1 {
		step = 1
	}
	var matches []SearchMatch
	for i := startIdx; i+len(patRunes) <= endIdx; {
		if b.matchesAt(i, patRunes) {
			s, _ := b.CharIdxToPos(i)
			e, _ := b.CharIdxToPos(i + len(patRunes))
			matches = append(matches, SearchMatch{Start: s, End: e})
			i += step
			continue
		}
		i++
	}
	return matches
}

// WordUnderCursor returns the Word- or Punct-class run containing pos,
// confined to its line. Returns ok = false if pos sits on a blank, a
// newline, or past the end of its line's content.
func (b *Buffer) WordUnderCursor(pos Position) (string, bool) {
	content := []rune(b.LineContent(pos.Line))
	if pos.Col < 0 || pos.Col >= len(content) {
		return "", false
	}
	cls := ClassifyRune(content[pos.Col])
	if cls == ClassBlank || cls == ClassNewline {
		return "", false
	}
	start, end := pos.Col, pos.Col+1
	for start > 0 && ClassifyRune(content[start-1]) == cls {
		start--
	}
	for end < len(content) && ClassifyRune(content[end]) == cls {
		end++
	}
	return string(content[start:end]), true
}
