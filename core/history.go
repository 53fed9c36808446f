package core

// Edit is a single recorded mutation: an insertion or a deletion of text
// at a position. Transactions are built from a sequence of these so that
// undo can replay them in reverse.
type Edit struct {
	IsInsert bool
	Pos      Position
	Text     string
}

// reverse returns the edit that undoes e.
func (e Edit) reverse() Edit {
	if e.IsInsert {
		return Edit{IsInsert: false, Pos: e.Pos, Text: e.Text}
	}
	return Edit{IsInsert: true, Pos: e.Pos, Text: e.Text}
}

// apply replays e against buf.
func (e Edit) apply(buf *Buffer) {
	if e.IsInsert {
		buf.Insert(e.Pos, e.Text)
		return
	}
	end := advancePosition(e.Pos, e.Text)
	buf.Delete(Range{Start: e.Pos, End: end})
}

// advancePosition returns the position reached by moving forward through
// text starting at pos, treating \r\n, \r, and \n each as a single
// newline that resets the column and advances the line.
func advancePosition(pos Position, text string) Position {
	line, col := pos.Line, pos.Col
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		switch runes[i] {
		case '\n':
			line++
			col = 0
			i++
		case '\r':
			line++
			col = 0
			i++
			if i < len(runes) && runes[i] == '\n' {
				i++
			}
		default:
			col++
			i++
		}
	}
	return Position{Line: line, Col: col}
}

// Transaction is a batch of edits recorded between a begin/commit pair,
// together with the cursor positions before and after.
type Transaction struct {
	Edits       []Edit
	CursorBefore Position
	CursorAfter  Position
}

func (t *Transaction) isEmpty() bool {
	return len(t.Edits) == 0
}

// History tracks undo/redo as a pair of transaction stacks plus one
// pending (not yet committed) transaction, per the begin/record/commit
// contract. There is no teacher analog for undo; the game's Buffer only
// ever mutates cells directly and never rewinds, so this follows the
// stack-of-reverse-edits shape directly.
type History struct {
	pending *Transaction
	undo    []Transaction
	redo    []Transaction
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{}
}

// Begin starts a new pending transaction at cursor. If one is already
// pending, it is auto-committed first using cursor as its CursorAfter.
func (h *History) Begin(cursor Position) {
	if h.pending != nil {
		h.commitPending(cursor)
	}
	h.pending = &Transaction{CursorBefore: cursor}
}

// RecordInsert appends an insert edit to the pending transaction. No-op if
// no transaction is pending.
func (h *History) RecordInsert(pos Position, text string) {
	if h.pending == nil {
		return
	}
	h.pending.Edits = append(h.pending.Edits, Edit{IsInsert: true, Pos: pos, Text: text})
}

// RecordDelete appends a delete edit to the pending transaction. No-op if
// no transaction is pending.
func (h *History) RecordDelete(pos Position, text string) {
	if h.pending == nil {
		return
	}
	h.pending.Edits = append(h.pending.Edits, Edit{IsInsert: false, Pos: pos, Text: text})
}

// Commit closes the pending transaction. An empty transaction is
// discarded; otherwise it is pushed to the undo stack and the redo stack
// is cleared.
func (h *History) Commit(cursor Position) {
	h.commitPending(cursor)
}

func (h *History) commitPending(cursor Position) {
	if h.pending == nil {
		return
	}
	t := h.pending
	h.pending = nil
	if t.isEmpty() {
		return
	}
	t.CursorAfter = cursor
	h.redo = h.redo[:0]
	h.undo = append(h.undo, *t)
}

// CanUndo reports whether Undo would do anything.
func (h *History) CanUndo() bool {
	return (h.pending != nil && !h.pending.isEmpty()) || len(h.undo) > 0
}

// CanRedo reports whether Redo would do anything.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// UndoCount returns the number of committed transactions Undo can still
// pop, for a status-line "N changes" display. Grounded on
// original_source/crates/n-editor/src/history.rs's undo_count.
func (h *History) UndoCount() int {
	return len(h.undo)
}

// RedoCount returns the number of transactions Redo can still reapply.
// Grounded on original_source/crates/n-editor/src/history.rs's redo_count.
func (h *History) RedoCount() int {
	return len(h.redo)
}

// Undo auto-commits any pending transaction (clearing redo), pops the undo
// stack, applies the reverse of each edit in reverse order against buf,
// pushes the transaction to the redo stack, and returns the cursor
// position from before the transaction. ok is false if there was nothing
// to undo.
func (h *History) Undo(buf *Buffer) (pos Position, ok bool) {
	if h.pending != nil && !h.pending.isEmpty() {
		// An auto-commit here has no "current cursor" to record as
		// CursorAfter beyond the last edit's end; reuse CursorBefore as a
		// reasonable anchor since the caller is about to undo past it
		// anyway.
		h.commitPending(h.pending.CursorBefore)
	}
	if len(h.undo) == 0 {
		return Position{}, false
	}
	t := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	for i := len(t.Edits) - 1; i >= 0; i-- {
		t.Edits[i].reverse().apply(buf)
	}
	h.redo = append(h.redo, t)
	return t.CursorBefore, true
}

// Redo pops the redo stack, applies its edits in forward order against
// buf, pushes it back to the undo stack, and returns the cursor position
// from after the transaction. ok is false if there was nothing to redo.
func (h *History) Redo(buf *Buffer) (pos Position, ok bool) {
	if len(h.redo) == 0 {
		return Position{}, false
	}
	t := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	for _, e := range t.Edits {
		e.apply(buf)
	}
	h.undo = append(h.undo, t)
	return t.CursorAfter, true
}
