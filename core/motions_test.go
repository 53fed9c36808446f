package core

import "testing"

func TestNextWordStart(t *testing.T) {
	buf := FromText("foo bar.baz  qux\n\nend")
	cases := []struct {
		from Position
		want Position
	}{
		{Position{0, 0}, Position{0, 4}},   // skip "foo" + space, land on "bar"
		{Position{0, 4}, Position{0, 7}},   // word->punct boundary lands on "."
		{Position{0, 7}, Position{0, 8}},   // punct->word boundary lands on "baz"
		{Position{0, 8}, Position{0, 13}},  // skip "baz" + 2 spaces, land on "qux"
		{Position{0, 13}, Position{1, 0}}, // lands on the blank line itself
	}
	for _, c := range cases {
		if got := buf.NextWordStart(c.from); got != c.want {
			t.Errorf("NextWordStart(%+v) = %+v, want %+v", c.from, got, c.want)
		}
	}
}

func TestNextWORDStartMergesPunct(t *testing.T) {
	buf := FromText("foo bar.baz  qux")
	got := buf.NextWORDStart(Position{0, 4})
	want := Position{0, 13}
	if got != want {
		t.Errorf("NextWORDStart(col4) = %+v, want %+v", got, want)
	}
}

func TestPrevWordStart(t *testing.T) {
	buf := FromText("foo bar.baz qux")
	cases := []struct {
		from Position
		want Position
	}{
		{Position{0, 8}, Position{0, 7}},  // back from "baz" lands on "."
		{Position{0, 4}, Position{0, 0}},  // back from "bar" lands on "foo"
		{Position{0, 0}, Position{0, 0}},  // at buffer start: no-op
	}
	for _, c := range cases {
		if got := buf.PrevWordStart(c.from); got != c.want {
			t.Errorf("PrevWordStart(%+v) = %+v, want %+v", c.from, got, c.want)
		}
	}
}

func TestPrevWordStartStopsAtBlankLineStart(t *testing.T) {
	buf := FromText("foo\n\nbar")
	// Line 2 ("bar") col 0, stepping back lands in the blank line (line 1).
	got := buf.PrevWordStart(Position{2, 0})
	want := Position{1, 0}
	if got != want {
		t.Errorf("PrevWordStart = %+v, want %+v", got, want)
	}
}

func TestWordEnd(t *testing.T) {
	buf := FromText("foo bar.baz qux")
	cases := []struct {
		from Position
		want Position
	}{
		{Position{0, 0}, Position{0, 2}},  // mid-word: lands on end of "foo" itself
		{Position{0, 2}, Position{0, 6}},  // at end of "foo": jumps to end of "bar"
		{Position{0, 6}, Position{0, 7}},  // from end of "bar" land on "."
		{Position{0, 7}, Position{0, 10}}, // from "." land on end of "baz"
	}
	for _, c := range cases {
		if got := buf.WordEnd(c.from); got != c.want {
			t.Errorf("WordEnd(%+v) = %+v, want %+v", c.from, got, c.want)
		}
	}
}

func TestWordEndEmptyLinesAreNotBoundaries(t *testing.T) {
	buf := FromText("foo\n\nbar")
	// From the end of "foo", "e" crosses the blank line and lands on the
	// end of "bar", since empty lines are not boundaries for e/E.
	got := buf.WordEnd(Position{0, 2})
	want := Position{2, 2}
	if got != want {
		t.Errorf("WordEnd across blank line = %+v, want %+v", got, want)
	}
}
