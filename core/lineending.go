package core

import "strings"

// LineEnding identifies which newline convention a buffer uses on save.
type LineEnding uint8

const (
	LineEndingLF LineEnding = iota
	LineEndingCRLF
	LineEndingCR
)

// String renders the ending as its literal byte sequence.
func (e LineEnding) String() string {
	switch e {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// detectLineEnding scans text byte-by-byte and returns the style of the
// first line ending encountered, defaulting to LF when none is found.
//
// This is first-occurrence detection, not a majority vote: "a\nb\r\nc" is
// LF and "a\r\nb\nc" is CRLF, by design (spec Open Question).
func detectLineEnding(text string) LineEnding {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			return LineEndingLF
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				return LineEndingCRLF
			}
			return LineEndingCR
		}
	}
	return LineEndingLF
}

// normalizeLineEndings rewrites every line ending in text (any mixture of
// \r\n, \r, \n) to the target style.
func normalizeLineEndings(text string, target LineEnding) string {
	if text == "" {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	ending := target.String()
	i := 0
	for i < len(text) {
		c := text[i]
		switch c {
		case '\n':
			b.WriteString(ending)
			i++
		case '\r':
			b.WriteString(ending)
			if i+1 < len(text) && text[i+1] == '\n' {
				i += 2
			} else {
				i++
			}
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}
