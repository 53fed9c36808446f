package render

import (
	"strings"
	"unicode"

	"github.com/lixenwraith/vied/core"
)

// Capture names one syntax category a token belongs to. New, per spec.md's
// abstract token-stream interface — the game this was grounded on has no
// syntax highlighting, so there is no teacher analog for any of this file.
type Capture string

const (
	CaptureKeyword     Capture = "keyword"
	CaptureString      Capture = "string"
	CaptureComment     Capture = "comment"
	CaptureNumber      Capture = "number"
	CaptureFunction    Capture = "function"
	CaptureType        Capture = "type"
	CaptureOperator    Capture = "operator"
	CapturePunctuation Capture = "punctuation"
	CaptureDefault     Capture = ""
)

// HighlightMode selects how a Capture resolves to a paintable color:
// HighlightTerminal pins each capture to one of the 16 named ANSI colors a
// terminal already has (so the result looks right under any color scheme),
// HighlightThemed resolves through the active Theme's RGB palette instead.
type HighlightMode uint8

const (
	HighlightTerminal HighlightMode = iota
	HighlightThemed
)

// HighlightSpan is one resolved run of color within a line.
type HighlightSpan struct {
	Line     int
	StartCol int
	EndCol   int
	Fg       CellColor
}

// Highlighter tokenizes a Buffer and resolves spans of color
// for the currently visible lines.
type Highlighter interface {
	MarkDirty(r core.Range)
	UpdateTheme(th Theme)
	EnsureParsed(buf *core.Buffer) error
	ViewportColors(buf *core.Buffer, startLine, endLine int, mode HighlightMode) []HighlightSpan
}

// terminalPalette fixes each Capture to one of the 16 named ANSI indices,
// used in HighlightTerminal mode regardless of the active Theme.
var terminalPalette = map[Capture]uint8{
	CaptureKeyword:     5, // magenta
	CaptureString:      2, // green
	CaptureComment:     8, // bright black
	CaptureNumber:      3, // yellow
	CaptureFunction:    4, // blue
	CaptureType:        6, // cyan
	CaptureOperator:    7, // white
	CapturePunctuation: 7,
	CaptureDefault:     7,
}

var lexicalKeywords = map[string]bool{
	"func": true, "package": true, "import": true, "return": true,
	"if": true, "else": true, "for": true, "range": true, "switch": true,
	"case": true, "default": true, "break": true, "continue": true,
	"var": true, "const": true, "type": true, "struct": true,
	"interface": true, "map": true, "chan": true, "go": true, "defer": true,
	"select": true, "fallthrough": true, "goto": true, "nil": true,
	"true": true, "false": true, "let": true, "fn": true, "end": true,
	"class": true, "def": true, "import_as": true,
}

// lineLexer is a single-file Highlighter that re-tokenizes lines on demand
// rather than keeping an incremental parse tree; adequate for a line-
// oriented token classifier with no cross-line grammar state beyond block
// comments.
type lineLexer struct {
	theme        Theme
	dirty        map[int]bool
	inBlockComment bool
}

// NewLineLexer returns a Highlighter that classifies tokens with simple
// lexical rules (keywords, quoted strings, numbers, // and /* */ comments)
// rather than a full grammar.
func NewLineLexer(theme Theme) Highlighter {
	return &lineLexer{theme: theme, dirty: make(map[int]bool)}
}

func (h *lineLexer) MarkDirty(r core.Range) {
	for line := r.Start.Line; line <= r.End.Line; line++ {
		h.dirty[line] = true
	}
}

func (h *lineLexer) UpdateTheme(th Theme) {
	h.theme = th
}

func (h *lineLexer) EnsureParsed(buf *core.Buffer) error {
	for line := range h.dirty {
		delete(h.dirty, line)
	}
	return nil
}

func (h *lineLexer) ViewportColors(buf *core.Buffer, startLine, endLine int, mode HighlightMode) []HighlightSpan {
	var spans []HighlightSpan
	inBlock := false
	for line := 0; line <= endLine && line < buf.LineCount(); line++ {
		tokens, stillInBlock := tokenizeLine(buf.LineContent(line), inBlock)
		inBlock = stillInBlock
		if line < startLine {
			continue
		}
		for _, tok := range tokens {
			spans = append(spans, HighlightSpan{
				Line:     line,
				StartCol: tok.start,
				EndCol:   tok.end,
				Fg:       h.resolve(tok.capture, mode),
			})
		}
	}
	return spans
}

func (h *lineLexer) resolve(cap Capture, mode HighlightMode) CellColor {
	if mode == HighlightTerminal {
		return Ansi256(terminalPalette[cap])
	}
	switch cap {
	case CaptureKeyword:
		return h.theme.SearchMatch.ToCellColor()
	case CaptureString:
		return h.theme.SearchMatchCurrent.ToCellColor()
	case CaptureComment:
		return h.theme.LineNumber.ToCellColor()
	default:
		return h.theme.Foreground.ToCellColor()
	}
}

type token struct {
	start, end int
	capture    Capture
}

// tokenizeLine classifies runs of a line into identifiers/keywords,
// strings, numbers, block/line comments, and punctuation/operators.
// inBlock carries block-comment state across the call boundary; the
// returned bool is that state after processing this line.
func tokenizeLine(line string, inBlock bool) ([]token, bool) {
	runes := []rune(line)
	var tokens []token
	i := 0
	for i < len(runes) {
		switch {
		case inBlock:
			end := indexOf(runes, i, "*/")
			if end < 0 {
				tokens = append(tokens, token{i, len(runes), CaptureComment})
				i = len(runes)
			} else {
				tokens = append(tokens, token{i, end + 2, CaptureComment})
				i = end + 2
				inBlock = false
			}
		case hasPrefixAt(runes, i, "//"):
			tokens = append(tokens, token{i, len(runes), CaptureComment})
			i = len(runes)
		case hasPrefixAt(runes, i, "/*"):
			end := indexOf(runes, i+2, "*/")
			if end < 0 {
				tokens = append(tokens, token{i, len(runes), CaptureComment})
				i = len(runes)
				inBlock = true
			} else {
				tokens = append(tokens, token{i, end + 2, CaptureComment})
				i = end + 2
			}
		case runes[i] == '"' || runes[i] == '\'' || runes[i] == '`':
			quote := runes[i]
			j := i + 1
			for j < len(runes) && runes[j] != quote {
				if runes[j] == '\\' && j+1 < len(runes) {
					j++
				}
				j++
			}
			if j < len(runes) {
				j++
			}
			tokens = append(tokens, token{i, j, CaptureString})
			i = j
		case unicode.IsDigit(runes[i]):
			j := i
			for j < len(runes) && (unicode.IsDigit(runes[j]) || runes[j] == '.' || runes[j] == '_') {
				j++
			}
			tokens = append(tokens, token{i, j, CaptureNumber})
			i = j
		case unicode.IsLetter(runes[i]) || runes[i] == '_':
			j := i
			for j < len(runes) && (unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j]) || runes[j] == '_') {
				j++
			}
			word := string(runes[i:j])
			capture := CaptureDefault
			switch {
			case lexicalKeywords[word]:
				capture = CaptureKeyword
			case j < len(runes) && runes[j] == '(':
				capture = CaptureFunction
			case len(word) > 0 && unicode.IsUpper(runes[i]):
				capture = CaptureType
			}
			tokens = append(tokens, token{i, j, capture})
			i = j
		case unicode.IsSpace(runes[i]):
			i++
		default:
			j := i
			for j < len(runes) && isOperatorRune(runes[j]) {
				j++
			}
			if j == i {
				j++
			}
			tokens = append(tokens, token{i, j, CapturePunctuation})
			i = j
		}
	}
	return tokens, inBlock
}

func isOperatorRune(r rune) bool {
	return strings.ContainsRune("+-*/%=<>!&|^~.,:;(){}[]", r)
}

func hasPrefixAt(runes []rune, i int, prefix string) bool {
	p := []rune(prefix)
	if i+len(p) > len(runes) {
		return false
	}
	for k, r := range p {
		if runes[i+k] != r {
			return false
		}
	}
	return true
}

func indexOf(runes []rune, from int, sub string) int {
	s := []rune(sub)
	for i := from; i+len(s) <= len(runes); i++ {
		match := true
		for k, r := range s {
			if runes[i+k] != r {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
