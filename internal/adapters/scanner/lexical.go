// Package scanner provides include scanners for C-family sources.
package scanner

import (
	"bytes"
	"iter"

	"go.trai.ch/rbuild/internal/core/domain"
	"go.trai.ch/rbuild/internal/core/ports"
)

// LexicalName is the registry name of the Lexical scanner.
const LexicalName = "lexical"

var _ ports.IncludeScanner = (*Lexical)(nil)

// Lexical finds #include, #include_next and #import lines with a line-oriented lexer.
// It strips comments but does not evaluate conditionals or expand macros.
type Lexical struct{}

// NewLexical creates a Lexical scanner.
func NewLexical() *Lexical {
	return &Lexical{}
}

// Name returns "lexical".
func (l *Lexical) Name() string {
	return LexicalName
}

// Scan yields include references lazily, in file order.
func (l *Lexical) Scan(content []byte) iter.Seq[domain.IncludeRef] {
	return func(yield func(domain.IncludeRef) bool) {
		var lx lexer
		buf := content
		for len(buf) > 0 {
			var line []byte
			if i := bytes.IndexByte(buf, '\n'); i >= 0 {
				line, buf = buf[:i], buf[i+1:]
			} else {
				line, buf = buf, nil
			}
			ref, ok := parseDirective(lx.strip(line))
			if !ok {
				continue
			}
			if !yield(ref) {
				return
			}
		}
	}
}

// lexer removes comments from successive lines, carrying block comments across lines.
type lexer struct {
	inComment bool
	out       []byte
}

func (lx *lexer) strip(line []byte) []byte {
	lx.out = lx.out[:0]
	for i := 0; i < len(line); i++ {
		c := line[i]
		if lx.inComment {
			if c == '*' && i+1 < len(line) && line[i+1] == '/' {
				lx.inComment = false
				lx.out = append(lx.out, ' ')
				i++
			}
			continue
		}
		switch {
		case c == '/' && i+1 < len(line) && line[i+1] == '*':
			lx.inComment = true
			i++
		case c == '/' && i+1 < len(line) && line[i+1] == '/':
			return lx.out
		case c == '"' || c == '\'':
			end := closingQuote(line, i)
			lx.out = append(lx.out, line[i:end]...)
			i = end - 1
		default:
			lx.out = append(lx.out, c)
		}
	}
	return lx.out
}

// closingQuote returns the index just past the literal opened at start, or len(line) if unclosed.
func closingQuote(line []byte, start int) int {
	q := line[start]
	for i := start + 1; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case q:
			return i + 1
		}
	}
	return len(line)
}

var directives = [][]byte{[]byte("include_next"), []byte("include"), []byte("import")}

func parseDirective(line []byte) (domain.IncludeRef, bool) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 || line[0] != '#' {
		return domain.IncludeRef{}, false
	}
	line = bytes.TrimSpace(line[1:])

	matched := false
	for _, d := range directives {
		if !bytes.HasPrefix(line, d) {
			continue
		}
		rest := line[len(d):]
		if len(rest) > 0 && rest[0] != ' ' && rest[0] != '\t' && rest[0] != '"' && rest[0] != '<' {
			continue
		}
		line = bytes.TrimSpace(rest)
		matched = true
		break
	}
	if !matched || len(line) == 0 {
		return domain.IncludeRef{}, false
	}

	var closing byte
	switch line[0] {
	case '"':
		closing = '"'
	case '<':
		closing = '>'
	default:
		// Macro-named includes are not expanded.
		return domain.IncludeRef{}, false
	}
	end := bytes.IndexByte(line[1:], closing)
	if end <= 0 {
		return domain.IncludeRef{}, false
	}
	return domain.IncludeRef{
		Name:   string(line[1 : end+1]),
		Quoted: closing == '"',
	}, true
}
