package scanner

import (
	"context"
	"iter"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
	"go.trai.ch/rbuild/internal/core/domain"
	"go.trai.ch/rbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// SyntaxName is the registry name of the Syntax scanner.
const SyntaxName = "syntax"

const includeQuery = `(preproc_include path: (_) @path)`

var _ ports.IncludeScanner = (*Syntax)(nil)

// Syntax finds #include directives by parsing the file with the tree-sitter C grammar.
// It tolerates broken code and ignores anything inside comments and string literals.
type Syntax struct {
	lang  *sitter.Language
	query *sitter.Query
}

// NewSyntax creates a Syntax scanner.
func NewSyntax() (*Syntax, error) {
	lang := c.GetLanguage()
	query, err := sitter.NewQuery([]byte(includeQuery), lang)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to compile include query")
	}
	return &Syntax{lang: lang, query: query}, nil
}

// Name returns "syntax".
func (s *Syntax) Name() string {
	return SyntaxName
}

// Scan parses content and yields include references in file order.
// A file that cannot be parsed yields nothing.
func (s *Syntax) Scan(content []byte) iter.Seq[domain.IncludeRef] {
	return func(yield func(domain.IncludeRef) bool) {
		parser := sitter.NewParser()
		defer parser.Close()
		parser.SetLanguage(s.lang)
		tree, err := parser.ParseCtx(context.Background(), nil, content)
		if err != nil {
			return
		}
		defer tree.Close()

		qc := sitter.NewQueryCursor()
		defer qc.Close()
		qc.Exec(s.query, tree.RootNode())
		for {
			m, ok := qc.NextMatch()
			if !ok {
				return
			}
			for _, capture := range m.Captures {
				ref, ok := includeRef(capture.Node, content)
				if !ok {
					continue
				}
				if !yield(ref) {
					return
				}
			}
		}
	}
}

func includeRef(node *sitter.Node, content []byte) (domain.IncludeRef, bool) {
	text := node.Content(content)
	if len(text) < 3 {
		return domain.IncludeRef{}, false
	}
	switch node.Type() {
	case "string_literal":
		if text[0] != '"' || text[len(text)-1] != '"' {
			return domain.IncludeRef{}, false
		}
		return domain.IncludeRef{Name: text[1 : len(text)-1], Quoted: true}, true
	case "system_lib_string":
		if text[0] != '<' || text[len(text)-1] != '>' {
			return domain.IncludeRef{}, false
		}
		return domain.IncludeRef{Name: text[1 : len(text)-1]}, true
	default:
		// Macro include targets are identifiers.
		return domain.IncludeRef{}, false
	}
}
