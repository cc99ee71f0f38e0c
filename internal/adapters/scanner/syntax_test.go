package scanner_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rbuild/internal/adapters/scanner"
	"go.trai.ch/rbuild/internal/core/domain"
)

func TestSyntax_Scan(t *testing.T) {
	s, err := scanner.NewSyntax()
	require.NoError(t, err)
	assert.Equal(t, scanner.SyntaxName, s.Name())

	src := `#include "precomp.h"
/* #include "hidden.h" */
#ifdef DBG
#include <debug.h>
#endif
#include HEADER_MACRO

int main(void) { return 0; }
`
	got := slices.Collect(s.Scan([]byte(src)))
	assert.Equal(t, []domain.IncludeRef{q("precomp.h"), a("debug.h")}, got)
}

func TestSyntax_Scan_StopsEarlyAndRepeats(t *testing.T) {
	s, err := scanner.NewSyntax()
	require.NoError(t, err)
	src := []byte("#include <a.h>\n#include <b.h>\n#include <c.h>\n")

	for range 200 {
		var first []domain.IncludeRef
		for ref := range s.Scan(src) {
			first = append(first, ref)
			break
		}
		require.Equal(t, []domain.IncludeRef{a("a.h")}, first)
	}
	assert.Len(t, slices.Collect(s.Scan(src)), 3)
}

func TestSyntax_Scan_Empty(t *testing.T) {
	s, err := scanner.NewSyntax()
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(s.Scan(nil)))
}

func TestRegistry_Scanner(t *testing.T) {
	syntax, err := scanner.NewSyntax()
	require.NoError(t, err)
	r := scanner.NewRegistry(scanner.NewLexical(), syntax)

	s, err := r.Scanner("")
	require.NoError(t, err)
	assert.Equal(t, scanner.LexicalName, s.Name())

	s, err = r.Scanner("SYNTAX")
	require.NoError(t, err)
	assert.Equal(t, scanner.SyntaxName, s.Name())

	_, err = r.Scanner("clang")
	require.ErrorIs(t, err, domain.ErrUnknownScanner)
	assert.Equal(t, []string{"lexical", "syntax"}, r.Names())
}
