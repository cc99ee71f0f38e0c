package ports

import (
	"iter"

	"go.trai.ch/rbuild/internal/core/domain"
)

// IncludeScanner finds include directives in file content.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type IncludeScanner interface {
	// Name identifies the backend. It is part of scan cache keys.
	Name() string
	// Scan yields include references in the order they appear.
	// Lines it cannot make sense of are skipped.
	Scan(content []byte) iter.Seq[domain.IncludeRef]
}

// ScannerSet selects a scanner backend by name.
type ScannerSet interface {
	// Scanner returns the named backend.
	Scanner(name string) (IncludeScanner, error)
}

// PathResolver maps an include reference to a file on disk.
type PathResolver interface {
	// Resolve returns the normalized absolute path of ref, searching includingDir first for
	// quoted references and then searchDirs in order. ok is false when nothing matches.
	Resolve(includingDir string, ref domain.IncludeRef, searchDirs []string) (path string, ok bool)
}

// ScanCache remembers scan results across runs.
type ScanCache interface {
	// Get returns the cached references for key.
	Get(key ScanKey) ([]domain.IncludeRef, bool)
	// Put records the references scanned for key.
	Put(key ScanKey, refs []domain.IncludeRef)
	// Flush persists pending entries.
	Flush() error
}
