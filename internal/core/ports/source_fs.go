package ports

import "io/fs"

// SourceFS is the engine's only view of the filesystem.
//
//go:generate go run go.uber.org/mock/mockgen -source=source_fs.go -destination=mocks/mock_source_fs.go -package=mocks
type SourceFS interface {
	// ReadFile reads the whole file. The file is closed before it returns.
	ReadFile(path string) ([]byte, error)
	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)
}

// FileExpander expands declared file patterns into concrete paths.
type FileExpander interface {
	// Expand resolves patterns relative to root. Plain paths are returned unchanged even if missing.
	Expand(patterns []string, root string) ([]string, error)
}
