package ports

// FragmentStore persists per-file dependency fragments for build script generators.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type FragmentStore interface {
	// Put writes the fragment for file of module. It reports whether the stored content changed.
	Put(module, file, text string) (changed bool, err error)
	// Get returns the stored fragment, or "" and false if none exists.
	Get(module, file string) (string, bool, error)
}
