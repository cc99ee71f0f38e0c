package scanner

import (
	"slices"
	"strings"

	"go.trai.ch/rbuild/internal/core/domain"
	"go.trai.ch/rbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ScannerSet = (*Registry)(nil)

// Registry holds the available scanner backends by name.
type Registry struct {
	scanners map[string]ports.IncludeScanner
}

// NewRegistry creates a Registry with the given backends.
func NewRegistry(scanners ...ports.IncludeScanner) *Registry {
	r := &Registry{scanners: make(map[string]ports.IncludeScanner, len(scanners))}
	for _, s := range scanners {
		r.scanners[s.Name()] = s
	}
	return r
}

// Scanner returns the named backend. An empty name selects the default.
func (r *Registry) Scanner(name string) (ports.IncludeScanner, error) {
	if name == "" {
		name = domain.DefaultScanner
	}
	s, ok := r.scanners[strings.ToLower(name)]
	if !ok {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrUnknownScanner, "failed to select scanner"), "scanner", name), "available", strings.Join(r.Names(), ","))
	}
	return s, nil
}

// Names returns the registered backend names in order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.scanners))
	for name := range r.scanners {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
