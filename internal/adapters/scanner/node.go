package scanner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rbuild/internal/core/ports"
)

// NodeID is the unique identifier for the scanner registry Graft node.
const NodeID graft.ID = "adapter.scanner"

func init() {
	graft.Register(graft.Node[ports.ScannerSet]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ScannerSet, error) {
			syntax, err := NewSyntax()
			if err != nil {
				return nil, err
			}
			return NewRegistry(NewLexical(), syntax), nil
		},
	})
}
