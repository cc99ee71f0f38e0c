package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rbuild/internal/core/ports"
)

const (
	// SourceFSNodeID identifies the host filesystem node.
	SourceFSNodeID graft.ID = "adapter.fs.source"
	// IncludeResolverNodeID identifies the include path resolver node.
	IncludeResolverNodeID graft.ID = "adapter.fs.include_resolver"
	// GlobberNodeID identifies the file pattern expander node.
	GlobberNodeID graft.ID = "adapter.fs.globber"
	// HasherNodeID identifies the content hasher node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.SourceFS]{
		ID:        SourceFSNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceFS, error) {
			return NewOSFS(), nil
		},
	})

	graft.Register(graft.Node[ports.PathResolver]{
		ID:        IncludeResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{SourceFSNodeID},
		Run: func(ctx context.Context) (ports.PathResolver, error) {
			fsys, err := graft.Dep[ports.SourceFS](ctx)
			if err != nil {
				return nil, err
			}
			return NewIncludeResolver(fsys), nil
		},
	})

	graft.Register(graft.Node[ports.FileExpander]{
		ID:        GlobberNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileExpander, error) {
			return NewGlobber(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
