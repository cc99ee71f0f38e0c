package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rbuild/internal/adapters/fs"
	"go.trai.ch/rbuild/internal/adapters/logger"
	"go.trai.ch/rbuild/internal/core/ports"
)

// NodeID is the unique identifier for the project loader Graft node.
const NodeID graft.ID = "adapter.project_loader"

func init() {
	graft.Register(graft.Node[ports.ProjectLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.SourceFSNodeID, fs.GlobberNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ProjectLoader, error) {
			fsys, err := graft.Dep[ports.SourceFS](ctx)
			if err != nil {
				return nil, err
			}
			expander, err := graft.Dep[ports.FileExpander](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(fsys, expander, log), nil
		},
	})
}
