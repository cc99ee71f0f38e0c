package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rbuild/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/rbuild/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/rbuild/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/rbuild/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/rbuild/internal/adapters/scanner"            //nolint:depguard // Wired in app layer
	"go.trai.ch/rbuild/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/rbuild/internal/core/ports"
	"go.trai.ch/rbuild/internal/engine/scheduler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.SourceFSNodeID,
			fs.IncludeResolverNodeID,
			scanner.NodeID,
			cas.ScanCacheNodeID,
			cas.FragmentStoreNodeID,
			progrock.NodeID,
			scheduler.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ProjectLoader](ctx)
	if err != nil {
		return nil, err
	}
	fsys, err := graft.Dep[ports.SourceFS](ctx)
	if err != nil {
		return nil, err
	}
	resolver, err := graft.Dep[ports.PathResolver](ctx)
	if err != nil {
		return nil, err
	}
	scanners, err := graft.Dep[ports.ScannerSet](ctx)
	if err != nil {
		return nil, err
	}
	scanCache, err := graft.Dep[ports.ScanCache](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.FragmentStore](ctx)
	if err != nil {
		return nil, err
	}
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	sched, err := graft.Dep[*scheduler.Scheduler](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, fsys, scanners, resolver, scanCache, store, telemetry, sched, log), nil
}
