package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rbuild/internal/adapters/fs"
	"go.trai.ch/rbuild/internal/core/ports"
)

const (
	// FragmentStoreNodeID is the unique identifier for the fragment store Graft node.
	FragmentStoreNodeID graft.ID = "adapter.fragment_store"
	// ScanCacheNodeID is the unique identifier for the scan cache Graft node.
	ScanCacheNodeID graft.ID = "adapter.scan_cache"
)

func init() {
	graft.Register(graft.Node[ports.FragmentStore]{
		ID:        FragmentStoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID},
		Run: func(ctx context.Context) (ports.FragmentStore, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewFragmentStore(hasher), nil
		},
	})

	graft.Register(graft.Node[ports.ScanCache]{
		ID:        ScanCacheNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ScanCache, error) {
			return NewScanCache(), nil
		},
	})
}
