package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/recipe/internal/adapters/config"
	"go.trai.ch/recipe/internal/core/ports"
)

// NodeID is the unique identifier for the read record store Graft node.
const NodeID graft.ID = "adapter.read_record_store"

func init() {
	graft.Register(graft.Node[ports.ReadRecordStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.ReadRecordStore, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}

			store, err := NewStore(settings.StateFile)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
