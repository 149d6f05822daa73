package recipefile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/recipe/internal/adapters/config"
	"go.trai.ch/recipe/internal/adapters/logger"
	"go.trai.ch/recipe/internal/core/ports"
)

const (
	// LoaderNodeID is the unique identifier for the manifest loader Graft node.
	LoaderNodeID graft.ID = "adapter.manifest_loader"
	// EncoderNodeID is the unique identifier for the manifest encoder Graft node.
	EncoderNodeID graft.ID = "adapter.manifest_encoder"
)

func init() {
	graft.Register(graft.Node[ports.ManifestLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ManifestLoader, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewLoader(log, settings.CacheSize)
		},
	})

	graft.Register(graft.Node[ports.ManifestEncoder]{
		ID:        EncoderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestEncoder, error) {
			return NewEncoder(), nil
		},
	})
}
