package game

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/xrtour/internal/engine/scene"
	"github.com/Faultbox/xrtour/internal/game/poi"
	"github.com/Faultbox/xrtour/internal/logger"
)

// LoadAssets reads the scene and the POI registry. A missing or broken
// registry is logged and replaced by an empty one; a scene failure is an error.
func LoadAssets(ctx context.Context, scenePath, registryPath string) (Assets, error) {
	graph, err := scene.Load(scenePath)
	if err != nil {
		return Assets{}, fmt.Errorf("load scene: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Assets{}, err
	}

	registry := poi.NewRegistry()
	if registryPath != "" {
		loaded, err := poi.Load(registryPath)
		if err != nil {
			logger.Warn("registry unavailable, touring without points of interest",
				zap.String("path", registryPath),
				zap.Error(err),
			)
		} else {
			registry = loaded
		}
	}
	if err := ctx.Err(); err != nil {
		return Assets{}, err
	}

	return Assets{Graph: graph, Registry: registry}, nil
}
