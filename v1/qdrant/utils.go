package qdrant

import (
	qdrant "github.com/qdrant/go-client/qdrant"
)

// extractVectorDetails reads the vector size and distance metric from a
// CollectionInfo. Qdrant nests them in "oneof" wrappers; any missing level
// yields (0, Distance_UnknownDistance).
func extractVectorDetails(info *qdrant.CollectionInfo) (int, qdrant.Distance) {
	if info == nil ||
		info.Config == nil ||
		info.Config.Params == nil ||
		info.Config.Params.VectorsConfig == nil ||
		info.Config.Params.VectorsConfig.Config == nil {
		return 0, qdrant.Distance_UnknownDistance
	}

	if cfg, ok := info.Config.Params.VectorsConfig.Config.(*qdrant.VectorsConfig_Params); ok && cfg.Params != nil {
		return int(cfg.Params.Size), cfg.Params.Distance
	}

	return 0, qdrant.Distance_UnknownDistance
}

func ptr[T any](v T) *T {
	return &v
}
