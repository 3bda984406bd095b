package weaver

import "go.trai.ch/weave/internal/core/domain"

// CollectDefinitions exposes the definition traversal order for testing.
func CollectDefinitions(defs []*domain.Definition) []*domain.Definition {
	return collectDefinitions(defs)
}
