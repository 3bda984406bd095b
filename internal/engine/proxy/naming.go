package proxy

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/weave/internal/core/domain"
)

// NamePrefix is the fixed part of every proxy namespace.
const NamePrefix = "EnhancedProxy"

// NamingStrategy names proxies `<prefix>\__CG__\<user class>`. The prefix is derived from the
// cache directory so names are stable for one configuration.
type NamingStrategy struct {
	prefix string
}

// NewNamingStrategy creates the naming strategy for the given cache directory.
func NewNamingStrategy(cacheDir string) *NamingStrategy {
	sum := fmt.Sprintf("%016x", xxhash.Sum64String(cacheDir))
	return &NamingStrategy{prefix: NamePrefix + sum[:8]}
}

// Prefix returns the namespace prefix of generated proxies.
func (n *NamingStrategy) Prefix() string {
	return n.prefix
}

// ClassName returns the proxy class name for class.
func (n *NamingStrategy) ClassName(class *domain.ClassMetadata) string {
	return n.prefix + domain.NamespaceSeparator + domain.ProxyMarker + domain.NamespaceSeparator +
		domain.UserClassName(class.Name)
}
