package domain

// Compilation cache prefixes. Each prefix is an independent key space.
const (
	// PrefixModifiedFile maps a source file path to its last seen modification time.
	PrefixModifiedFile = "modified_file"
	// PrefixPointcutsMatch maps pointcuts hash + class file to the class match result.
	PrefixPointcutsMatch = "pointcuts_match"
	// PrefixClassAdvices maps pointcuts hash + class file to the class advice.
	PrefixClassAdvices = "class_advices"
	// PrefixClassNameMethods maps pointcuts hash + class file to the declaring-class projection.
	PrefixClassNameMethods = "class_name_methods"
	// PrefixProxyGenerated maps proxy class name + advice hash to a generated marker.
	PrefixProxyGenerated = "proxy_generated"
)

// ClassKey builds the cache key for per-class entries.
func ClassKey(pointcutsHash, classFile string) string {
	return pointcutsHash + classFile
}

// ProxyKey builds the cache key for proxy generation records.
func ProxyKey(proxyClass, adviceHash string) string {
	return proxyClass + adviceHash
}
