package compcache

import "go.trai.ch/weave/internal/core/domain"

// HasClassModified reports whether the file changed since it was last stamped, and stamps the
// current modification time. A file that was never stamped counts as modified. A file whose
// modification time cannot be read counts as modified and is left unstamped.
func (c *Cache) HasClassModified(file string) bool {
	current, err := c.fingerprinter.ModTime(file)
	if err != nil {
		c.logger.Debug("cannot fingerprint " + file + ": " + err.Error())
		return true
	}

	previous, ok := FetchValue[int64](c, domain.PrefixModifiedFile, file)
	SaveValue(c, domain.PrefixModifiedFile, file, current)

	return !ok || previous != current
}

// MatchResult returns whether any pointcut matched the class file under the given set hash.
func (c *Cache) MatchResult(pointcutsHash, file string) (matched, ok bool) {
	return FetchValue[bool](c, domain.PrefixPointcutsMatch, domain.ClassKey(pointcutsHash, file))
}

// SaveMatchResult records the class match result.
func (c *Cache) SaveMatchResult(pointcutsHash, file string, matched bool) {
	SaveValue(c, domain.PrefixPointcutsMatch, domain.ClassKey(pointcutsHash, file), matched)
}

// ClassAdvice returns the advice recorded for the class file.
func (c *Cache) ClassAdvice(pointcutsHash, file string) (domain.ClassAdvice, bool) {
	return FetchValue[domain.ClassAdvice](c, domain.PrefixClassAdvices, domain.ClassKey(pointcutsHash, file))
}

// SaveClassAdvice records the advice of the class file.
func (c *Cache) SaveClassAdvice(pointcutsHash, file string, advice domain.ClassAdvice) {
	if advice == nil {
		advice = domain.ClassAdvice{}
	}
	SaveValue(c, domain.PrefixClassAdvices, domain.ClassKey(pointcutsHash, file), advice)
}

// ClassNameMethods returns the declaring-class projection recorded for the class file.
func (c *Cache) ClassNameMethods(pointcutsHash, file string) (domain.ClassNameMethods, bool) {
	return FetchValue[domain.ClassNameMethods](c, domain.PrefixClassNameMethods, domain.ClassKey(pointcutsHash, file))
}

// SaveClassNameMethods records the declaring-class projection of the class file.
func (c *Cache) SaveClassNameMethods(pointcutsHash, file string, methods domain.ClassNameMethods) {
	if methods == nil {
		methods = domain.ClassNameMethods{}
	}
	SaveValue(c, domain.PrefixClassNameMethods, domain.ClassKey(pointcutsHash, file), methods)
}

// ProxyGenerated reports whether the proxy was generated for the given advice content hash.
func (c *Cache) ProxyGenerated(proxyClass, adviceHash string) bool {
	generated, ok := FetchValue[bool](c, domain.PrefixProxyGenerated, domain.ProxyKey(proxyClass, adviceHash))
	return ok && generated
}

// SaveProxyGenerated records that the proxy was generated for the given advice content hash.
func (c *Cache) SaveProxyGenerated(proxyClass, adviceHash string) {
	SaveValue(c, domain.PrefixProxyGenerated, domain.ProxyKey(proxyClass, adviceHash), true)
}
