package domain

// MethodAdvice lists the interceptors advising one method, in pointcut registration order.
type MethodAdvice struct {
	Method       string   `msgpack:"m"`
	Interceptors []string `msgpack:"i"`
}

// ClassAdvice maps the advised methods of one class to their interceptors.
// It is ordered by method declaration order so its content hash is deterministic.
type ClassAdvice []MethodAdvice

// MethodFilter is the set of method names a proxy intercepts.
type MethodFilter map[string]struct{}

// Allows reports whether the named method is intercepted.
func (f MethodFilter) Allows(name string) bool {
	_, ok := f[name]
	return ok
}

// Methods returns the set of advised method names.
func (a ClassAdvice) Methods() MethodFilter {
	set := make(MethodFilter, len(a))
	for _, m := range a {
		set[m.Method] = struct{}{}
	}
	return set
}

// ClassNameMethods maps a declaring class name to method name to interceptors.
// It attributes advice to the class that declares each method rather than the matched subclass.
type ClassNameMethods map[string]map[string][]string

// Add records the interceptors for a method of the given declaring class.
func (c ClassNameMethods) Add(className, method string, interceptors []string) {
	methods, ok := c[className]
	if !ok {
		methods = make(map[string][]string)
		c[className] = methods
	}
	methods[method] = interceptors
}

// InterceptorIndex is the build-wide index handed to the runtime interceptor loader.
// It has the same shape as ClassNameMethods and merges the projections of every class.
type InterceptorIndex map[string]map[string][]string

// Merge folds a class projection into the index. Later entries overwrite earlier ones.
func (idx InterceptorIndex) Merge(methods ClassNameMethods) {
	for className, advice := range methods {
		target, ok := idx[className]
		if !ok {
			target = make(map[string][]string, len(advice))
			idx[className] = target
		}
		for method, interceptors := range advice {
			target[method] = interceptors
		}
	}
}
