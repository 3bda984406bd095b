package domain

// ClassStatus is the outcome of weaving a single class.
type ClassStatus string

const (
	// StatusUnresolved indicates the class metadata could not be resolved.
	StatusUnresolved ClassStatus = "unresolved"
	// StatusUnmatched indicates no pointcut matched the class.
	StatusUnmatched ClassStatus = "unmatched"
	// StatusFinal indicates the class matched but cannot be proxied.
	StatusFinal ClassStatus = "final"
	// StatusNoAdvice indicates the class matched but none of its methods did.
	StatusNoAdvice ClassStatus = "no-advice"
	// StatusGenerated indicates a proxy file was written.
	StatusGenerated ClassStatus = "generated"
	// StatusCached indicates an existing proxy file was reused.
	StatusCached ClassStatus = "cached"
)

// Redirect records a definition that now points at a proxy class.
type Redirect struct {
	DefinitionID  string
	OriginalClass string
	ProxyClass    string
	ProxyFile     string
	Generated     bool
}

// WeaveReport summarizes one weaving pass.
type WeaveReport struct {
	// BuildID identifies the pass in logs.
	BuildID string
	// PointcutsHash is the identity hash of the pointcut set used for the pass.
	PointcutsHash string
	// Interceptors is the global interceptor index.
	Interceptors InterceptorIndex
	// Redirects lists the definitions redirected to proxies, in processing order.
	Redirects []Redirect
	// Resources lists the source files the pass depends on, in first-seen order.
	Resources []string
	// Statuses maps each processed class name to its last outcome.
	Statuses map[string]ClassStatus
	// Recomputed counts classes whose matches were recomputed.
	Recomputed int
	// Reused counts classes whose matches were read from the compilation cache.
	Reused int
}

// NewWeaveReport creates an empty report.
func NewWeaveReport(buildID string) *WeaveReport {
	return &WeaveReport{
		BuildID:      buildID,
		Interceptors: make(InterceptorIndex),
		Statuses:     make(map[string]ClassStatus),
	}
}

// Count returns how many classes ended with the given status.
func (r *WeaveReport) Count(status ClassStatus) int {
	n := 0
	for _, s := range r.Statuses {
		if s == status {
			n++
		}
	}
	return n
}
