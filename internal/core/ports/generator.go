package ports

import "go.trai.ch/weave/internal/core/domain"

// RequiredFile references the original class source from a generated proxy.
type RequiredFile struct {
	Path string
	// Relative marks Path as relative to the proxy's directory.
	Relative bool
}

// ProxyRequest carries everything a generator needs to write one proxy class.
type ProxyRequest struct {
	Class *domain.ClassMetadata
	// Methods restricts interception to the advised methods.
	Methods domain.MethodFilter
	Naming  NamingStrategy
	// RequiredFile is nil when the original class has no known source file.
	RequiredFile *RequiredFile
	// Target is the file the proxy source is written to.
	Target string
}

// ProxyGenerator renders proxy classes.
//
//go:generate mockgen -source=generator.go -destination=mocks/mock_generator.go -package=mocks
type ProxyGenerator interface {
	// Generate writes the proxy source for the request to req.Target.
	Generate(req ProxyRequest) error
}

// NamingStrategy maps a class to its proxy class name.
type NamingStrategy interface {
	ClassName(class *domain.ClassMetadata) string
}
