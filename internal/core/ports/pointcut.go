package ports

import "go.trai.ch/weave/internal/core/domain"

// Pointcut decides which classes and methods receive advice.
//
//go:generate mockgen -source=pointcut.go -destination=mocks/mock_pointcut.go -package=mocks
type Pointcut interface {
	// MatchesClass reports whether any method of the class may be advised.
	MatchesClass(class *domain.ClassMetadata) bool
	// MatchesMethod reports whether the method should be advised.
	MatchesMethod(method domain.Method) bool
}

// TypeNamer is implemented by pointcuts that report their own implementation identity.
// Pointcuts that do not implement it are identified by their Go type.
type TypeNamer interface {
	TypeName() string
}

// SourceFiler is implemented by pointcuts whose behavior is defined in a file.
// A change to that file invalidates every cached match.
type SourceFiler interface {
	SourceFile() string
}
