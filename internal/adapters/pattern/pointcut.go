// Package pattern implements pointcuts declared with doublestar glob patterns.
package pattern

import (
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/zerr"
)

// Pointcut matches classes by fully-qualified name and methods by name.
//
// Class names are matched with namespace separators turned into slashes, so `App\Service\**`
// matches every class below the App\Service namespace.
type Pointcut struct {
	classes []string
	methods []string
	inherit bool
	source  string
}

// Spec declares a pattern pointcut.
type Spec struct {
	Classes []string
	// Methods defaults to every method.
	Methods []string
	// Inherit also matches classes whose ancestors match a class pattern.
	Inherit bool
	// Source is the file the patterns were declared in.
	Source string
}

// New validates the patterns and builds the pointcut.
func New(spec Spec) (*Pointcut, error) {
	if len(spec.Classes) == 0 {
		return nil, zerr.New("pattern pointcut requires at least one class pattern")
	}

	classes := make([]string, len(spec.Classes))
	for i, p := range spec.Classes {
		classes[i] = toPath(p)
	}
	methods := spec.Methods
	if len(methods) == 0 {
		methods = []string{"*"}
	}

	for _, p := range slices.Concat(classes, methods) {
		if !doublestar.ValidatePattern(p) {
			return nil, zerr.With(zerr.New("invalid pattern"), "pattern", p)
		}
	}

	return &Pointcut{
		classes: classes,
		methods: methods,
		inherit: spec.Inherit,
		source:  spec.Source,
	}, nil
}

func toPath(name string) string {
	return strings.ReplaceAll(name, domain.NamespaceSeparator, "/")
}

// MatchesClass reports whether the class, or an ancestor when inheriting, matches.
func (p *Pointcut) MatchesClass(class *domain.ClassMetadata) bool {
	for c := class; c != nil; c = c.Parent {
		if matchAny(p.classes, toPath(domain.UserClassName(c.Name))) {
			return true
		}
		if !p.inherit {
			return false
		}
	}
	return false
}

// MatchesMethod reports whether the method name matches.
func (p *Pointcut) MatchesMethod(method domain.Method) bool {
	return matchAny(p.methods, method.Name)
}

// TypeName identifies the pointcut by its patterns.
func (p *Pointcut) TypeName() string {
	var b strings.Builder
	b.WriteString("pattern(")
	b.WriteString(strings.Join(p.classes, ","))
	b.WriteString("|")
	b.WriteString(strings.Join(p.methods, ","))
	if p.inherit {
		b.WriteString("|inherit")
	}
	b.WriteString(")")
	return b.String()
}

// SourceFile returns the file the patterns were declared in.
func (p *Pointcut) SourceFile() string {
	return p.source
}

func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
