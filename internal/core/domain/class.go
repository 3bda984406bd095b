package domain

import "strings"

const (
	// NamespaceSeparator separates the segments of a fully-qualified class name.
	NamespaceSeparator = `\`

	// ProxyMarker separates a proxy naming prefix from the user class name.
	ProxyMarker = "__CG__"

	// ConstructorName is the method name that is never advised.
	ConstructorName = "__construct"
)

// Method describes a single overridable method of a class.
type Method struct {
	Name string
	// DeclaringClass is the fully-qualified name of the class that declares the method.
	// It differs from the owning class when the method is inherited.
	DeclaringClass string
}

// IsConstructor reports whether the method is the class constructor.
func (m Method) IsConstructor() bool {
	return m.Name == ConstructorName
}

// ClassMetadata is the build-time description of a class, produced by a static analysis
// step outside of weave. The core never inspects classes on its own.
type ClassMetadata struct {
	// Name is the fully-qualified class name.
	Name string
	// File is the absolute path of the source file, empty when unknown.
	File string
	// Final marks classes that cannot be subclassed.
	Final bool
	// Methods lists the overridable methods in declaration order.
	Methods []Method
	// Parent is the direct ancestor, nil for root classes.
	Parent *ClassMetadata
}

// OverridableMethods returns the methods a proxy may intercept, constructors excluded.
func (c *ClassMetadata) OverridableMethods() []Method {
	methods := make([]Method, 0, len(c.Methods))
	for _, m := range c.Methods {
		if m.IsConstructor() {
			continue
		}
		methods = append(methods, m)
	}
	return methods
}

// SourceChain returns the source files of the class and its ancestors.
// The walk stops at the first ancestor without a known source file.
func (c *ClassMetadata) SourceChain() []string {
	var files []string
	for class := c; class != nil && class.File != ""; class = class.Parent {
		files = append(files, class.File)
	}
	return files
}

// UserClassName strips a proxy naming prefix from a class name, returning the name of the
// class the user wrote. Names without the proxy marker are returned unchanged.
func UserClassName(name string) string {
	marker := NamespaceSeparator + ProxyMarker + NamespaceSeparator
	pos := strings.LastIndex(name, marker)
	if pos < 0 {
		return name
	}
	return name[pos+len(marker):]
}
