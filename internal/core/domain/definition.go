package domain

import (
	"iter"
	"slices"
)

const (
	// PointcutTag marks container components that provide a pointcut.
	PointcutTag = "weave.pointcut"

	// InterceptorAttribute is the pointcut tag attribute naming the advised interceptor.
	InterceptorAttribute = "interceptor"

	// InterceptorLoaderID is the container id of the runtime interceptor loader.
	InterceptorLoaderID = "weave.interceptor_loader"

	// SetLoaderMethod is the post-construction call added to every proxied definition.
	SetLoaderMethod = "__CGInterception__setLoader"
)

// Reference points at another container component by id.
type Reference string

// MethodCall is a post-construction call configured on a definition.
type MethodCall struct {
	Method    string
	Arguments []any
}

// Tag is a named marker with attributes attached to a definition.
type Tag struct {
	Name       string
	Attributes map[string]string
}

// PointcutPatterns declares a pattern pointcut on a component.
type PointcutPatterns struct {
	Classes []string
	Methods []string
	Inherit bool
}

// Definition describes a component registered in the container.
//
// Arguments, method call arguments and property values are scalars, References, nested
// []any lists, or *Definition values for inline components.
type Definition struct {
	ID          string
	Class       string
	File        string
	Synthetic   bool
	Factory     bool
	Arguments   []any
	MethodCalls []MethodCall
	Properties  map[string]any
	Tags        []Tag
	// Pointcut is set on components that provide a declarative pointcut.
	Pointcut *PointcutPatterns
}

// Weavable reports whether the definition's concrete class is known at build time.
func (d *Definition) Weavable() bool {
	return !d.Synthetic && !d.Factory && d.Class != ""
}

// Redirect points the definition at a generated proxy and wires the interceptor loader.
func (d *Definition) Redirect(proxyClass, proxyFile string) {
	d.Class = proxyClass
	d.File = proxyFile
	d.MethodCalls = append(d.MethodCalls, MethodCall{
		Method:    SetLoaderMethod,
		Arguments: []any{Reference(InterceptorLoaderID)},
	})
}

// Tag returns the first tag with the given name.
func (d *Definition) Tag(name string) (Tag, bool) {
	for _, t := range d.Tags {
		if t.Name == name {
			return t, true
		}
	}
	return Tag{}, false
}

// InlineDefinitions yields definitions embedded in arguments, method calls and properties,
// depth first. Property and map values are visited in key order.
func (d *Definition) InlineDefinitions() iter.Seq[*Definition] {
	return func(yield func(*Definition) bool) {
		_ = walkValues(d.Arguments, yield) &&
			walkCalls(d.MethodCalls, yield) &&
			walkProperties(d.Properties, yield)
	}
}

func walkCalls(calls []MethodCall, yield func(*Definition) bool) bool {
	for _, call := range calls {
		if !walkValues(call.Arguments, yield) {
			return false
		}
	}
	return true
}

func walkProperties(props map[string]any, yield func(*Definition) bool) bool {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		if !walkValue(props[k], yield) {
			return false
		}
	}
	return true
}

func walkValues(values []any, yield func(*Definition) bool) bool {
	for _, v := range values {
		if !walkValue(v, yield) {
			return false
		}
	}
	return true
}

func walkValue(v any, yield func(*Definition) bool) bool {
	switch val := v.(type) {
	case *Definition:
		if !yield(val) {
			return false
		}
		return walkValues(val.Arguments, yield) &&
			walkCalls(val.MethodCalls, yield) &&
			walkProperties(val.Properties, yield)
	case []any:
		return walkValues(val, yield)
	case map[string]any:
		return walkProperties(val, yield)
	default:
		return true
	}
}
