package container

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// CompiledFileName is the name of the compiled container written to the cache directory.
const CompiledFileName = "container.yaml"

// Compiled is the serialized form of a compiled container.
// Values use the manifest notation: references are written as "@id".
type Compiled struct {
	Components   []Component                    `yaml:"components"`
	Pointcuts    map[string]string              `yaml:"pointcuts,omitempty"`
	Interceptors map[string]map[string][]string `yaml:"interceptors,omitempty"`
	Resources    []string                       `yaml:"resources,omitempty"`
}

// Component is one compiled definition.
type Component struct {
	ID         string         `yaml:"id,omitempty"`
	Class      string         `yaml:"class,omitempty"`
	File       string         `yaml:"file,omitempty"`
	Synthetic  bool           `yaml:"synthetic,omitempty"`
	Factory    bool           `yaml:"factory,omitempty"`
	Arguments  []any          `yaml:"arguments,omitempty"`
	Calls      []Call         `yaml:"calls,omitempty"`
	Properties map[string]any `yaml:"properties,omitempty"`
	Tags       []Tag          `yaml:"tags,omitempty"`
}

// Call is a compiled post-construction call.
type Call struct {
	Method    string `yaml:"method"`
	Arguments []any  `yaml:"arguments,omitempty"`
}

// Tag is a compiled component tag.
type Tag struct {
	Name       string            `yaml:"name"`
	Attributes map[string]string `yaml:"attributes,omitempty"`
}

// Compile snapshots the container state.
func (m *Manifest) Compile() *Compiled {
	out := &Compiled{
		Components: make([]Component, 0, len(m.project.Definitions)),
		Resources:  m.resources,
	}
	for _, def := range m.project.Definitions {
		out.Components = append(out.Components, component(def))
	}
	if len(m.references) > 0 {
		out.Pointcuts = make(map[string]string, len(m.references))
		for _, ref := range m.references {
			out.Pointcuts[ref.Interceptor] = ref.ComponentID
		}
	}
	if len(m.interceptors) > 0 {
		out.Interceptors = m.interceptors
	}
	return out
}

// WriteFile writes the compiled container to path as YAML.
func (m *Manifest) WriteFile(path string) error {
	data, err := yaml.Marshal(m.Compile())
	if err != nil {
		return zerr.Wrap(err, "failed to encode compiled container")
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", path)
	}
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write compiled container"), "path", path)
	}
	return nil
}

func component(def *domain.Definition) Component {
	c := Component{
		ID:        def.ID,
		Class:     def.Class,
		File:      def.File,
		Synthetic: def.Synthetic,
		Factory:   def.Factory,
		Arguments: values(def.Arguments),
	}
	for _, call := range def.MethodCalls {
		c.Calls = append(c.Calls, Call{Method: call.Method, Arguments: values(call.Arguments)})
	}
	if len(def.Properties) > 0 {
		c.Properties = make(map[string]any, len(def.Properties))
		for k, v := range def.Properties {
			c.Properties[k] = value(v)
		}
	}
	for _, tag := range def.Tags {
		c.Tags = append(c.Tags, Tag{Name: tag.Name, Attributes: tag.Attributes})
	}
	return c
}

func values(in []any) []any {
	if len(in) == 0 {
		return nil
	}
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = value(v)
	}
	return out
}

func value(v any) any {
	switch val := v.(type) {
	case domain.Reference:
		return "@" + string(val)
	case string:
		if strings.HasPrefix(val, "@") {
			return "@" + val
		}
		return val
	case *domain.Definition:
		return component(val)
	case []any:
		return values(val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = value(item)
		}
		return out
	default:
		return val
	}
}
