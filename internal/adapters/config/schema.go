package config

import "gopkg.in/yaml.v3"

// Weavefile represents the structure of the weave.yaml and weave.toml configuration files.
type Weavefile struct {
	CacheDir            string         `yaml:"cache_dir" toml:"cache_dir"`
	UseCompilationCache *bool          `yaml:"use_compilation_cache" toml:"use_compilation_cache"`
	CacheProvider       string         `yaml:"compilation_cache_provider_service" toml:"compilation_cache_provider_service"`
	ProxyExtension      string         `yaml:"proxy_extension" toml:"proxy_extension"`
	Classes             []ClassDTO     `yaml:"classes" toml:"classes"`
	Components          []ComponentDTO `yaml:"components" toml:"components"`
}

// ClassDTO describes the build-time metadata of one class.
type ClassDTO struct {
	Name    string      `yaml:"name" toml:"name"`
	File    string      `yaml:"file" toml:"file"`
	Final   bool        `yaml:"final" toml:"final"`
	Parent  string      `yaml:"parent" toml:"parent"`
	Methods []MethodDTO `yaml:"methods" toml:"methods"`
}

// MethodDTO describes a method declared by a class. In YAML a bare string is accepted.
type MethodDTO struct {
	Name       string `yaml:"name" toml:"name"`
	DeclaredBy string `yaml:"declared_by" toml:"declared_by"`
}

// UnmarshalYAML accepts either a method name or a mapping.
func (m *MethodDTO) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		m.Name = node.Value
		return nil
	}
	type plain MethodDTO
	return node.Decode((*plain)(m))
}

// ComponentDTO describes a container component.
type ComponentDTO struct {
	ID         string         `yaml:"id" toml:"id"`
	Class      string         `yaml:"class" toml:"class"`
	File       string         `yaml:"file" toml:"file"`
	Synthetic  bool           `yaml:"synthetic" toml:"synthetic"`
	Factory    bool           `yaml:"factory" toml:"factory"`
	Arguments  []any          `yaml:"arguments" toml:"arguments"`
	Calls      []CallDTO      `yaml:"calls" toml:"calls"`
	Properties map[string]any `yaml:"properties" toml:"properties"`
	Tags       []TagDTO       `yaml:"tags" toml:"tags"`
	Pointcut   *PointcutDTO   `yaml:"pointcut" toml:"pointcut"`
}

// CallDTO describes a post-construction method call.
type CallDTO struct {
	Method    string `yaml:"method" toml:"method"`
	Arguments []any  `yaml:"arguments" toml:"arguments"`
}

// TagDTO describes a component tag.
type TagDTO struct {
	Name       string            `yaml:"name" toml:"name"`
	Attributes map[string]string `yaml:"attributes" toml:"attributes"`
}

// PointcutDTO declares the patterns of a pointcut component.
type PointcutDTO struct {
	Classes []string `yaml:"classes" toml:"classes"`
	Methods []string `yaml:"methods" toml:"methods"`
	Inherit bool     `yaml:"inherit" toml:"inherit"`
}
