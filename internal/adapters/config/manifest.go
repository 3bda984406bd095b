package config

import (
	"strconv"
	"strings"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	referencePrefix = "@"
	inlineClassKey  = "class"
)

// buildClasses links the declared classes to their parents and expands inherited methods.
// A parent that is not declared becomes a leaf without a source file.
func buildClasses(dtos []ClassDTO, baseDir string) (map[string]*domain.ClassMetadata, error) {
	classes := make(map[string]*domain.ClassMetadata, len(dtos))
	byName := make(map[string]*ClassDTO, len(dtos))

	for i := range dtos {
		dto := &dtos[i]
		if dto.Name == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidManifest, "class name is required"), "index", i)
		}
		if _, dup := byName[dto.Name]; dup {
			return nil, zerr.With(domain.ErrInvalidManifest, "duplicate_class", dto.Name)
		}
		byName[dto.Name] = dto
		classes[dto.Name] = &domain.ClassMetadata{
			Name:  dto.Name,
			File:  resolvePath(baseDir, dto.File),
			Final: dto.Final,
		}
	}

	done := make(map[string]bool, len(dtos))
	var link func(name string, visiting map[string]bool) error
	link = func(name string, visiting map[string]bool) error {
		if done[name] {
			return nil
		}
		if visiting[name] {
			return zerr.With(domain.ErrInvalidManifest, "inheritance_cycle", name)
		}
		visiting[name] = true

		dto := byName[name]
		class := classes[name]
		for _, m := range dto.Methods {
			declaring := m.DeclaredBy
			if declaring == "" {
				declaring = name
			}
			class.Methods = append(class.Methods, domain.Method{Name: m.Name, DeclaringClass: declaring})
		}

		if dto.Parent != "" {
			parent, known := classes[dto.Parent]
			if known {
				if err := link(dto.Parent, visiting); err != nil {
					return err
				}
			} else {
				parent = &domain.ClassMetadata{Name: dto.Parent}
			}
			class.Parent = parent
			class.Methods = appendInherited(class.Methods, parent.Methods)
		}

		done[name] = true
		return nil
	}

	for i := range dtos {
		if err := link(dtos[i].Name, make(map[string]bool)); err != nil {
			return nil, err
		}
	}
	return classes, nil
}

func appendInherited(own, inherited []domain.Method) []domain.Method {
	names := make(map[string]struct{}, len(own))
	for _, m := range own {
		names[m.Name] = struct{}{}
	}
	for _, m := range inherited {
		if _, overridden := names[m.Name]; overridden {
			continue
		}
		own = append(own, m)
	}
	return own
}

type definitionBuilder struct {
	baseDir string
}

func (b *definitionBuilder) definition(dto *ComponentDTO, id string) (*domain.Definition, error) {
	def := &domain.Definition{
		ID:        id,
		Class:     dto.Class,
		File:      resolvePath(b.baseDir, dto.File),
		Synthetic: dto.Synthetic,
		Factory:   dto.Factory,
	}

	args, err := b.values(dto.Arguments, id)
	if err != nil {
		return nil, err
	}
	def.Arguments = args

	for i, call := range dto.Calls {
		callArgs, err := b.values(call.Arguments, id+".calls."+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		def.MethodCalls = append(def.MethodCalls, domain.MethodCall{Method: call.Method, Arguments: callArgs})
	}

	if len(dto.Properties) > 0 {
		def.Properties = make(map[string]any, len(dto.Properties))
		for k, v := range dto.Properties {
			value, err := b.value(v, id+"."+k)
			if err != nil {
				return nil, err
			}
			def.Properties[k] = value
		}
	}

	for _, tag := range dto.Tags {
		def.Tags = append(def.Tags, domain.Tag{Name: tag.Name, Attributes: tag.Attributes})
	}

	if dto.Pointcut != nil {
		def.Pointcut = &domain.PointcutPatterns{
			Classes: dto.Pointcut.Classes,
			Methods: dto.Pointcut.Methods,
			Inherit: dto.Pointcut.Inherit,
		}
	}

	return def, nil
}

func (b *definitionBuilder) values(in []any, path string) ([]any, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]any, len(in))
	for i, v := range in {
		value, err := b.value(v, path+"."+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		out[i] = value
	}
	return out, nil
}

// value converts a raw configuration value. Strings starting with @ are references (@@
// escapes a literal @). Mappings with a class key are inline definitions.
func (b *definitionBuilder) value(v any, path string) (any, error) {
	switch val := v.(type) {
	case string:
		if strings.HasPrefix(val, referencePrefix+referencePrefix) {
			return val[1:], nil
		}
		if strings.HasPrefix(val, referencePrefix) {
			return domain.Reference(val[1:]), nil
		}
		return val, nil
	case []any:
		return b.values(val, path)
	case map[string]any:
		if _, inline := val[inlineClassKey]; inline {
			return b.inline(val, path)
		}
		out := make(map[string]any, len(val))
		for k, item := range val {
			value, err := b.value(item, path+"."+k)
			if err != nil {
				return nil, err
			}
			out[k] = value
		}
		return out, nil
	default:
		return val, nil
	}
}

func (b *definitionBuilder) inline(raw map[string]any, path string) (*domain.Definition, error) {
	data, err := yaml.Marshal(raw)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidManifest.Error()), "path", path)
	}
	var dto ComponentDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidManifest.Error()), "path", path)
	}
	id := dto.ID
	if id == "" {
		id = path
	}
	return b.definition(&dto, id)
}
