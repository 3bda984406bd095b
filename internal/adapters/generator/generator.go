// Package generator renders proxy class sources.
package generator

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/zerr"
)

const proxyTemplate = `<?php

namespace {{ .Namespace }};
{{- with .Require }}

require_once {{ . }};
{{- end }}

/**
 * Interception proxy for \{{ .Parent }}.
 * This file is generated, changes are overwritten on the next build.
 */
class {{ .ShortName }} extends \{{ .Parent }}
{
    private $__CGInterception__loader;

    public function __CGInterception__setLoader($loader)
    {
        $this->__CGInterception__loader = $loader;
    }
{{- range .Methods }}

    public function {{ .Name }}(...$args)
    {
        return $this->__CGInterception__loader->intercept($this, '{{ .DeclaringClass | escape }}', '{{ .Name }}', $args);
    }
{{- end }}
}
`

// Generator writes proxy sources from a fixed template.
type Generator struct {
	tmpl *template.Template
}

// New creates a Generator.
func New() *Generator {
	tmpl := template.Must(template.New("proxy").Funcs(template.FuncMap{
		"escape": escapeQuoted,
	}).Parse(proxyTemplate))
	return &Generator{tmpl: tmpl}
}

type proxyData struct {
	Namespace string
	ShortName string
	Parent    string
	Require   string
	Methods   []domain.Method
}

// Generate renders the proxy for the request and writes it to req.Target.
func (g *Generator) Generate(req ports.ProxyRequest) error {
	var buf bytes.Buffer
	if err := g.Render(&buf, req); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(req.Target), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create proxy directory"), "path", req.Target)
	}
	if err := os.WriteFile(req.Target, buf.Bytes(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write proxy"), "path", req.Target)
	}
	return nil
}

// Render writes the proxy source for the request to buf.
func (g *Generator) Render(buf *bytes.Buffer, req ports.ProxyRequest) error {
	if req.Class == nil || req.Naming == nil {
		return zerr.New("proxy request requires a class and a naming strategy")
	}

	namespace, short := splitClassName(req.Naming.ClassName(req.Class))
	data := proxyData{
		Namespace: namespace,
		ShortName: short,
		Parent:    req.Class.Name,
		Require:   requireExpr(req.RequiredFile),
	}
	for _, m := range req.Class.OverridableMethods() {
		if req.Methods.Allows(m.Name) {
			if m.DeclaringClass == "" {
				m.DeclaringClass = req.Class.Name
			}
			data.Methods = append(data.Methods, m)
		}
	}

	if err := g.tmpl.Execute(buf, data); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to render proxy"), "class", req.Class.Name)
	}
	return nil
}

func splitClassName(name string) (namespace, short string) {
	pos := strings.LastIndex(name, domain.NamespaceSeparator)
	if pos < 0 {
		return "", name
	}
	return name[:pos], name[pos+1:]
}

func requireExpr(file *ports.RequiredFile) string {
	if file == nil {
		return ""
	}
	path := filepath.ToSlash(file.Path)
	if file.Relative {
		return "__DIR__ . '/" + escapeQuoted(path) + "'"
	}
	return "'" + escapeQuoted(path) + "'"
}

func escapeQuoted(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
}
