// Package config provides the configuration loader for weave.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader for weave.yaml and weave.toml files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Discover walks up from cwd and returns the first weave.yaml or weave.toml found.
// weave.yaml wins when a directory holds both.
func (l *Loader) Discover(cwd string) (string, error) {
	currentDir := cwd
	for {
		for _, name := range []string{domain.ConfigFileName, domain.TOMLConfigFileName} {
			candidate := filepath.Join(currentDir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

// Load reads the configuration file and builds the project. Relative paths are resolved
// against the directory of the file. The cache directory is created when missing.
func (l *Loader) Load(path string) (*domain.Project, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var file Weavefile
	if err := readAndUnmarshal(absPath, &file); err != nil {
		return nil, err
	}

	baseDir := filepath.Dir(absPath)
	project := &domain.Project{
		Path:     absPath,
		Settings: buildSettings(&file, baseDir),
	}

	if err := os.MkdirAll(project.Settings.CacheDir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error()), "path", project.Settings.CacheDir)
	}

	classes, err := buildClasses(file.Classes, baseDir)
	if err != nil {
		return nil, err
	}
	project.Classes = classes

	b := &definitionBuilder{baseDir: baseDir}
	seen := make(map[string]struct{}, len(file.Components))
	for i := range file.Components {
		dto := &file.Components[i]
		if dto.ID == "" {
			return nil, zerr.With(zerr.New("component id is required"), "index", i)
		}
		if _, dup := seen[dto.ID]; dup {
			return nil, zerr.With(domain.ErrInvalidManifest, "duplicate_component", dto.ID)
		}
		seen[dto.ID] = struct{}{}

		def, err := b.definition(dto, dto.ID)
		if err != nil {
			return nil, err
		}
		project.Definitions = append(project.Definitions, def)
	}

	for _, def := range project.Definitions {
		if def.Pointcut == nil {
			continue
		}
		if _, ok := def.Tag(domain.PointcutTag); !ok {
			l.Logger.Warn(fmt.Sprintf("component %q declares a pointcut but is not tagged %s", def.ID, domain.PointcutTag))
		}
	}

	return project, nil
}

func buildSettings(file *Weavefile, baseDir string) domain.Settings {
	settings := domain.DefaultSettings()
	if file.CacheDir != "" {
		settings.CacheDir = file.CacheDir
	}
	settings.CacheDir = resolvePath(baseDir, settings.CacheDir)
	if file.UseCompilationCache != nil {
		settings.UseCompilationCache = *file.UseCompilationCache
	}
	if file.CacheProvider != "" {
		settings.CacheProvider = file.CacheProvider
	}
	if file.ProxyExtension != "" {
		settings.ProxyExtension = file.ProxyExtension
	}
	return settings
}

func resolvePath(baseDir, path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(baseDir, path))
}

// readAndUnmarshal reads a YAML or TOML file, chosen by extension, into target.
func readAndUnmarshal(configPath string, target *Weavefile) error {
	// #nosec G304 -- configPath is provided by the user
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	if strings.EqualFold(filepath.Ext(configPath), ".toml") {
		err = toml.Unmarshal(data, target)
	} else {
		err = yaml.Unmarshal(data, target)
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}
	return nil
}
