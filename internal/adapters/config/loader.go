// Package config provides the project loader for rbuild.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/rbuild/internal/core/domain"
	"go.trai.ch/rbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// EnvInclude lists extra project include directories, separated by os.PathListSeparator.
	EnvInclude = "RBUILD_INCLUDE"
	// EnvScanner selects the include scanner backend.
	EnvScanner = "RBUILD_SCANNER"
)

var _ ports.ProjectLoader = (*Loader)(nil)

var validModuleNameRegex = regexp.MustCompile("^[a-zA-Z0-9_.-]+$")

// Loader implements ports.ProjectLoader using a YAML project file.
type Loader struct {
	FS       ports.SourceFS
	Expander ports.FileExpander
	Logger   ports.Logger
	// LookupEnv reads the process environment. Values found here win over the .env file.
	LookupEnv func(key string) (string, bool)
}

// NewLoader creates a new Loader.
func NewLoader(fsys ports.SourceFS, expander ports.FileExpander, logger ports.Logger) *Loader {
	return &Loader{
		FS:        fsys,
		Expander:  expander,
		Logger:    logger,
		LookupEnv: os.LookupEnv,
	}
}

// Load reads the project file at path. If path is a directory, it and its parents
// are searched for rbuild.yaml.
func (l *Loader) Load(path string) (*domain.Project, error) {
	configPath, err := l.findProjectFile(path)
	if err != nil {
		return nil, err
	}

	data, err := l.FS.ReadFile(configPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read project file"), "path", configPath)
	}
	var pf Projectfile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse project file"), "path", configPath)
	}

	env, err := l.loadEnv(filepath.Dir(configPath))
	if err != nil {
		return nil, err
	}

	project, err := l.buildProject(configPath, &pf, env)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	if _, err := project.Graph(); err != nil {
		return nil, err
	}
	return project, nil
}

func (l *Loader) findProjectFile(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve project path")
	}

	info, err := l.FS.Stat(abs)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrProjectFileNotFound, "failed to locate project file"), "path", abs)
	}
	if !info.IsDir() {
		return abs, nil
	}

	for dir := abs; ; {
		candidate := filepath.Join(dir, domain.ProjectFileName)
		if info, err := l.FS.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", zerr.With(zerr.Wrap(domain.ErrProjectFileNotFound, "failed to locate project file"), "cwd", abs)
}

// loadEnv parses the .env file next to the project file. A missing file yields no values.
func (l *Loader) loadEnv(dir string) (map[string]string, error) {
	path := filepath.Join(dir, domain.EnvFileName)
	data, err := l.FS.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read env file"), "path", path)
	}
	env, err := godotenv.UnmarshalBytes(data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse env file"), "path", path)
	}
	return env, nil
}

func (l *Loader) lookup(env map[string]string, key string) (string, bool) {
	if l.LookupEnv != nil {
		if v, ok := l.LookupEnv(key); ok {
			return v, true
		}
	}
	v, ok := env[key]
	return v, ok
}

func (l *Loader) buildProject(configPath string, pf *Projectfile, env map[string]string) (*domain.Project, error) {
	base := filepath.Dir(configPath)
	if pf.Root != "" {
		base = filepath.Join(base, filepath.FromSlash(pf.Root))
	}

	project := &domain.Project{
		Name:    pf.Project,
		BaseDir: base,
		Scanner: pf.Scanner,
	}
	if project.Name == "" {
		project.Name = filepath.Base(base)
	}
	if v, ok := l.lookup(env, EnvScanner); ok && v != "" {
		project.Scanner = v
	}
	if project.Scanner == "" {
		project.Scanner = domain.DefaultScanner
	}

	for _, dir := range pf.Include {
		project.IncludeDirs = append(project.IncludeDirs, project.Abs(filepath.FromSlash(dir)))
	}
	if v, ok := l.lookup(env, EnvInclude); ok {
		for _, dir := range filepath.SplitList(v) {
			if dir = strings.TrimSpace(dir); dir != "" {
				project.IncludeDirs = append(project.IncludeDirs, project.Abs(dir))
			}
		}
	}

	for i := range pf.Modules {
		m, err := l.buildModule(project, &pf.Modules[i])
		if err != nil {
			return nil, err
		}
		project.Modules = append(project.Modules, m)
	}
	return project, nil
}

func (l *Loader) buildModule(project *domain.Project, dto *ModuleDTO) (domain.Module, error) {
	if err := validateModuleName(dto.Name); err != nil {
		return domain.Module{}, err
	}

	typ := domain.ModuleTypeBuildTool
	if dto.Type != "" {
		var err error
		if typ, err = domain.ParseModuleType(dto.Type); err != nil {
			return domain.Module{}, zerr.With(err, "module", dto.Name)
		}
	}

	m := domain.Module{
		Name:         dto.Name,
		Type:         typ,
		Path:         filepath.Clean(filepath.FromSlash(dto.Path)),
		Output:       filepath.FromSlash(dto.Output),
		Dependencies: dto.Dependencies,
		Command:      dto.Command,
	}
	moduleDir := project.Abs(m.Path)

	for _, dir := range dto.Include {
		m.IncludeDirs = append(m.IncludeDirs, filepath.Join(moduleDir, filepath.FromSlash(dir)))
	}

	for _, f := range dto.Files {
		if f.Name == "" {
			return domain.Module{}, zerr.With(zerr.Wrap(domain.ErrInvalidProject, "file without name"), "module", dto.Name)
		}
		paths, err := l.Expander.Expand([]string{filepath.FromSlash(f.Name)}, moduleDir)
		if err != nil {
			return domain.Module{}, zerr.With(err, "module", dto.Name)
		}
		for i, p := range paths {
			m.Files = append(m.Files, domain.File{
				Name:         p,
				First:        f.First && i == 0,
				NonAutomatic: !f.IsAutomatic(),
			})
		}
	}

	if len(m.Files) == 0 && l.Logger != nil {
		l.Logger.Warn(fmt.Sprintf("module %s declares no files", m.Name))
	}
	return m, nil
}

func validateModuleName(name string) error {
	if name == "" {
		return zerr.Wrap(domain.ErrInvalidProject, "module without name")
	}
	if !validModuleNameRegex.MatchString(name) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidProject, "invalid module name"), "module", name)
	}
	return nil
}
