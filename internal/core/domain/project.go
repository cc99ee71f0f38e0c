package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// ModuleType classifies what a module builds.
type ModuleType string

const (
	ModuleTypeBuildTool        ModuleType = "buildtool"
	ModuleTypeStaticLibrary    ModuleType = "staticlibrary"
	ModuleTypeObjectLibrary    ModuleType = "objectlibrary"
	ModuleTypeKernel           ModuleType = "kernel"
	ModuleTypeKernelModeDLL    ModuleType = "kernelmodedll"
	ModuleTypeKernelModeDriver ModuleType = "kernelmodedriver"
	ModuleTypeNativeDLL        ModuleType = "nativedll"
	ModuleTypeWin32DLL         ModuleType = "win32dll"
	ModuleTypeWin32GUI         ModuleType = "win32gui"
	ModuleTypeBootLoader       ModuleType = "bootloader"
	ModuleTypeBootSector       ModuleType = "bootsector"
	ModuleTypeIso              ModuleType = "iso"
)

var moduleExtensions = map[ModuleType]string{
	ModuleTypeBuildTool:        "",
	ModuleTypeStaticLibrary:    ".a",
	ModuleTypeObjectLibrary:    ".o",
	ModuleTypeKernel:           ".exe",
	ModuleTypeKernelModeDLL:    ".dll",
	ModuleTypeKernelModeDriver: ".sys",
	ModuleTypeNativeDLL:        ".dll",
	ModuleTypeWin32DLL:         ".dll",
	ModuleTypeWin32GUI:         ".exe",
	ModuleTypeBootLoader:       ".o",
	ModuleTypeBootSector:       ".o",
	ModuleTypeIso:              ".iso",
}

// ParseModuleType converts a configuration value into a ModuleType.
// Matching is case-insensitive.
func ParseModuleType(s string) (ModuleType, error) {
	t := ModuleType(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := moduleExtensions[t]; !ok {
		return "", zerr.With(zerr.Wrap(ErrUnknownModuleType, "failed to parse module type"), "type", s)
	}
	return t, nil
}

// DefaultExtension returns the file extension of the module's build output.
func (t ModuleType) DefaultExtension() string {
	return moduleExtensions[t]
}

// File is a source file declared by a module.
type File struct {
	// Name is the path of the file, absolute or relative to the project base directory.
	Name string
	// First marks the module's primary file.
	First bool
	// NonAutomatic marks an explicitly declared dependency that is never scanned.
	NonAutomatic bool
}

// Module is a buildable unit owning source files and include search directories.
type Module struct {
	Name string
	Type ModuleType
	// Path is the module's directory relative to the project base directory.
	Path string
	// Output is the build output whose timestamp decides staleness.
	Output      string
	Files       []File
	IncludeDirs []string
	// Dependencies names modules this module explicitly depends on.
	Dependencies []string
	// Command rebuilds the module. It is optional.
	Command []string
}

// TargetName returns the file name of the module's build output.
func (m *Module) TargetName() string {
	return m.Name + m.Type.DefaultExtension()
}

// OutputPath returns the declared output, or the default target path inside the module directory.
func (m *Module) OutputPath() string {
	if m.Output != "" {
		return m.Output
	}
	return filepath.Join(m.Path, m.TargetName())
}

// PrimaryFile returns the file marked First, or the first declared file.
func (m *Module) PrimaryFile() (File, bool) {
	for _, f := range m.Files {
		if f.First {
			return f, true
		}
	}
	if len(m.Files) > 0 {
		return m.Files[0], true
	}
	return File{}, false
}

// Project is the set of modules described by one project file.
type Project struct {
	Name string
	// BaseDir is the absolute directory all relative paths are resolved against.
	BaseDir     string
	IncludeDirs []string
	Modules     []Module
	// Scanner names the include scanner backend.
	Scanner string
}

// DefaultScanner is the scanner used when the project does not name one.
const DefaultScanner = "lexical"

// Module returns the module with the given name.
func (p *Project) Module(name string) (*Module, bool) {
	for i := range p.Modules {
		if p.Modules[i].Name == name {
			return &p.Modules[i], true
		}
	}
	return nil, false
}

// Abs resolves path against the project base directory and cleans it.
func (p *Project) Abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(p.BaseDir, path)
}

// Graph builds and validates the explicit module dependency graph.
func (p *Project) Graph() (*Graph, error) {
	g := NewGraph()
	for i := range p.Modules {
		m := &p.Modules[i]
		if err := g.AddModule(m.Name, m.Dependencies); err != nil {
			return nil, err
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}
