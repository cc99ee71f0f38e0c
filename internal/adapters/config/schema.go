package config

import (
	"gopkg.in/yaml.v3"
)

// Projectfile represents the structure of the rbuild.yaml project file.
type Projectfile struct {
	Project string `yaml:"project"`
	// Root overrides the base directory, relative to the project file.
	Root    string      `yaml:"root"`
	Scanner string      `yaml:"scanner"`
	Include []string    `yaml:"include"`
	Modules []ModuleDTO `yaml:"modules"`
}

// ModuleDTO represents a module definition in the project file.
type ModuleDTO struct {
	Name         string    `yaml:"name"`
	Type         string    `yaml:"type"`
	Path         string    `yaml:"path"`
	Output       string    `yaml:"output"`
	Files        []FileDTO `yaml:"files"`
	Include      []string  `yaml:"include"`
	Dependencies []string  `yaml:"dependencies"`
	Command      []string  `yaml:"command"`
}

// FileDTO is a file entry. It is either a plain pattern or a mapping with flags.
type FileDTO struct {
	Name      string `yaml:"name"`
	First     bool   `yaml:"first"`
	Automatic *bool  `yaml:"automatic"`
}

// UnmarshalYAML accepts both the scalar and the mapping form.
func (f *FileDTO) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		f.Name = value.Value
		return nil
	}
	type plain FileDTO
	return value.Decode((*plain)(f))
}

// IsAutomatic reports whether the file is scanned for includes. It defaults to true.
func (f FileDTO) IsAutomatic() bool {
	return f.Automatic == nil || *f.Automatic
}
