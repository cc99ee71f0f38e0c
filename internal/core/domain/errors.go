package domain

import "go.trai.ch/zerr"

var (
	// ErrModuleAlreadyExists is returned when two modules share a name.
	ErrModuleAlreadyExists = zerr.New("module already exists")

	// ErrMissingDependency is returned when a module depends on a module that is not declared.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when explicit module dependencies form a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrModuleNotFound is returned when a requested module is not in the project.
	ErrModuleNotFound = zerr.New("module not found")

	// ErrFileNotDeclared is returned when a file is not declared by the requested module.
	ErrFileNotDeclared = zerr.New("file not declared by module")

	// ErrUnknownModuleType is returned for a module type the tool does not know.
	ErrUnknownModuleType = zerr.New("unknown module type")

	// ErrProjectFileNotFound is returned when no project file exists at the given path.
	ErrProjectFileNotFound = zerr.New("project file not found")

	// ErrInvalidProject is returned when the project file is structurally invalid.
	ErrInvalidProject = zerr.New("invalid project")

	// ErrUnknownScanner is returned when the configured scanner backend does not exist.
	ErrUnknownScanner = zerr.New("unknown scanner")

	// ErrStaleFragments is returned when stored dependency fragments no longer match the sources.
	ErrStaleFragments = zerr.New("dependency fragments out of date")

	// ErrRebuildFailed is returned when at least one module rebuild command failed.
	ErrRebuildFailed = zerr.New("rebuild failed")
)
