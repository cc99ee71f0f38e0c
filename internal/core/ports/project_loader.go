package ports

import "go.trai.ch/rbuild/internal/core/domain"

// ProjectLoader loads the project description.
//
//go:generate go run go.uber.org/mock/mockgen -source=project_loader.go -destination=mocks/mock_project_loader.go -package=mocks
type ProjectLoader interface {
	// Load reads the project file at path and returns the validated project model.
	Load(path string) (*domain.Project, error)
}
