package ports

import (
	"context"

	"go.trai.ch/rbuild/internal/core/domain"
)

// Executor runs a module's rebuild command.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs module.Command in dir. A module without a command succeeds immediately.
	Execute(ctx context.Context, module *domain.Module, dir string) error
}
