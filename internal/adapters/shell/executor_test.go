package shell_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rbuild/internal/adapters/shell"
	"go.trai.ch/rbuild/internal/core/domain"
	"go.trai.ch/rbuild/internal/core/ports"
	"go.trai.ch/rbuild/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Execute_MultiLineOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	gomock.InOrder(
		mockLogger.EXPECT().Info("line1"),
		mockLogger.EXPECT().Info("line2"),
	)

	module := &domain.Module{Name: "hal", Command: []string{"sh", "-c", "echo line1; echo line2"}}
	err := shell.NewExecutor(mockLogger).Execute(context.Background(), module, t.TempDir())
	require.NoError(t, err)
}

func TestExecutor_Execute_FragmentedOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("part1part2").Times(1)
	mockLogger.EXPECT().Info("tail").Times(1)

	module := &domain.Module{Name: "hal", Command: []string{"sh", "-c", "printf part1; sleep 0.1; echo part2; printf tail"}}
	err := shell.NewExecutor(mockLogger).Execute(context.Background(), module, t.TempDir())
	require.NoError(t, err)
}

func TestExecutor_Execute_ModuleEnvironment(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("ntoskrnl " + filepath.Join("ntoskrnl", "ntoskrnl.exe")).Times(1)

	module := &domain.Module{
		Name:    "ntoskrnl",
		Type:    domain.ModuleTypeKernel,
		Path:    "ntoskrnl",
		Command: []string{"sh", "-c", "echo $RBUILD_MODULE $RBUILD_OUTPUT"},
	}
	err := shell.NewExecutor(mockLogger).Execute(context.Background(), module, t.TempDir())
	require.NoError(t, err)
}

func TestExecutor_Execute_WorkingDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	dir := t.TempDir()
	mockLogger.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		resolved, err := filepath.EvalSymlinks(dir)
		require.NoError(t, err)
		assert.Equal(t, resolved, msg)
	})

	module := &domain.Module{Name: "hal", Command: []string{"sh", "-c", "pwd -P"}}
	require.NoError(t, shell.NewExecutor(mockLogger).Execute(context.Background(), module, dir))
}

func TestExecutor_Execute_NoCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	err := shell.NewExecutor(mockLogger).Execute(context.Background(), &domain.Module{Name: "hal"}, t.TempDir())
	require.NoError(t, err)
}

func TestExecutor_Execute_CommandFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	module := &domain.Module{Name: "hal", Command: []string{"sh", "-c", "echo broken >&2; exit 3"}}
	err := shell.NewExecutor(mockLogger).Execute(context.Background(), module, t.TempDir())
	require.Error(t, err)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, 3, zErr.Metadata()["exit_code"])
	assert.Equal(t, "hal", zErr.Metadata()["module"])
}

func TestExecutor_Execute_InvalidCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	module := &domain.Module{Name: "hal", Command: []string{"nonexistent-command-xyz123"}}
	err := shell.NewExecutor(mockLogger).Execute(context.Background(), module, t.TempDir())
	require.Error(t, err)
}

func TestExecutor_Execute_WithVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Times(0)
	mockLogger.EXPECT().Error(gomock.Any()).Times(0)

	var stdoutBuf, stderrBuf bytes.Buffer
	mockVertex := mocks.NewMockVertex(ctrl)
	mockVertex.EXPECT().Stdout().Return(&stdoutBuf).AnyTimes()
	mockVertex.EXPECT().Stderr().Return(&stderrBuf).AnyTimes()

	module := &domain.Module{Name: "hal", Command: []string{"sh", "-c", "echo to stdout; echo to stderr >&2"}}
	ctx := ports.ContextWithVertex(context.Background(), mockVertex)
	require.NoError(t, shell.NewExecutor(mockLogger).Execute(ctx, module, t.TempDir()))

	assert.Contains(t, stdoutBuf.String(), "to stdout")
	assert.Contains(t, stderrBuf.String(), "to stderr")
}
