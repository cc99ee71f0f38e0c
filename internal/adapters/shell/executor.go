// Package shell provides the shell executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"sync"

	"go.trai.ch/rbuild/internal/core/domain"
	"go.trai.ch/rbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the module's command in dir. The command sees the process environment
// plus RBUILD_MODULE and RBUILD_OUTPUT. Output goes to the vertex in ctx when there is
// one and to the logger otherwise.
func (e *Executor) Execute(ctx context.Context, module *domain.Module, dir string) error {
	if len(module.Command) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, module.Command[0], module.Command[1:]...) //nolint:gosec // user provided command
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"RBUILD_MODULE="+module.Name,
		"RBUILD_OUTPUT="+module.OutputPath(),
	)

	var stdout, stderr io.Writer
	if v, ok := ports.VertexFromContext(ctx); ok {
		stdout, stderr = v.Stdout(), v.Stderr()
	} else {
		out := &logWriter{logger: e.logger, level: domain.LogLevelInfo}
		errOut := &logWriter{logger: e.logger, level: domain.LogLevelError}
		defer out.Flush()
		defer errOut.Flush()
		stdout, stderr = out, errOut
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err = zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
		return zerr.With(err, "module", module.Name)
	}
	return nil
}

// logWriter forwards complete lines to the logger. A trailing partial line is kept until Flush.
type logWriter struct {
	logger ports.Logger
	level  domain.LogLevel
	mu     sync.Mutex
	buf    bytes.Buffer
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Put the partial line back.
			w.buf.Reset()
			w.buf.WriteString(line)
			break
		}
		w.emit(line[:len(line)-1])
	}
	return len(p), nil
}

// Flush emits any buffered partial line.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.buf.Len() > 0 {
		w.emit(w.buf.String())
		w.buf.Reset()
	}
}

func (w *logWriter) emit(line string) {
	if w.level >= domain.LogLevelError {
		w.logger.Error(zerr.New(line))
		return
	}
	w.logger.Info(line)
}
