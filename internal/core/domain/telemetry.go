package domain

// VertexStatus is the lifecycle state of one module in a rebuild run.
type VertexStatus string

const (
	// VertexStatusPending means the module waits for its dependencies.
	VertexStatusPending VertexStatus = "pending"
	// VertexStatusRunning means the module's command is executing.
	VertexStatusRunning VertexStatus = "running"
	// VertexStatusCompleted means the command finished successfully.
	VertexStatusCompleted VertexStatus = "completed"
	// VertexStatusFailed means the command failed.
	VertexStatusFailed VertexStatus = "failed"
	// VertexStatusCached means the module was up to date and nothing ran.
	VertexStatusCached VertexStatus = "cached"
	// VertexStatusSkipped means a dependency failed so the module was not attempted.
	VertexStatusSkipped VertexStatus = "skipped"
)

// IsTerminal reports whether the status is final.
func (s VertexStatus) IsTerminal() bool {
	switch s {
	case VertexStatusCompleted, VertexStatusFailed, VertexStatusCached, VertexStatusSkipped:
		return true
	default:
		return false
	}
}

// LogLevel is the severity of a vertex log line, mirroring slog levels.
type LogLevel int

const (
	LogLevelDebug LogLevel = -4
	LogLevelInfo  LogLevel = 0
	LogLevelWarn  LogLevel = 4
	LogLevelError LogLevel = 8
)

// String returns the upper-case level name.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
