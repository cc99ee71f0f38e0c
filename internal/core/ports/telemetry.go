package ports

import (
	"context"
	"io"

	"go.trai.ch/rbuild/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records progress of module checks and rebuilds.
type Telemetry interface {
	// Record starts a vertex and returns a context carrying it.
	Record(ctx context.Context, name string, opts ...VertexOption) (context.Context, Vertex)
	// Close flushes the recording.
	Close() error
}

// Vertex is one recorded unit of work.
type Vertex interface {
	Stdout() io.Writer
	Stderr() io.Writer
	// Log writes a leveled line to the vertex output.
	Log(level domain.LogLevel, msg string)
	// Complete finishes the vertex. A nil error means success.
	Complete(err error)
	// Cached finishes the vertex as a cache hit.
	Cached()
}

// VertexConfig holds options for a new vertex.
type VertexConfig struct {
	// Group names the group the vertex is shown under.
	Group string
}

// VertexOption configures a vertex.
type VertexOption func(*VertexConfig)

// WithGroup places the vertex in a named group.
func WithGroup(name string) VertexOption {
	return func(c *VertexConfig) {
		c.Group = name
	}
}

type vertexKey struct{}

// ContextWithVertex returns a copy of ctx carrying v.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex stored in ctx, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok
}
