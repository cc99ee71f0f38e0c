package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rbuild/internal/adapters/telemetry/progrock"
	"go.trai.ch/rbuild/internal/core/domain"
	"go.trai.ch/rbuild/internal/core/ports"
)

func TestRecorder_Integration(t *testing.T) {
	recorder := progrock.New()
	require.NotNil(t, recorder)

	ctx, vertex := recorder.Record(context.Background(), "ntoskrnl", ports.WithGroup("check"))
	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, fromCtx)

	_, err := vertex.Stdout().Write([]byte("output ntoskrnl.exe older than most recent input ke.h\n"))
	require.NoError(t, err)
	vertex.Log(domain.LogLevelWarn, "cannot stat include/missing.h")
	vertex.Complete(nil)

	_, cached := recorder.Record(context.Background(), "hal", ports.WithGroup("check"))
	cached.Cached()

	_, failed := recorder.Record(context.Background(), "hal", ports.WithGroup("rebuild"))
	failed.Complete(errors.New("command failed"))

	require.NoError(t, recorder.Close())
}
