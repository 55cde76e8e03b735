package telemetry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_DisabledIsNoop(t *testing.T) {
	p, err := Setup(Config{}, nil)
	require.NoError(t, err)

	_, span := p.Tracer("test").Start(context.Background(), "generation.roadmap")
	assert.False(t, span.SpanContext().IsValid())
	span.End()

	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestSetup_EnabledWritesSpans(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traces", "uniprep.jsonl")

	p, err := Setup(Config{Enabled: true, Path: path}, nil)
	require.NoError(t, err)

	_, span := p.Tracer("test").Start(context.Background(), "generation.study")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	require.NoError(t, p.Shutdown(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "generation.study")
}
