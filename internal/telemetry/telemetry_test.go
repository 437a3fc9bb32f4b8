package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewProvider_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv(EndpointEnv, "")

	p, err := NewProvider(context.Background())
	require.NoError(t, err)
	assert.False(t, p.Enabled())
	assert.NotNil(t, p.Tracer())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNilProvider_IsNoop(t *testing.T) {
	var p *Provider
	assert.False(t, p.Enabled())
	assert.NotNil(t, p.Tracer())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestProviderWithOptions_RecordsSpans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	p := NewProviderWithOptions(sdktrace.WithSpanProcessor(sr))
	require.True(t, p.Enabled())

	_, span := p.Tracer().Start(context.Background(), "stack.push")
	span.End()

	require.Len(t, sr.Ended(), 1)
	assert.Equal(t, "stack.push", sr.Ended()[0].Name())
	assert.NoError(t, p.Shutdown(context.Background()))
}
