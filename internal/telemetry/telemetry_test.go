package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-movie-client/internal/config"
	"github.com/MKhiriev/go-movie-client/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_NoEndpointIsNoop(t *testing.T) {
	shutdown, err := Setup(context.Background(), config.ClientTelemetry{}, "movie-client", "test", logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetup_WithEndpoint(t *testing.T) {
	cfg := config.ClientTelemetry{
		Endpoint:        "127.0.0.1:4317",
		Insecure:        true,
		ShutdownTimeout: 100 * time.Millisecond,
	}

	// the gRPC exporter connects lazily, so no collector is needed here
	shutdown, err := Setup(context.Background(), cfg, "movie-client", "test", logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	_ = shutdown(context.Background())
}

func TestWithTimeout(t *testing.T) {
	t.Run("zero timeout keeps the function", func(t *testing.T) {
		called := false
		fn := withTimeout(func(context.Context) error {
			called = true
			return nil
		}, 0)

		require.NoError(t, fn(context.Background()))
		assert.True(t, called)
	})

	t.Run("deadline is applied", func(t *testing.T) {
		fn := withTimeout(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}, 10*time.Millisecond)

		err := fn(context.Background())
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})
}
