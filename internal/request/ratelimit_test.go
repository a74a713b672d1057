package request

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSlidingWindow_SixthCallWaitsFullWindow(t *testing.T) {
	// Scaled-down window, same shape as the production 5-per-10s budget: a
	// burst of 5 passes immediately, the 6th must wait until a full window
	// has elapsed since the 1st call started.
	window := 500 * time.Millisecond
	sw := NewSlidingWindow(5, window)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, sw.Wait(ctx))
	}
	require.Less(t, time.Since(start), window/2, "burst of 5 should not block")

	require.NoError(t, sw.Wait(ctx))
	require.GreaterOrEqual(t, time.Since(start), window, "6th call must wait out the window")
}

func TestSlidingWindow_SlotsFreeAsCallsAge(t *testing.T) {
	window := 200 * time.Millisecond
	sw := NewSlidingWindow(2, window)
	ctx := context.Background()

	require.NoError(t, sw.Wait(ctx))
	require.NoError(t, sw.Wait(ctx))

	time.Sleep(window)
	start := time.Now()
	require.NoError(t, sw.Wait(ctx))
	require.Less(t, time.Since(start), window/2, "aged-out calls should free slots")
}

func TestSlidingWindow_ContextCancellation(t *testing.T) {
	sw := NewSlidingWindow(1, time.Minute)
	require.NoError(t, sw.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := sw.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestParseRateLimit(t *testing.T) {
	require.NotNil(t, ParseRateLimit("5/second"))
	require.NotNil(t, ParseRateLimit("200/minute"))
	require.Nil(t, ParseRateLimit(""))
	require.Nil(t, ParseRateLimit("fast"))
	require.Nil(t, ParseRateLimit("5/hour"))
}
