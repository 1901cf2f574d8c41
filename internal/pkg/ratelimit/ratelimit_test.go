package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAllowWithinLimit(t *testing.T) {
	rl := New(3, time.Minute)

	require.True(t, rl.Allow("user-1"))
	require.True(t, rl.Allow("user-1"))
	require.True(t, rl.Allow("user-1"))
	require.False(t, rl.Allow("user-1"))

	// Other keys are tracked independently
	require.True(t, rl.Allow("user-2"))
}

func TestRemainingCountsDown(t *testing.T) {
	rl := New(2, time.Minute)

	require.Equal(t, 2, rl.GetRemaining("k"))
	rl.Allow("k")
	require.Equal(t, 1, rl.GetRemaining("k"))
	rl.Allow("k")
	require.Equal(t, 0, rl.GetRemaining("k"))
}

func TestWindowExpiry(t *testing.T) {
	rl := New(1, 10*time.Millisecond)

	require.True(t, rl.Allow("k"))
	require.False(t, rl.Allow("k"))

	time.Sleep(15 * time.Millisecond)
	require.True(t, rl.Allow("k"))
}
