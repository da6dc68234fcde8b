// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ClampsConfig(t *testing.T) {
	l := New(1000, 1000, time.Millisecond)

	assert.Equal(t, MaxPerMinute, l.perMinute.Burst())
	assert.Equal(t, MaxPerSecond, l.perSecond.Burst())
	assert.Equal(t, MinIntervalLow, l.minInterval)
}

func TestNew_DefaultsOnZero(t *testing.T) {
	l := New(0, 0, 0)

	assert.Equal(t, DefaultPerMinute, l.perMinute.Burst())
	assert.Equal(t, DefaultPerSecond, l.perSecond.Burst())
	assert.Equal(t, DefaultMinInterval, l.minInterval)
}

func TestWait_EnforcesMinInterval(t *testing.T) {
	l := New(MaxPerMinute, MaxPerSecond, 0)
	l.minInterval = 50 * time.Millisecond // below the public floor to keep the test fast

	ctx := context.Background()
	start := time.Now()

	_, err := l.Wait(ctx)
	require.NoError(t, err)
	_, err = l.Wait(ctx)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestWait_FirstRequestIsImmediate(t *testing.T) {
	l := New(DefaultPerMinute, DefaultPerSecond, DefaultMinInterval)

	start := time.Now()
	_, err := l.Wait(context.Background())

	require.NoError(t, err)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestWait_CancelledContext(t *testing.T) {
	l := New(DefaultPerMinute, DefaultPerSecond, time.Minute)
	l.minInterval = time.Minute

	_, err := l.Wait(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = l.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStats_CountsRecentRequests(t *testing.T) {
	l := New(MaxPerMinute, MaxPerSecond, 0)
	l.minInterval = time.Nanosecond

	ctx := context.Background()
	for range 3 {
		_, err := l.Wait(ctx)
		require.NoError(t, err)
	}

	s := l.Stats()
	assert.Equal(t, 3, s.RequestsLastMinute)
	assert.Equal(t, MaxPerMinute, s.PerMinuteCap)
	assert.Positive(t, s.SinceLastRequest)
}
