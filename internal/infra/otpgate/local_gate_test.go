package otpgate

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalGate_Cooldown(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	gate := newLocalGate(time.Minute, func() time.Time { return now })
	ctx := context.Background()

	allowed, _, err := gate.Allow(ctx, "0912345678")
	require.NoError(t, err)
	assert.True(t, allowed)

	now = now.Add(20 * time.Second)
	allowed, retryAfter, err := gate.Allow(ctx, "0912345678")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 40*time.Second, retryAfter)

	allowed, _, err = gate.Allow(ctx, "0987654321")
	require.NoError(t, err)
	assert.True(t, allowed, "cooldown is per phone")

	now = now.Add(time.Minute)
	allowed, _, err = gate.Allow(ctx, "0912345678")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestLocalGate_CooldownDisabled(t *testing.T) {
	gate := NewLocalGate(0)

	for range 3 {
		allowed, _, err := gate.Allow(context.Background(), "0912345678")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestLocalGate_LockSerialisesPerPhone(t *testing.T) {
	gate := NewLocalGate(0)
	ctx := context.Background()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			unlock, err := gate.Lock(ctx, "0912345678")
			if !assert.NoError(t, err) {
				return
			}
			defer unlock()

			cur := atomic.AddInt32(&inside, 1)
			for {
				prev := atomic.LoadInt32(&maxInside)
				if cur <= prev || atomic.CompareAndSwapInt32(&maxInside, prev, cur) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
	assert.Empty(t, gate.(*localGate).locks.locks)
}

func TestLocalGate_LockCancelledContext(t *testing.T) {
	gate := NewLocalGate(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gate.Lock(ctx, "0912345678")
	assert.ErrorIs(t, err, context.Canceled)
}
