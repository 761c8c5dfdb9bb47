package tracker

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountdown_FiresDoneAtZero(t *testing.T) {
	done := make(chan struct{})
	c := StartCountdown(1*time.Second, nil, func() {
		close(done)
	})
	defer c.Stop()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("countdown never fired onDone")
	}
	assert.LessOrEqual(t, c.Remaining(), time.Duration(0))
}

func TestCountdown_TicksDecrement(t *testing.T) {
	var ticks atomic.Int32
	c := StartCountdown(5*time.Second, func(remaining time.Duration) {
		ticks.Add(1)
	}, nil)
	defer c.Stop()

	require.Eventually(t, func() bool {
		return ticks.Load() >= 1
	}, 3*time.Second, 50*time.Millisecond)
	assert.Less(t, c.Remaining(), 5*time.Second)
}

func TestCountdown_StopIsIdempotent(t *testing.T) {
	c := StartCountdown(10*time.Second, nil, nil)
	c.Stop()
	// Second stop must not panic.
	c.Stop()
}

func TestCountdown_StoppedNeverFires(t *testing.T) {
	var fired atomic.Bool
	c := StartCountdown(1*time.Second, func(time.Duration) {
		fired.Store(true)
	}, func() {
		fired.Store(true)
	})
	c.Stop()

	time.Sleep(1500 * time.Millisecond)
	assert.False(t, fired.Load(), "callback fired after Stop")
}
