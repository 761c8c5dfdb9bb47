package tracker

import (
	"sync"
	"time"
)

// Countdown ticks down once per second for the duration of an active break
// and fires onDone when it reaches zero. It is independent of backend
// round-trip latency: the caller completes the break when onDone fires.
//
// Stop is idempotent and disposes the countdown; after Stop returns, neither
// callback fires again. A break completed manually before the countdown
// reaches zero must Stop it.
type Countdown struct {
	mu        sync.Mutex
	remaining time.Duration
	stopped   bool
	stop      chan struct{}
	stopOnce  sync.Once

	onTick func(remaining time.Duration)
	onDone func()
}

// StartCountdown begins ticking immediately. onTick and onDone may be nil.
// Callbacks run on the countdown's own goroutine.
func StartCountdown(d time.Duration, onTick func(remaining time.Duration), onDone func()) *Countdown {
	c := &Countdown{
		remaining: d,
		stop:      make(chan struct{}),
		onTick:    onTick,
		onDone:    onDone,
	}
	go c.run()
	return c
}

// Remaining returns the time left on the countdown.
func (c *Countdown) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Stop cancels the countdown. Safe to call more than once and after the
// countdown has finished.
func (c *Countdown) Stop() {
	c.stopOnce.Do(func() {
		c.mu.Lock()
		c.stopped = true
		c.mu.Unlock()
		close(c.stop)
	})
}

func (c *Countdown) run() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.mu.Lock()
			if c.stopped {
				c.mu.Unlock()
				return
			}
			c.remaining -= time.Second
			remaining := c.remaining
			done := remaining <= 0
			if done {
				c.stopped = true
			}
			c.mu.Unlock()

			if done {
				if c.onDone != nil {
					c.onDone()
				}
				return
			}
			if c.onTick != nil {
				c.onTick(remaining)
			}
		}
	}
}
