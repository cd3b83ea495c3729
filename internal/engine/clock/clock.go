// Package clock paces the frame loop and measures frame time.
package clock

import "time"

// Clock limits the loop to a target rate and reports the elapsed time per tick.
type Clock struct {
	frame time.Duration
	last  time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// New creates a clock for fps ticks per second. Zero or negative fps disables pacing.
func New(fps int) *Clock {
	c := &Clock{
		now:   time.Now,
		sleep: time.Sleep,
	}
	if fps > 0 {
		c.frame = time.Second / time.Duration(fps)
	}
	c.last = c.now()
	return c
}

// Tick blocks until the frame budget has elapsed since the previous tick and
// returns the seconds since then.
func (c *Clock) Tick() float64 {
	if c.frame > 0 {
		if wait := c.frame - c.now().Sub(c.last); wait > 0 {
			c.sleep(wait)
		}
	}
	now := c.now()
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		dt = 0
	}
	return dt.Seconds()
}

// Counter reports frames per second once per interval.
type Counter struct {
	interval float64
	frames   int
	elapsed  float64
}

// NewCounter creates a counter that reports every interval.
func NewCounter(interval time.Duration) *Counter {
	return &Counter{interval: interval.Seconds()}
}

// Add records one frame of dt seconds. When an interval has passed it returns
// the average rate and true.
func (c *Counter) Add(dt float64) (float64, bool) {
	c.frames++
	c.elapsed += dt
	if c.elapsed < c.interval || c.elapsed <= 0 {
		return 0, false
	}
	fps := float64(c.frames) / c.elapsed
	c.frames = 0
	c.elapsed = 0
	return fps, true
}
