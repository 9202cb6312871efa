package animations

import (
	"math"
	"time"
)

// Clock is a repeating timer. It finishes at most once per Tick no matter
// how many intervals the tick spans; the remainder carries into the next
// period.
type Clock struct {
	interval time.Duration
	elapsed  time.Duration
}

// NewClock returns a clock that fires every interval seconds.
func NewClock(interval float64) Clock {
	return Clock{interval: seconds(interval)}
}

// Tick advances the clock by dt seconds and reports whether it finished.
func (c *Clock) Tick(dt float64) bool {
	if c.interval <= 0 || dt <= 0 {
		return false
	}
	c.elapsed += seconds(dt)
	if c.elapsed < c.interval {
		return false
	}
	c.elapsed %= c.interval
	return true
}

// Interval is the clock period in seconds.
func (c *Clock) Interval() float64 { return c.interval.Seconds() }

// Elapsed is the time into the current period in seconds.
func (c *Clock) Elapsed() float64 { return c.elapsed.Seconds() }

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
