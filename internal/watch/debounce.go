package watch

import "time"

// gate applies the debounce policy to accepted events. It is a pure function
// of "time since last fire": the first event always passes, later events pass
// only when at least the interval has elapsed since the previous pass.
// Suppressed events are dropped outright, never queued for a later fire.
type gate struct {
	interval time.Duration
	last     time.Time
	fired    bool
}

func newGate(interval time.Duration) *gate {
	return &gate{interval: interval}
}

func (g *gate) allow(now time.Time) bool {
	if g.fired && now.Sub(g.last) < g.interval {
		return false
	}
	g.fired = true
	g.last = now
	return true
}
