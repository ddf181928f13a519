package progress

import "time"

// Tick intervals: the bar crawls while a search runs and sprints to 100 when
// it finishes.
const (
	SlowInterval = 750 * time.Millisecond
	FastInterval = 80 * time.Millisecond
)

// unitsPerRequest is how far the ceiling advances per issued fetch.
const unitsPerRequest = 5

// Indicator is the synthetic 0-100 progress state machine. It is driven by
// fetch issuance, not by real request latency: every RequestUnit raises the
// ceiling by a fixed step and the bar animates toward it one unit per tick.
//
// Set latches the indicator: while locked, RequestUnit and Tick are ignored
// until Show unlocks it again, so a finished or aborted session can't keep
// animating.
type Indicator struct {
	value     int
	ceiling   int
	requests  int
	locked    bool
	visible   bool
	finishing bool
}

func New() *Indicator {
	return &Indicator{locked: true}
}

// Show resets the bar to zero, unlocks it and makes it visible. Called at
// the start of a search session.
func (p *Indicator) Show() {
	p.Set(0)
	p.locked = false
	p.visible = true
	p.finishing = false
	p.ceiling = 0
}

// RequestUnit records one fetch issuance and raises the animation ceiling.
// It reports whether the bar now has room to animate.
func (p *Indicator) RequestUnit() bool {
	if p.locked {
		return false
	}
	p.requests++
	ceiling := p.requests * unitsPerRequest
	if ceiling > 100 {
		ceiling = 100
	}
	if ceiling > p.ceiling {
		p.ceiling = ceiling
	}
	return p.value < p.ceiling
}

// Finish retargets the bar at 100 with fast ticks. Once it arrives, the bar
// hides and resets.
func (p *Indicator) Finish() {
	if p.locked {
		return
	}
	p.finishing = true
	p.ceiling = 100
}

// Tick advances the bar one unit toward the ceiling and reports whether
// another tick should be scheduled.
func (p *Indicator) Tick() bool {
	if p.locked || !p.visible {
		return false
	}
	if p.value < p.ceiling {
		p.value++
	}
	if p.value >= p.ceiling {
		if p.finishing {
			p.Hide()
		}
		return false
	}
	return true
}

// Interval returns the delay until the next tick.
func (p *Indicator) Interval() time.Duration {
	if p.finishing {
		return FastInterval
	}
	return SlowInterval
}

// Set forces the bar to a value, clears the request count and locks the
// indicator against further updates.
func (p *Indicator) Set(value int) {
	p.requests = 0
	p.locked = true
	p.value = value
}

// Hide makes the bar invisible and resets it to zero.
func (p *Indicator) Hide() {
	p.visible = false
	p.finishing = false
	p.Set(0)
}

// Value returns the current 0-100 position.
func (p *Indicator) Value() int {
	return p.value
}

// Percent returns the position as a 0.0-1.0 fraction.
func (p *Indicator) Percent() float64 {
	return float64(p.value) / 100.0
}

// Visible reports whether the bar should be drawn.
func (p *Indicator) Visible() bool {
	return p.visible
}

// Locked reports whether updates are currently latched out.
func (p *Indicator) Locked() bool {
	return p.locked
}
