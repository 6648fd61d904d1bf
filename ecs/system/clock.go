package system

import (
	"time"

	"github.com/milk9111/blockgame/ecs"
	"github.com/milk9111/blockgame/ecs/component"
)

// ClockSystem writes the elapsed time since the previous tick into the
// singleton Time component.
type ClockSystem struct {
	FixedStep float64
	MaxStep   float64
	// DefaultStep is used on the first tick and after Reset.
	DefaultStep float64

	now  func() time.Time
	last time.Time
}

func NewClockSystem(fixedStep, maxStep, defaultStep float64) *ClockSystem {
	return &ClockSystem{FixedStep: fixedStep, MaxStep: maxStep, DefaultStep: defaultStep, now: time.Now}
}

// WithNow swaps the time source; tests drive the clock by hand.
func (c *ClockSystem) WithNow(now func() time.Time) *ClockSystem {
	if now != nil {
		c.now = now
	}
	return c
}

func (c *ClockSystem) Update(w *ecs.World) {
	if c == nil || w == nil {
		return
	}
	clock, ok := w.First(component.TimeComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, clock, component.TimeComponent.Kind())
	if !ok {
		return
	}

	t.DT = c.step()
	t.Elapsed += t.DT
	t.Tick++
}

// Reset forgets the previous tick so the next step uses the default. Called
// after a pause so the paused duration is not integrated.
func (c *ClockSystem) Reset() {
	if c == nil {
		return
	}
	c.last = time.Time{}
}

func (c *ClockSystem) step() float64 {
	if c.FixedStep > 0 {
		return c.FixedStep
	}
	now := c.now()
	defer func() { c.last = now }()

	if c.last.IsZero() {
		return c.DefaultStep
	}
	dt := now.Sub(c.last).Seconds()
	if dt < 0 {
		dt = 0
	}
	if c.MaxStep > 0 && dt > c.MaxStep {
		dt = c.MaxStep
	}
	return dt
}

// deltaTime returns this tick's dt, or zero when the world has no clock.
func deltaTime(w *ecs.World) float64 {
	clock, ok := w.First(component.TimeComponent.Kind())
	if !ok {
		return 0
	}
	t, ok := ecs.Get(w, clock, component.TimeComponent.Kind())
	if !ok {
		return 0
	}
	return t.DT
}
