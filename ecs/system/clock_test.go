package system

import (
	"testing"
	"time"

	"github.com/milk9111/blockgame/ecs"
	"github.com/milk9111/blockgame/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func clockTime(t *testing.T, w *ecs.World) *component.Time {
	t.Helper()
	e, ok := w.First(component.TimeComponent.Kind())
	require.True(t, ok)
	tm, ok := ecs.Get(w, e, component.TimeComponent.Kind())
	require.True(t, ok)
	return tm
}

func TestClockFixedStep(t *testing.T) {
	w := newTestWorld(t)
	fake := &fakeClock{now: time.Unix(100, 0)}
	c := NewClockSystem(1.0/60, 0.05, 1.0/30).WithNow(fake.Now)

	for i := 0; i < 3; i++ {
		fake.Advance(time.Second)
		c.Update(w)
	}

	tm := clockTime(t, w)
	assert.Equal(t, 1.0/60, tm.DT)
	assert.InDelta(t, 3.0/60, tm.Elapsed, 1e-12)
	assert.Equal(t, uint64(3), tm.Tick)
}

func TestClockMeasuredStep(t *testing.T) {
	tests := []struct {
		name    string
		advance time.Duration
		want    float64
	}{
		{"normal_frame", 16 * time.Millisecond, 0.016},
		{"stall_is_clamped", 2 * time.Second, 0.05},
		{"backwards_is_zero", -time.Second, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			fake := &fakeClock{now: time.Unix(100, 0)}
			c := NewClockSystem(0, 0.05, 1.0/60).WithNow(fake.Now)

			c.Update(w)
			assert.Equal(t, 1.0/60, clockTime(t, w).DT, "first tick uses the default step")

			fake.Advance(tc.advance)
			c.Update(w)
			assert.InDelta(t, tc.want, clockTime(t, w).DT, 1e-9)
		})
	}
}

func TestClockResetSkipsPausedTime(t *testing.T) {
	w := newTestWorld(t)
	fake := &fakeClock{now: time.Unix(100, 0)}
	c := NewClockSystem(0, 0, 0.02).WithNow(fake.Now)

	c.Update(w)
	fake.Advance(10 * time.Second)
	c.Reset()
	c.Update(w)

	assert.Equal(t, 0.02, clockTime(t, w).DT)
}

func TestClockWithoutTimeEntity(t *testing.T) {
	w := ecs.NewWorld()
	assert.NotPanics(t, func() { NewClockSystem(0.1, 0, 0).Update(w) })
	assert.Equal(t, 0.0, deltaTime(w))
}
