package term

import (
	"testing"
	"time"

	"github.com/automoto/flowerhop/components"
	cfg "github.com/automoto/flowerhop/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestInput(cols, rows int) (*Input, *fakeClock) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	in := NewInput(cols, rows)
	in.now = clock.now
	return in, clock
}

func TestHeldWindow(t *testing.T) {
	in, clock := newTestInput(80, 24)
	assert.False(t, in.Held())

	in.Press()
	assert.True(t, in.Held())

	clock.t = clock.t.Add(holdWindow - time.Millisecond)
	assert.True(t, in.Held())

	clock.t = clock.t.Add(time.Millisecond)
	assert.False(t, in.Held())
}

func TestMouseHold(t *testing.T) {
	in, clock := newTestInput(80, 24)

	in.Pointer(10, 5, true)
	clock.t = clock.t.Add(time.Second)
	assert.True(t, in.Held(), "a mouse button stays held until released")

	in.Pointer(10, 5, false)
	assert.False(t, in.Held())
}

func TestPointerMapping(t *testing.T) {
	tests := []struct {
		name     string
		col, row int
		wantX    float64
		wantY    float64
	}{
		{"origin cell", 0, 0, 8, 15},
		{"centre cell", 40, 12, 648, 375},
		{"last cell", 79, 23, 1272, 705},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, _ := newTestInput(80, 24)
			in.Pointer(tt.col, tt.row, true)
			assert.InDelta(t, tt.wantX, in.mouseX, 1e-9)
			assert.InDelta(t, tt.wantY, in.mouseY, 1e-9)
		})
	}
}

func TestApply(t *testing.T) {
	in, _ := newTestInput(80, 24)
	e := ecs.NewECS(donburi.NewWorld())

	in.Press()
	in.Trigger(cfg.ActionMute)
	in.Apply(e)

	entry, ok := components.Input.First(e.World)
	require.True(t, ok)
	input := components.Input.Get(entry)
	assert.True(t, input.Current[cfg.ActionPress])
	assert.True(t, input.Current[cfg.ActionMute])

	in.Apply(e)
	assert.False(t, input.Current[cfg.ActionMute], "triggers last one frame")
	assert.True(t, input.Previous[cfg.ActionMute])
}

func TestApplyPointerRelease(t *testing.T) {
	in, _ := newTestInput(80, 24)
	e := ecs.NewECS(donburi.NewWorld())

	in.Pointer(40, 12, true)
	in.Apply(e)
	in.Pointer(40, 12, false)
	in.Apply(e)

	entry, ok := components.Input.First(e.World)
	require.True(t, ok)
	input := components.Input.Get(entry)
	assert.True(t, input.PointerReleased)
	assert.InDelta(t, 648, input.PointerX, 1e-9)
}
