package systems

import (
	"testing"

	"github.com/automoto/flowerhop/assets"
	"github.com/automoto/flowerhop/components"
	cfg "github.com/automoto/flowerhop/config"
	"github.com/automoto/flowerhop/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// scriptedPointer stands in for a frontend input system.
type scriptedPointer struct {
	down bool
	x, y float64
}

func (p *scriptedPointer) update(e *ecs.ECS) {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	input := components.Input.Get(entry)
	BeginInputFrame(input)
	input.Current[cfg.ActionPress] = p.down
	ApplyPointer(input, p.x, p.y, p.down)
}

func TestNewWorldEntities(t *testing.T) {
	e := NewWorld(WorldOptions{Seed: 3})

	players, flowers := 0, 0
	tags.Player.Each(e.World, func(*donburi.Entry) { players++ })
	tags.Flower.Each(e.World, func(*donburi.Entry) { flowers++ })
	assert.Equal(t, 1, players)
	assert.Equal(t, cfg.Flowers.Count, flowers)

	_, ok := components.Session.First(e.World)
	assert.True(t, ok)
	_, ok = components.Audio.First(e.World)
	assert.True(t, ok)
}

func TestNewWorldAppliesSavedRecord(t *testing.T) {
	e := NewWorld(WorldOptions{
		Seed:  3,
		Saved: &SavedRecord{BestDistance: 900, Muted: true},
	})

	entry, ok := components.Progress.First(e.World)
	require.True(t, ok)
	assert.Equal(t, 900, components.Progress.Get(entry).Best)
	assert.True(t, GetOrCreateAudio(e).Muted)
}

func TestRunAndPlayAgain(t *testing.T) {
	course := assets.DefaultCourse()
	ptr := &scriptedPointer{}
	e := NewWorld(WorldOptions{Course: course, Seed: 3, Input: ptr.update})

	sessionEntry, ok := components.Session.First(e.World)
	require.True(t, ok)
	session := components.Session.Get(sessionEntry)
	player, ok := components.Player.First(e.World)
	require.True(t, ok)

	e.Update()
	ptr.down = true
	e.Update()
	ptr.down = false
	assert.False(t, components.Player.Get(player).OnSurface)

	for i := 0; i < 30; i++ {
		e.Update()
	}
	assert.Greater(t, components.Progress.Get(sessionEntry).Distance, 0)
	assert.False(t, session.GameOver)

	obj := components.Object.Get(player)
	obj.SetCenter(obj.CenterX(), float64(cfg.C.Height)+30)
	e.Update()
	require.True(t, session.GameOver)
	require.True(t, components.PlayAgain.Get(sessionEntry).Visible)

	ptr.down, ptr.x, ptr.y = true, float64(cfg.C.Width)/2, float64(cfg.C.Height)/2
	e.Update()
	assert.True(t, components.PlayAgain.Get(sessionEntry).Pressed)
	ptr.down = false
	e.Update()

	assert.False(t, session.GameOver)
	assert.False(t, components.PlayAgain.Get(sessionEntry).Visible)
	assert.Equal(t, 0, components.Progress.Get(sessionEntry).Distance)
	assert.Equal(t, course.SpawnX, obj.CenterX())
}
