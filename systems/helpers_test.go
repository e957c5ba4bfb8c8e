package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/flowerhop/assets"
	"github.com/automoto/flowerhop/audiocue"
	"github.com/automoto/flowerhop/components"
	cfg "github.com/automoto/flowerhop/config"
	"github.com/automoto/flowerhop/systems/factory"
	"github.com/automoto/flowerhop/timers"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type fakeTrack struct {
	playing bool
	started int
	length  time.Duration
}

func (f *fakeTrack) Play()                   { f.playing = true; f.started++ }
func (f *fakeTrack) Pause()                  { f.playing = false }
func (f *fakeTrack) Resume()                 { f.playing = true }
func (f *fakeTrack) Stop()                   { f.playing = false }
func (f *fakeTrack) Duration() time.Duration { return f.length }

type testWorld struct {
	ecs     *ecs.ECS
	sched   *timers.Scheduler
	course  *assets.Course
	session *donburi.Entry
	player  *donburi.Entry
	flowers []*donburi.Entry

	loop  *fakeTrack
	loss  *fakeTrack
	score *fakeTrack
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()

	w := &testWorld{
		ecs:    ecs.NewECS(donburi.NewWorld()),
		sched:  timers.New(),
		course: assets.DefaultCourse(),
		loop:   &fakeTrack{length: 10 * time.Second},
		loss:   &fakeTrack{length: 2 * time.Second},
		score:  &fakeTrack{length: time.Second},
	}

	spaceEntry := factory.CreateSpace(w.ecs, 4096, 1024, 32, 32)
	space := components.Space.Get(spaceEntry)

	w.session = factory.CreateSession(w.ecs, w.course, w.sched, rand.New(rand.NewSource(7)))
	w.player = factory.CreatePlayer(w.ecs, space, w.course.SpawnX, w.course.SpawnY)
	w.flowers = factory.CreateFlowers(w.ecs, space, w.course)

	coord := audiocue.NewCoordinator(w.sched, w.loop, map[cfg.CueID]audiocue.Track{
		cfg.CueLoss:      w.loss,
		cfg.CueScoreBump: w.score,
	})
	AttachAudio(w.ecs, coord, false)
	ResetProgress(w.ecs)

	return w
}

// tick runs one full frame with the press action held or not.
func (w *testWorld) tick(held bool) {
	input := GetOrCreateInput(w.ecs)
	BeginInputFrame(input)
	input.Current[cfg.ActionPress] = held
	ApplyPointer(input, 0, 0, held)

	UpdatePrompt(w.ecs)
	UpdatePlayAgain(w.ecs)
	UpdatePlayer(w.ecs)
	UpdateFlowers(w.ecs)
	UpdatePhysics(w.ecs)
	UpdateObjects(w.ecs)
	UpdateTimers(w.ecs)
}

// step runs only the state machine, leaving bodies where they are.
func (w *testWorld) step(held bool) {
	input := GetOrCreateInput(w.ecs)
	BeginInputFrame(input)
	input.Current[cfg.ActionPress] = held
	UpdatePlayer(w.ecs)
}

func (w *testWorld) playerData() *components.PlayerData {
	return components.Player.Get(w.player)
}

func (w *testWorld) physics() *components.PhysicsData {
	return components.Physics.Get(w.player)
}

func (w *testWorld) charge() *components.ChargeData {
	return components.Charge.Get(w.player)
}

func (w *testWorld) body() *components.ObjectData {
	return components.Object.Get(w.player)
}

func (w *testWorld) sessionData() *components.SessionData {
	return components.Session.Get(w.session)
}

func (w *testWorld) progress() *components.ProgressData {
	return components.Progress.Get(w.session)
}

func (w *testWorld) playAgain() *components.PlayAgainData {
	return components.PlayAgain.Get(w.session)
}

// airborne moves the player into open sky between flowers with a full meter.
func (w *testWorld) airborne(x, y float64) {
	obj := w.body()
	obj.SetCenter(x, y)
	obj.Update()
	p := w.playerData()
	p.OnSurface = false
	p.HasMovedOnce = true
	SetChargeTarget(w.ecs, w.player, cfg.Charge.Capacity, false)
}

func (w *testWorld) audible() int {
	n := 0
	for _, t := range []*fakeTrack{w.loop, w.loss, w.score} {
		if t.playing {
			n++
		}
	}
	return n
}
