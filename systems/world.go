package systems

import (
	"math/rand"
	"time"

	"github.com/automoto/flowerhop/assets"
	"github.com/automoto/flowerhop/audiocue"
	"github.com/automoto/flowerhop/components"
	cfg "github.com/automoto/flowerhop/config"
	factory2 "github.com/automoto/flowerhop/systems/factory"
	"github.com/automoto/flowerhop/timers"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Space cells cover a few screens to the right so recycled flowers stay queryable.
const (
	spaceScreens = 4
	spaceCell    = 32
)

// WorldOptions configures a runner world independent of the frontend.
type WorldOptions struct {
	Course *assets.Course
	Seed   int64

	// Input fills components.InputData each tick. It runs first.
	Input func(e *ecs.ECS)

	// Audio builds the coordinator on the world's scheduler. Nil means silent.
	Audio func(sched *timers.Scheduler) *audiocue.Coordinator
	Muted bool

	Saved *SavedRecord
}

// NewWorld creates the entities and registers the update systems shared by
// every frontend. Renderers are left to the caller.
func NewWorld(opts WorldOptions) *ecs.ECS {
	course := opts.Course
	if course == nil {
		course = assets.DefaultCourse()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := ecs.NewECS(donburi.NewWorld())

	if opts.Input != nil {
		e.AddSystem(opts.Input)
	}
	e.AddSystem(UpdateSettings)
	e.AddSystem(UpdatePrompt)
	e.AddSystem(UpdatePlayAgain)
	e.AddSystem(UpdatePlayer)
	e.AddSystem(UpdateFlowers)
	e.AddSystem(UpdatePhysics)
	e.AddSystem(UpdateObjects)
	// Timers run last so callbacks queued this tick see its transitions.
	e.AddSystem(UpdateTimers)

	sched := timers.New()

	width := course.Width
	if min := spaceScreens * cfg.C.Width; width < min {
		width = min
	}
	height := course.Height
	if min := cfg.C.Height + cfg.C.Height/2; height < min {
		height = min
	}
	spaceEntry := factory2.CreateSpace(e, width, height, spaceCell, spaceCell)
	space := components.Space.Get(spaceEntry)

	factory2.CreateSession(e, course, sched, rand.New(rand.NewSource(seed)))
	factory2.CreatePlayer(e, space, course.SpawnX, course.SpawnY)
	factory2.CreateFlowers(e, space, course)
	ResetProgress(e)

	muted := opts.Muted
	if opts.Saved != nil {
		ApplySavedRecord(e, opts.Saved)
		muted = muted || opts.Saved.Muted
	}

	coord := audiocue.NewCoordinator(sched, nil, nil)
	if opts.Audio != nil {
		coord = opts.Audio(sched)
	}
	AttachAudio(e, coord, muted)

	return e
}
