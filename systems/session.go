package systems

import (
	"math/rand"

	"github.com/automoto/flowerhop/components"
	"github.com/automoto/flowerhop/timers"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// getSession returns the session singleton and its run state.
func getSession(e *ecs.ECS) (*donburi.Entry, *components.SessionData, bool) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil, nil, false
	}
	return entry, components.Session.Get(entry), true
}

// GetScheduler returns the world's scheduler, creating a clock if the world has none.
func GetScheduler(e *ecs.ECS) *timers.Scheduler {
	return getOrCreateClock(e).Scheduler
}

// GetRand returns the world's random source.
func GetRand(e *ecs.ECS) *rand.Rand {
	return getOrCreateClock(e).Rand
}

func getOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Clock))
	}
	clock := components.Clock.Get(entry)
	if clock.Scheduler == nil {
		clock.Scheduler = timers.New()
	}
	if clock.Rand == nil {
		clock.Rand = rand.New(rand.NewSource(1))
	}
	return clock
}

// getProgress returns the progress singleton, if the world has one.
func getProgress(e *ecs.ECS) (*components.ProgressData, bool) {
	entry, ok := components.Progress.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Progress.Get(entry), true
}

// getPlayer returns the first player entity.
func getPlayer(e *ecs.ECS) (*donburi.Entry, bool) {
	return components.Player.First(e.World)
}
