package factory

import (
	"math/rand"

	"github.com/automoto/flowerhop/archetypes"
	"github.com/automoto/flowerhop/assets"
	"github.com/automoto/flowerhop/components"
	cfg "github.com/automoto/flowerhop/config"
	"github.com/automoto/flowerhop/timers"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the singleton holding run state, input, the clock and the course.
func CreateSession(ecs *ecs.ECS, course *assets.Course, sched *timers.Scheduler, rng *rand.Rand) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)

	components.Session.SetValue(session, components.SessionData{
		GameOverFirstTime: true,
	})
	components.Progress.SetValue(session, components.ProgressData{
		NextScoreBump: cfg.Score.BumpIncrement,
	})
	components.Prompt.SetValue(session, components.PromptData{
		Text:    cfg.UI.Prompt,
		Visible: true,
		Scale:   1,
		Growing: true,
	})
	components.Clock.SetValue(session, components.ClockData{
		Scheduler: sched,
		Rand:      rng,
	})
	components.Settings.SetValue(session, components.SettingsData{
		DebugOverlay: cfg.Debug.Overlay,
	})
	components.Level.SetValue(session, components.LevelData{
		Course: course,
	})

	return session
}
