package systems

import (
	cfg "github.com/automoto/flowerhop/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTimers advances the world clock by one tick and runs every callback
// that came due. Runs last so nothing queued this tick fires before the
// tick's transitions are done.
func UpdateTimers(e *ecs.ECS) {
	GetScheduler(e).Advance(cfg.C.TickDuration())
}
