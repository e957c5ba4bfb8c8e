package systems

import (
	"github.com/automoto/flowerhop/components"
	cfg "github.com/automoto/flowerhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates velocities into positions over one tick.
// Velocities are pixels per second; gravity only applies where allowed.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := cfg.C.TickDuration().Seconds()

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		if physics.AllowGravity {
			physics.SpeedY += physics.Gravity * dt
		}

		obj.X += physics.SpeedX * dt
		obj.Y += physics.SpeedY * dt
	})
}
