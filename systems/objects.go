package systems

import (
	"github.com/automoto/flowerhop/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers moved bodies with the space so the next
// tick's overlap query sees current positions.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		obj.Update()
	})
}
