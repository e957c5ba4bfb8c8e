package factory

import (
	"github.com/automoto/flowerhop/archetypes"
	"github.com/automoto/flowerhop/components"
	cfg "github.com/automoto/flowerhop/config"
	"github.com/automoto/flowerhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player centred on (x, y), grounded with an empty meter.
func CreatePlayer(ecs *ecs.ECS, space *resolv.Space, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x-cfg.Player.Width/2, y-cfg.Player.Height/2, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.Width, cfg.Player.Height))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	if space != nil {
		space.Add(obj)
	}

	components.Player.SetValue(player, components.PlayerData{
		OnSurface: true,
		StartX:    x,
		StartY:    y,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Grounded,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity: cfg.Player.Gravity,
	})
	components.Charge.SetValue(player, components.ChargeData{
		Capacity: cfg.Charge.Capacity,
	})

	return player
}
