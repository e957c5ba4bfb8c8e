package archetypes

import (
	"github.com/automoto/flowerhop/components"
	cfg "github.com/automoto/flowerhop/config"
	"github.com/automoto/flowerhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.State,
		components.Charge,
	)
	Flower = newArchetype(
		tags.Flower,
		components.Flower,
		components.Object,
		components.Physics,
	)
	Space = newArchetype(
		components.Space,
	)
	Session = newArchetype(
		components.Session,
		components.Progress,
		components.PlayAgain,
		components.Prompt,
		components.Clock,
		components.Input,
		components.Settings,
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
