package factory

import (
	"github.com/automoto/flowerhop/archetypes"
	"github.com/automoto/flowerhop/assets"
	"github.com/automoto/flowerhop/components"
	cfg "github.com/automoto/flowerhop/config"
	"github.com/automoto/flowerhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFlower spawns one pooled flower centred on the slot position.
func CreateFlower(ecs *ecs.ECS, space *resolv.Space, slot assets.FlowerSlot) *donburi.Entry {
	flower := archetypes.Flower.Spawn(ecs)

	w, h := cfg.Flowers.Width, cfg.Flowers.Height
	obj := resolv.NewObject(slot.X-w/2, slot.Y-h/2, w, h, tags.ResolvFlower)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = flower
	components.Object.SetValue(flower, components.ObjectData{Object: obj})
	if space != nil {
		space.Add(obj)
	}

	components.Flower.SetValue(flower, components.FlowerData{
		Slot:    slot.Slot,
		Variant: slot.Variant,
	})

	return flower
}

// CreateFlowers spawns the whole pool in slot order.
func CreateFlowers(ecs *ecs.ECS, space *resolv.Space, course *assets.Course) []*donburi.Entry {
	flowers := make([]*donburi.Entry, 0, len(course.Flowers))
	for _, slot := range course.Flowers {
		flowers = append(flowers, CreateFlower(ecs, space, slot))
	}
	return flowers
}
