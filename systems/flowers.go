package systems

import (
	"math"
	"math/rand"
	"sort"

	"github.com/automoto/flowerhop/assets"
	"github.com/automoto/flowerhop/components"
	cfg "github.com/automoto/flowerhop/config"
	"github.com/automoto/flowerhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFlowers recycles flowers that scrolled past the respawn threshold.
// Runs after UpdatePlayer so velocity assignment never overwrites a relocation.
func UpdateFlowers(e *ecs.ECS) {
	if _, s, ok := getSession(e); ok && s.GameOver {
		return
	}

	flowers := orderedFlowers(e)
	bodies := make([]components.ObjectData, len(flowers))
	for i, f := range flowers {
		bodies[i] = *components.Object.Get(f)
	}
	RecycleFlowers(GetRand(e), bodies)
}

// RecycleFlowers relocates every body whose centre is left of the respawn
// threshold, in the order given. A recycled flower lands a random fraction
// of the screen width ahead of where it was, never closer than one spacing
// past the rightmost other flower; flowers recycled in the same call are
// pushed a further spacing apart. Returns how many were moved.
func RecycleFlowers(rng *rand.Rand, bodies []components.ObjectData) int {
	threshold := cfg.Flowers.RespawnThreshold
	spacing := cfg.Flowers.Spacing
	width := float64(cfg.C.Width)

	moved := 0
	offset := 0.0
	for i, f := range bodies {
		if f.CenterX() >= threshold {
			continue
		}

		rightmost := threshold
		for j, other := range bodies {
			if j != i {
				rightmost = math.Max(rightmost, other.CenterX())
			}
		}

		x := f.CenterX() + width*uniform(rng, cfg.Flowers.MinSpacingFactor, cfg.Flowers.MaxSpacingFactor)
		x = math.Max(x, rightmost+spacing) + offset
		y := uniform(rng, cfg.Flowers.MinHeight, cfg.Flowers.MaxHeight)
		f.SetCenter(x, y)

		offset += spacing
		moved++
	}
	return moved
}

// SetFlowerSpeed gives every flower the same horizontal velocity.
func SetFlowerSpeed(e *ecs.ECS, vx float64) {
	tags.Flower.Each(e.World, func(entry *donburi.Entry) {
		physics := components.Physics.Get(entry)
		physics.SpeedX = vx
		physics.SpeedY = 0
	})
}

// ResetFlowerLayout puts the pool back where the course starts it, at rest.
func ResetFlowerLayout(e *ecs.ECS, course *assets.Course) {
	if course == nil {
		course = assets.DefaultCourse()
	}
	for i, entry := range orderedFlowers(e) {
		if i >= len(course.Flowers) {
			break
		}
		slot := course.Flowers[i]
		obj := components.Object.Get(entry)
		obj.SetCenter(slot.X, slot.Y)
		obj.Update()
	}
	SetFlowerSpeed(e, 0)
}

// IsLanding reports whether an overlap between the player and a flower is a
// landing rather than a side graze: the player must be well above the flower
// and close to it horizontally.
func IsLanding(player, flower components.ObjectData) bool {
	above := flower.CenterY() - player.CenterY()
	offset := math.Abs(flower.CenterX() - player.CenterX())
	return above > cfg.Flowers.AboveThreshold && offset < cfg.Flowers.HorizontalThreshold
}

// orderedFlowers returns the pool in slot order.
func orderedFlowers(e *ecs.ECS) []*donburi.Entry {
	var flowers []*donburi.Entry
	tags.Flower.Each(e.World, func(entry *donburi.Entry) {
		flowers = append(flowers, entry)
	})
	sort.Slice(flowers, func(i, j int) bool {
		return components.Flower.Get(flowers[i]).Slot < components.Flower.Get(flowers[j]).Slot
	})
	return flowers
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + rng.Float64()*(hi-lo)
}
