package systems

import (
	"github.com/automoto/flowerhop/components"
	"github.com/automoto/flowerhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CheckLanding polls the space for flowers overlapping the player and
// reports whether any of those overlaps is a landing.
func CheckLanding(player *donburi.Entry) bool {
	obj := components.Object.Get(player)
	if obj.Object == nil {
		return false
	}

	// Check is a cell broadphase; confirm each candidate with an exact box test.
	check := obj.Check(0, 0, tags.ResolvFlower)
	if check == nil {
		return false
	}

	for _, other := range check.ObjectsByTags(tags.ResolvFlower) {
		if !overlaps(obj.Object, other) {
			continue
		}
		flower, ok := other.Data.(*donburi.Entry)
		if !ok || !flower.Valid() {
			continue
		}
		if IsLanding(*obj, *components.Object.Get(flower)) {
			return true
		}
	}
	return false
}

// overlaps is a strict axis-aligned box intersection; touching edges do not count.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}
