package components

import "github.com/yohamta/donburi"

// FlowerData marks one slot of the fixed obstacle pool
type FlowerData struct {
	Slot    int
	Variant int // Look, assigned by slot
}

var Flower = donburi.NewComponentType[FlowerData]()
