package components

import (
	"github.com/automoto/flowerhop/assets"
	"github.com/yohamta/donburi"
)

// LevelData holds the course layout the flower pool and player spawn come from
type LevelData struct {
	Course *assets.Course
}

var Level = donburi.NewComponentType[LevelData]()
