package components

import (
	"github.com/automoto/flowerhop/audiocue"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Coordinator *audiocue.Coordinator
	Muted       bool
}

var Audio = donburi.NewComponentType[AudioData]()
