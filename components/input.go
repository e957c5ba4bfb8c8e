package components

import (
	cfg "github.com/automoto/flowerhop/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// Pointer position in screen pixels, valid while PointerDown or on the release frame
	PointerX        float64
	PointerY        float64
	PointerDown     bool
	PointerWasDown  bool
	PointerReleased bool
}

var Input = donburi.NewComponentType[InputData]()
