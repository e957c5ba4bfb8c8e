// Package client holds the ebiten side of the runner: device polling,
// audio playback and the renderers. The simulation in package systems
// never imports it.
package client

import (
	cfg "github.com/automoto/flowerhop/config"
	"github.com/automoto/flowerhop/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Binding represents the keys and pointer sources bound to an action
type Binding struct {
	Keys    []ebiten.Key
	Pointer bool // Left mouse button or any touch
}

// Bindings maps every action to its keyboard and pointer sources
var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionPress: {
		Keys:    []ebiten.Key{ebiten.KeySpace, ebiten.KeyUp, ebiten.KeyW},
		Pointer: true,
	},
	cfg.ActionConfirm: {
		Keys: []ebiten.Key{ebiten.KeyEnter},
	},
	cfg.ActionMute: {
		Keys: []ebiten.Key{ebiten.KeyM},
	},
	cfg.ActionDebug: {
		Keys: []ebiten.Key{ebiten.KeyF3},
	},
}

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// UpdateInput polls the keyboard, mouse and touches into the Input component.
// Must run BEFORE systems.UpdatePlayer in the system order.
func UpdateInput(e *ecs.ECS) {
	input := systems.GetOrCreateInput(e)
	systems.BeginInputFrame(input)

	x, y, pointerDown := pollPointer()

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		if binding.Pointer && pointerDown {
			input.Current[actionID] = true
		}
	}

	systems.ApplyPointer(input, x, y, pointerDown)
}

// pollPointer returns the primary pointer position and whether it is down.
// The first touch wins over the mouse.
func pollPointer() (x, y float64, down bool) {
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(touchIDs[0])
		return float64(tx), float64(ty), true
	}

	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}
