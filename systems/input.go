package systems

import (
	"github.com/automoto/flowerhop/components"
	cfg "github.com/automoto/flowerhop/config"
	"github.com/yohamta/donburi/ecs"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// BeginInputFrame swaps buffers: current becomes previous, then current is cleared.
func BeginInputFrame(input *components.InputData) {
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
}

// ApplyPointer records this frame's pointer. The last position is kept on the
// release frame so a release can be hit-tested.
func ApplyPointer(input *components.InputData, x, y float64, down bool) {
	input.PointerWasDown = input.PointerDown
	input.PointerDown = down
	input.PointerReleased = input.PointerWasDown && !down
	if down {
		input.PointerX, input.PointerY = x, y
	}
}

// PointerJustPressed reports a pointer press that started this frame.
func PointerJustPressed(input *components.InputData) bool {
	return input.PointerDown && !input.PointerWasDown
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
