package term

import (
	"time"

	"github.com/automoto/flowerhop/components"
	cfg "github.com/automoto/flowerhop/config"
	"github.com/automoto/flowerhop/systems"
	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi/ecs"
)

// holdWindow is how long a key event keeps the press action held.
// Terminals report presses and auto-repeats but never releases, so holding
// a key reads as a stream of short holds. Mouse buttons report real releases.
const holdWindow = 150 * time.Millisecond

// Input collects tcell events between ticks and applies them as one
// frame of components.InputData.
type Input struct {
	now func() time.Time

	lastPress time.Time
	oneShot   [cfg.ActionCount]bool

	mouseDown      bool
	mouseX, mouseY float64

	cols, rows int
}

// NewInput returns an input reader for a cols x rows terminal.
func NewInput(cols, rows int) *Input {
	return &Input{now: time.Now, cols: cols, rows: rows}
}

// Resize updates the cell grid used to map mouse positions to the viewport.
func (in *Input) Resize(cols, rows int) {
	in.cols, in.rows = cols, rows
}

// Handle records ev. It returns false when the player asked to quit.
func (in *Input) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			in.Press()
		case tcell.KeyEnter:
			in.Trigger(cfg.ActionConfirm)
		case tcell.KeyF3:
			in.Trigger(cfg.ActionDebug)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ', 'w', 'W':
				in.Press()
			case 'm', 'M':
				in.Trigger(cfg.ActionMute)
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		in.Pointer(x, y, ev.Buttons()&tcell.Button1 != 0)
	}
	return true
}

// Press marks the press action held for holdWindow.
func (in *Input) Press() {
	in.lastPress = in.now()
}

// Trigger queues a single-frame action.
func (in *Input) Trigger(action cfg.ActionID) {
	in.oneShot[action] = true
}

// Pointer records the mouse at cell col,row, centred in the cell.
func (in *Input) Pointer(col, row int, down bool) {
	in.mouseDown = down
	if in.cols > 0 && in.rows > 0 {
		in.mouseX = (float64(col) + 0.5) * float64(cfg.C.Width) / float64(in.cols)
		in.mouseY = (float64(row) + 0.5) * float64(cfg.C.Height) / float64(in.rows)
	}
}

// Held reports whether the press action is down right now.
func (in *Input) Held() bool {
	if in.mouseDown {
		return true
	}
	return !in.lastPress.IsZero() && in.now().Sub(in.lastPress) < holdWindow
}

// Apply is the input system for the terminal frontend.
func (in *Input) Apply(e *ecs.ECS) {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	input := components.Input.Get(entry)

	systems.BeginInputFrame(input)
	input.Current[cfg.ActionPress] = in.Held()
	for action, on := range in.oneShot {
		if on {
			input.Current[action] = true
		}
	}
	in.oneShot = [cfg.ActionCount]bool{}

	systems.ApplyPointer(input, in.mouseX, in.mouseY, in.mouseDown)
}
