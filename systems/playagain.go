package systems

import (
	"github.com/automoto/flowerhop/components"
	cfg "github.com/automoto/flowerhop/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayAgain handles presses on the play again prompt while it is shown.
// A pointer press inside the prompt shows the pressed look; releasing inside
// it starts a new run. The confirm key starts one directly.
func UpdatePlayAgain(e *ecs.ECS) {
	entry, ok := components.PlayAgain.First(e.World)
	if !ok {
		return
	}
	playAgain := components.PlayAgain.Get(entry)
	input := GetOrCreateInput(e)

	if !playAgain.Visible {
		playAgain.Pressed = false
		return
	}

	w, h := float64(cfg.C.Width), float64(cfg.C.Height)

	if PointerJustPressed(input) && InPlayAgainRect(input.PointerX, input.PointerY, w, h) {
		playAgain.Pressed = true
	}

	if input.PointerReleased {
		inside := InPlayAgainRect(input.PointerX, input.PointerY, w, h)
		playAgain.Pressed = false
		if inside {
			ResetSession(e)
			return
		}
	}

	if GetAction(input, cfg.ActionConfirm).JustPressed {
		ResetSession(e)
	}
}

// InPlayAgainRect tests a point against the prompt's rectangle, expressed as
// fractions of the viewport so every platform's coordinates agree.
func InPlayAgainRect(x, y, width, height float64) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	fx, fy := x/width, y/height
	return fx >= cfg.PlayAgain.MinX && fx <= cfg.PlayAgain.MaxX &&
		fy >= cfg.PlayAgain.MinY && fy <= cfg.PlayAgain.MaxY
}

// ShowPlayAgain makes the prompt visible, building it on the session's first game over.
func ShowPlayAgain(e *ecs.ECS) {
	entry, ok := components.PlayAgain.First(e.World)
	if !ok {
		return
	}
	playAgain := components.PlayAgain.Get(entry)

	if _, session, ok := getSession(e); ok && session.GameOverFirstTime {
		playAgain.Builds++
		session.GameOverFirstTime = false
	}
	playAgain.Visible = true
	playAgain.Pressed = false
}

// ResetSession starts a new run after a game over. It is a no-op mid-run.
func ResetSession(e *ecs.ECS) {
	sessionEntry, session, ok := getSession(e)
	if !ok || !session.GameOver {
		return
	}
	session.GameOver = false

	if entry, ok := components.PlayAgain.First(e.World); ok {
		playAgain := components.PlayAgain.Get(entry)
		playAgain.Visible = false
		playAgain.Pressed = false
	}

	if player, ok := getPlayer(e); ok {
		ResetPlayer(e, player)
	}

	course := components.Level.Get(sessionEntry).Course
	ResetFlowerLayout(e, course)
	ResetProgress(e)
	ResetAudio(e)
}
