package systems

import (
	"github.com/automoto/flowerhop/components"
	cfg "github.com/automoto/flowerhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// triggerGameOver ends the run once the player fell below the screen.
func triggerGameOver(e *ecs.ECS, entry *donburi.Entry) {
	player := components.Player.Get(entry)
	physics := components.Physics.Get(entry)

	SetChargeTarget(e, entry, 0, true)
	player.HasMovedOnce = false
	physics.AllowGravity = false
	physics.SpeedX, physics.SpeedY = 0, 0
	SetFlowerSpeed(e, 0)

	if _, session, ok := getSession(e); ok {
		session.GameOver = true
		session.Runs++
	}
	if RecordBest(e) {
		SaveRecord(e)
	}

	PlayCue(e, cfg.CueLoss)
	ShowPlayAgain(e)
}
