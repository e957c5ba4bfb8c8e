package systems

import (
	"github.com/automoto/flowerhop/components"
	cfg "github.com/automoto/flowerhop/config"
)

// currentState derives the player's state from its flags at the end of a tick.
func currentState(player *components.PlayerData, session *components.SessionData) cfg.StateID {
	switch {
	case session.GameOver:
		return cfg.GameOver
	case player.OnSurface:
		return cfg.Grounded
	case player.Boosted:
		return cfg.Boosted
	default:
		return cfg.Airborne
	}
}

func setState(state *components.StateData, next cfg.StateID) {
	if state.CurrentState == next {
		state.StateTimer++
		return
	}
	state.PreviousState = state.CurrentState
	state.CurrentState = next
	state.StateTimer = 0
}
