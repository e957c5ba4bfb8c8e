package systems

import (
	"github.com/automoto/flowerhop/components"
	cfg "github.com/automoto/flowerhop/config"
	"github.com/automoto/flowerhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer runs the player's transitions for this tick in fixed
// precedence: game over freeze, landing, airborne drift, take-off boost,
// climbing, then falling out or the ceiling clamp. While boosted the body may
// rise past Ceiling up to BoostCeiling.
// Must run AFTER UpdateInput and BEFORE UpdateFlowers.
func UpdatePlayer(e *ecs.ECS) {
	_, session, ok := getSession(e)
	if !ok {
		return
	}

	held := false
	if entry, ok := components.Input.First(e.World); ok {
		held = components.Input.Get(entry).Current[cfg.ActionPress]
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		updatePlayer(e, entry, session, held)
	})
}

func updatePlayer(e *ecs.ECS, entry *donburi.Entry, session *components.SessionData, held bool) {
	player := components.Player.Get(entry)
	physics := components.Physics.Get(entry)
	obj := components.Object.Get(entry)
	state := components.State.Get(entry)

	if session.GameOver {
		physics.SpeedX, physics.SpeedY = 0, 0
		physics.AllowGravity = false
		setState(state, cfg.GameOver)
		return
	}

	if !player.OnSurface && CheckLanding(entry) {
		player.OnSurface = true
	}

	if player.OnSurface {
		SetChargeTarget(e, entry, cfg.Charge.Capacity, true)
		physics.AllowGravity = false
		physics.Angle = 0
		physics.SpeedX, physics.SpeedY = 0, 0
		SetFlowerSpeed(e, 0)
	} else {
		physics.AllowGravity = true
		if player.HasMovedOnce {
			physics.Angle = cfg.Player.TiltAngle
			if !player.Boosted {
				physics.SpeedY = cfg.Player.DescentSpeed
			}
			SetFlowerSpeed(e, -cfg.World.Speed)
			AdvanceProgress(e, cfg.World.DistancePerTick)
		}
	}

	if held && player.OnSurface {
		takeOff(e, entry)
	}

	if held && components.Charge.Get(entry).Remaining > 0 {
		player.HasMovedOnce = true
		if !player.Boosted {
			physics.Angle = -cfg.Player.TiltAngle
			physics.SpeedY = -cfg.Player.ClimbSpeed
			SetChargeTarget(e, entry, components.Charge.Get(entry).Remaining-1, true)
		}
	}

	switch {
	case obj.CenterY() > float64(cfg.C.Height):
		triggerGameOver(e, entry)
	case obj.CenterY() < cfg.World.Ceiling:
		if !player.Boosted {
			obj.SetCenter(obj.CenterX(), cfg.World.Ceiling)
		} else if obj.CenterY() < cfg.World.BoostCeiling {
			// Half the body stays on screen; gravity brings it back before the boost ends.
			obj.SetCenter(obj.CenterX(), cfg.World.BoostCeiling)
			physics.SpeedY = max(physics.SpeedY, 0)
		}
		physics.Angle = 0
	}

	setState(state, currentState(player, session))
}

// takeOff leaves the flower with a boost: one-shot charge cost, a larger
// upward velocity, and a timer that ends the boosted window.
func takeOff(e *ecs.ECS, entry *donburi.Entry) {
	player := components.Player.Get(entry)
	physics := components.Physics.Get(entry)
	charge := components.Charge.Get(entry)

	player.OnSurface = false
	physics.SpeedY = -cfg.Player.BoostSpeed
	SetChargeTarget(e, entry, charge.Remaining-cfg.Player.BoostCost, true)

	player.Boosted = true
	player.BoostGen++
	gen := player.BoostGen
	player.BoostTimer.Cancel()
	player.BoostTimer = GetScheduler(e).After(cfg.Player.BoostDuration, func() {
		if !entry.Valid() {
			return
		}
		p := components.Player.Get(entry)
		if p.BoostGen != gen {
			return
		}
		p.Boosted = false
		p.BoostTimer = nil
	})
}

// ResetPlayer puts the player back at its start position for a new run.
func ResetPlayer(e *ecs.ECS, entry *donburi.Entry) {
	player := components.Player.Get(entry)
	physics := components.Physics.Get(entry)
	obj := components.Object.Get(entry)

	obj.SetCenter(player.StartX, player.StartY)
	obj.Update()

	player.OnSurface = false
	player.HasMovedOnce = false
	player.Boosted = false
	player.BoostGen++
	player.BoostTimer.Cancel()
	player.BoostTimer = nil

	physics.SpeedX, physics.SpeedY = 0, 0
	physics.Angle = 0
	physics.AllowGravity = true

	// A drain animation from the game over may still be running; a reset snaps.
	SetChargeTarget(e, entry, 0, false)
	charge := components.Charge.Get(entry)
	charge.Animation.Cancel()
	charge.Animation = nil
	charge.Fill = 0

	setState(components.State.Get(entry), cfg.Airborne)
}
