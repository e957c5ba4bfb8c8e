package components

import (
	"github.com/automoto/flowerhop/timers"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	OnSurface    bool
	HasMovedOnce bool // Set by the first climb; gates tilt, descent and distance

	Boosted    bool
	BoostGen   uint64         // Bumped on every boost and reset so stale expiries drop
	BoostTimer *timers.Handle // Pending boost expiry

	StartX float64 // Centre position restored by play again
	StartY float64
}

var Player = donburi.NewComponentType[PlayerData]()
