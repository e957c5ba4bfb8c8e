package components

import (
	"github.com/automoto/flowerhop/timers"
	"github.com/yohamta/donburi"
)

// ChargeData is the jump charge meter. Remaining is the gameplay value and
// Fill is the ratio the HUD draws, which lags behind while animating.
type ChargeData struct {
	Remaining int
	Capacity  int
	Fill      float64

	Animation *timers.Handle // Next step of the in-flight fill animation
}

var Charge = donburi.NewComponentType[ChargeData]()
