package components

import (
	"github.com/yohamta/donburi"
)

// PhysicsData holds the body's velocity in pixels per second.
// The core writes velocities; the integration system moves the object.
type PhysicsData struct {
	SpeedX       float64
	SpeedY       float64
	Angle        float64 // Tilt in degrees, positive is nose-down
	Gravity      float64
	AllowGravity bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
