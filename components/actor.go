package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ActorData is the physical state shared by the predator and the rat.
type ActorData struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Facing   float64 // yaw in radians
	Radius   float64
}

var Actor = donburi.NewComponentType[ActorData]()
