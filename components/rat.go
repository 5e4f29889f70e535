package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// RatData drives the rat's wandering. Direction is on the XZ plane,
// X maps to world X and Y maps to world Z.
type RatData struct {
	Direction mgl64.Vec2
	Speed     float64 // world units per 60fps frame
	Timer     float64 // seconds since the last direction change
	Interval  float64 // seconds until the next direction change
}

var Rat = donburi.NewComponentType[RatData]()
