package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction    mgl64.Vec3 // desired movement, camera relative, horizontal
	Moving       bool
	Boost        bool
	TargetFacing float64
	HitBoundary  bool // latched while the predator is pressed against the edge
}

var Player = donburi.NewComponentType[PlayerData]()
