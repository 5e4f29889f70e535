package components

import (
	"github.com/automoto/ratchase/shared/collision"
	"github.com/yohamta/donburi"
)

type ObstacleData struct {
	collision.Obstacle
	Scale float64
}

var Obstacle = donburi.NewComponentType[ObstacleData]()

// CollisionData holds the obstacle index for the whole field.
type CollisionData struct {
	*collision.Index
}

var Collision = donburi.NewComponentType[CollisionData]()
