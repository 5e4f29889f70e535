package factory

import (
	"math/rand/v2"

	"github.com/automoto/ratchase/archetypes"
	"github.com/automoto/ratchase/components"
	cfg "github.com/automoto/ratchase/config"
	"github.com/automoto/ratchase/shared/collision"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCollisionIndex spawns the singleton obstacle index for the field.
func CreateCollisionIndex(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Collision.Spawn(ecs)
	index := collision.NewIndex(
		cfg.World.HalfExtent(),
		cfg.World.HalfExtent()-cfg.Player.Size,
		cfg.World.SpaceScale,
		cfg.World.SpaceCellSize,
	)
	components.Collision.SetValue(entry, components.CollisionData{Index: index})
	return entry
}

// PlaceObstacles scatters trees and rocks uniformly over the field.
func PlaceObstacles(ecs *ecs.ECS, index *collision.Index, rng *rand.Rand) {
	ground := cfg.World.GroundSize
	for i := 0; i < cfg.World.TreeCount; i++ {
		x := (rng.Float64() - 0.5) * (ground - cfg.World.TreeSpread)
		z := (rng.Float64() - 0.5) * (ground - cfg.World.TreeSpread)
		scale := cfg.World.TreeMinScale + rng.Float64()*cfg.World.TreeScaleRange
		CreateTree(ecs, index, x, z, scale)
	}
	for i := 0; i < cfg.World.RockCount; i++ {
		x := (rng.Float64() - 0.5) * (ground - cfg.World.RockSpread)
		z := (rng.Float64() - 0.5) * (ground - cfg.World.RockSpread)
		scale := cfg.World.RockMinScale + rng.Float64()*cfg.World.RockScaleRange
		CreateRock(ecs, index, x, z, scale)
	}
}

func CreateTree(ecs *ecs.ECS, index *collision.Index, x, z, scale float64) *donburi.Entry {
	return createObstacle(ecs, index, archetypes.Tree, collision.Tree, x, z, scale, cfg.World.TreeRadius*scale)
}

func CreateRock(ecs *ecs.ECS, index *collision.Index, x, z, scale float64) *donburi.Entry {
	return createObstacle(ecs, index, archetypes.Rock, collision.Rock, x, z, scale, cfg.World.RockRadius*scale)
}

type spawner interface {
	Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry
}

func createObstacle(ecs *ecs.ECS, index *collision.Index, arch spawner, kind collision.Kind, x, z, scale, radius float64) *donburi.Entry {
	obstacle := collision.Obstacle{
		Kind:     kind,
		Position: mgl64.Vec3{x, 0, z},
		Radius:   radius,
	}
	entry := arch.Spawn(ecs)
	components.Obstacle.SetValue(entry, components.ObstacleData{
		Obstacle: obstacle,
		Scale:    scale,
	})
	index.Add(obstacle)
	return entry
}
