package factory

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/ratchase/archetypes"
	"github.com/automoto/ratchase/components"
	cfg "github.com/automoto/ratchase/config"
	"github.com/automoto/ratchase/shared/collision"
	"github.com/automoto/ratchase/tags"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnRat places a new rat away from the player and clear of obstacles.
func SpawnRat(ecs *ecs.ECS, rng *rand.Rand, speed float64) *donburi.Entry {
	var index *collision.Index
	if entry, ok := components.Collision.First(ecs.World); ok {
		index = components.Collision.Get(entry).Index
	}

	var playerPos *mgl64.Vec3
	if entry, ok := tags.Player.First(ecs.World); ok {
		p := components.Actor.Get(entry).Position
		playerPos = &p
	}

	position := PickRatSpawn(index, playerPos, rng)

	rat := archetypes.Rat.Spawn(ecs)
	direction := RandomDirection(rng)
	components.Actor.SetValue(rat, components.ActorData{
		Position: position,
		Facing:   math.Atan2(direction.X(), direction.Y()),
		Radius:   cfg.Rat.Radius,
	})
	components.Rat.SetValue(rat, components.RatData{
		Direction: direction,
		Speed:     speed,
		Interval:  cfg.Rat.InitialInterval,
	})

	log.Debug("Rat spawned", "x", position.X(), "z", position.Z(), "speed", speed)
	return rat
}

// PickRatSpawn samples the field for a spot clear of obstacles and far enough
// from the player. index and playerPos may be nil.
func PickRatSpawn(index *collision.Index, playerPos *mgl64.Vec3, rng *rand.Rand) mgl64.Vec3 {
	extent := cfg.World.HalfExtent() - cfg.Rat.SpawnMargin
	for attempt := 0; attempt < cfg.Rat.SpawnAttempts; attempt++ {
		candidate := mgl64.Vec3{
			(rng.Float64()*2 - 1) * extent,
			0,
			(rng.Float64()*2 - 1) * extent,
		}
		if index != nil && index.Overlaps(candidate, cfg.Rat.SpawnClearance) {
			continue
		}
		if playerPos != nil {
			dx := candidate.X() - playerPos.X()
			dz := candidate.Z() - playerPos.Z()
			if math.Sqrt(dx*dx+dz*dz) <= cfg.Rat.SpawnMinDistance {
				continue
			}
		}
		return candidate
	}

	log.Debug("Rat spawn attempts exhausted, using fallback", "attempts", cfg.Rat.SpawnAttempts)
	return mgl64.Vec3{cfg.Rat.SpawnFallbackX, 0, cfg.Rat.SpawnFallbackZ}
}

// RandomDirection returns a unit vector from components drawn in [-1, 1).
func RandomDirection(rng *rand.Rand) mgl64.Vec2 {
	for i := 0; i < 8; i++ {
		d := mgl64.Vec2{rng.Float64()*2 - 1, rng.Float64()*2 - 1}
		if d.Len() > 1e-6 {
			return d.Normalize()
		}
	}
	return mgl64.Vec2{1, 0}
}
