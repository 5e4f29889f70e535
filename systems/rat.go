package systems

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/ratchase/components"
	cfg "github.com/automoto/ratchase/config"
	"github.com/automoto/ratchase/shared/gamemath"
	"github.com/automoto/ratchase/systems/factory"
	"github.com/automoto/ratchase/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateRat(ecs *ecs.ECS) {
	clock := getOrCreateClock(ecs)
	rng := getRandom(ecs)
	tags.Rat.Each(ecs.World, func(entry *donburi.Entry) {
		StepRat(components.Actor.Get(entry), components.Rat.Get(entry), rng, clock.Delta)
	})
}

// StepRat advances the rat's wander. It picks a new heading when the
// interval runs out and bounces back off the margin. Obstacles are ignored.
// It reports whether the rat hit the edge.
func StepRat(actor *components.ActorData, rat *components.RatData, rng *rand.Rand, dt float64) bool {
	rat.Timer += dt
	if rat.Timer >= rat.Interval {
		rat.Direction = factory.RandomDirection(rng)
		rat.Timer = 0
		rat.Interval = cfg.Rat.MinInterval + rng.Float64()*(cfg.Rat.MaxInterval-cfg.Rat.MinInterval)
	}

	move := rat.Speed * gamemath.FrameFactor(gamemath.ClampDelta(dt, cfg.World.MaxStep))
	actor.Position[0] += rat.Direction.X() * move
	actor.Position[2] += rat.Direction.Y() * move
	actor.Facing = math.Atan2(rat.Direction.X(), rat.Direction.Y())

	limit := cfg.World.HalfExtent() - cfg.Rat.BoundaryMargin
	var hitX, hitZ bool
	actor.Position[0], hitX = gamemath.ClampAxis(actor.Position[0], limit)
	actor.Position[2], hitZ = gamemath.ClampAxis(actor.Position[2], limit)
	if !hitX && !hitZ {
		return false
	}

	reversed := rat.Direction.Mul(-1)
	if reversed.Len() > 1e-9 {
		reversed = reversed.Normalize()
	}
	rat.Direction = reversed
	return true
}
