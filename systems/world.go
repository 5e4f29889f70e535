package systems

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/ratchase/components"
	"github.com/automoto/ratchase/shared/collision"
	"github.com/automoto/ratchase/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

func getCollisionIndex(ecs *ecs.ECS) *collision.Index {
	entry, ok := components.Collision.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Collision.Get(entry).Index
}

// getRandom returns the world's random source, seeding one from the clock if
// the scene didn't provide it.
func getRandom(ecs *ecs.ECS) *rand.Rand {
	entry, ok := components.Random.First(ecs.World)
	if !ok {
		return factory.CreateRandom(ecs, uint64(time.Now().UnixNano()))
	}
	return components.Random.Get(entry).Rand
}
