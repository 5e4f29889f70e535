package systems

import (
	"errors"
	"math"

	"github.com/automoto/ratchase/components"
	"github.com/automoto/ratchase/shared/collision"
	"github.com/automoto/ratchase/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const frame = 1.0 / 60

func newTestWorld() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateRandom(e, 1)
	factory.CreateGameState(e, 0)
	factory.CreateCollisionIndex(e)
	return e
}

func testIndex(e *ecs.ECS) *collision.Index {
	return getCollisionIndex(e)
}

// tick advances the simulation clock and runs the given systems once.
func tick(e *ecs.ECS, dt float64, systems ...ecs.System) {
	AdvanceClock(getOrCreateClock(e), dt)
	for _, s := range systems {
		s(e)
	}
}

func spawnRatAt(e *ecs.ECS, position mgl64.Vec3) *donburi.Entry {
	rat := factory.SpawnRat(e, getRandom(e), 0.15)
	components.Actor.Get(rat).Position = position
	return rat
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func vecAlmostEqual(a, b mgl64.Vec3) bool {
	return a.ApproxEqualThreshold(b, 1e-9)
}

// memStore is an in-memory ScoreStore.
type memStore struct {
	items map[string][]byte
	err   error
	saves int
}

func newMemStore() *memStore {
	return &memStore{items: map[string][]byte{}}
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	m.saves++
	m.items[key] = data
	return nil
}

var errDisk = errors.New("disk unavailable")
