package systems

import (
	"time"

	"github.com/automoto/ratchase/components"
	cfg "github.com/automoto/ratchase/config"
	"github.com/automoto/ratchase/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock measures the wall time since the last frame and advances the
// simulation clock. The clock stands still while paused, so scheduled events
// keep their remaining time across a pause.
// This system should run FIRST.
func UpdateClock(ecs *ecs.ECS) {
	clock := getOrCreateClock(ecs)
	now := time.Now()

	var elapsed float64
	if !clock.Last.IsZero() {
		elapsed = now.Sub(clock.Last).Seconds()
	}
	clock.Last = now

	if GetOrCreatePause(ecs).IsPaused {
		clock.Delta = 0
		return
	}
	AdvanceClock(clock, elapsed)
}

// AdvanceClock moves the simulation forward by dt, clamped to the max step.
func AdvanceClock(clock *components.ClockData, dt float64) {
	clock.Delta = gamemath.ClampDelta(dt, cfg.World.MaxStep)
	clock.Now += clock.Delta
}

func getOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
