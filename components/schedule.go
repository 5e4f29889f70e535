package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ScheduledEvent is a deferred action keyed on the simulation clock.
type ScheduledEvent struct {
	ID   uint64
	At   float64 // simulation time in seconds
	Name string
	Fire func(e *ecs.ECS)
}

type ScheduleData struct {
	Events []ScheduledEvent
	NextID uint64
	Epoch  uint64 // bumped by a full clear so in-flight batches stop firing
}

var Schedule = donburi.NewComponentType[ScheduleData]()
