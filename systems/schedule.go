package systems

import (
	"cmp"
	"slices"

	"github.com/automoto/ratchase/components"
	"github.com/yohamta/donburi/ecs"
)

// Schedule registers fire to run once the simulation clock has advanced by
// delay seconds. It returns an id usable with CancelScheduled.
func Schedule(ecs *ecs.ECS, name string, delay float64, fire func(*ecs.ECS)) uint64 {
	schedule := getOrCreateSchedule(ecs)
	clock := getOrCreateClock(ecs)

	if delay < 0 {
		delay = 0
	}
	schedule.NextID++
	schedule.Events = append(schedule.Events, components.ScheduledEvent{
		ID:   schedule.NextID,
		At:   clock.Now + delay,
		Name: name,
		Fire: fire,
	})
	return schedule.NextID
}

// CancelScheduled drops a pending event. It reports whether one was removed.
func CancelScheduled(ecs *ecs.ECS, id uint64) bool {
	schedule := getOrCreateSchedule(ecs)
	for i, ev := range schedule.Events {
		if ev.ID == id {
			schedule.Events = slices.Delete(schedule.Events, i, i+1)
			return true
		}
	}
	return false
}

// ClearSchedule cancels everything pending, including events already due
// this frame that have not fired yet.
func ClearSchedule(ecs *ecs.ECS) {
	schedule := getOrCreateSchedule(ecs)
	schedule.Events = nil
	schedule.Epoch++
}

// PendingEvents returns the number of events waiting to fire.
func PendingEvents(ecs *ecs.ECS) int {
	return len(getOrCreateSchedule(ecs).Events)
}

// UpdateSchedule fires every event whose time has come, oldest first.
// Events scheduled while firing wait for the next frame.
func UpdateSchedule(ecs *ecs.ECS) {
	schedule := getOrCreateSchedule(ecs)
	now := getOrCreateClock(ecs).Now

	var due []components.ScheduledEvent
	pending := schedule.Events[:0]
	for _, ev := range schedule.Events {
		if ev.At <= now {
			due = append(due, ev)
		} else {
			pending = append(pending, ev)
		}
	}
	if len(due) == 0 {
		return
	}
	schedule.Events = pending

	slices.SortFunc(due, func(a, b components.ScheduledEvent) int {
		if c := cmp.Compare(a.At, b.At); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	epoch := schedule.Epoch
	for _, ev := range due {
		if getOrCreateSchedule(ecs).Epoch != epoch {
			return
		}
		if ev.Fire != nil {
			ev.Fire(ecs)
		}
	}
}

func getOrCreateSchedule(ecs *ecs.ECS) *components.ScheduleData {
	entry, ok := components.Schedule.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Schedule))
	}
	return components.Schedule.Get(entry)
}
