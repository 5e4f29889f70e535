package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the simulation clock. Now only advances while unpaused.
type ClockData struct {
	Now   float64 // seconds of simulated time
	Delta float64 // clamped delta of the current frame
	Last  time.Time
}

var Clock = donburi.NewComponentType[ClockData]()
