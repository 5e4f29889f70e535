package components

import (
	"math/rand/v2"

	"github.com/yohamta/donburi"
)

// RandomData is the world's random source. Seeded once per scene so a run
// can be replayed.
type RandomData struct {
	*rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()
