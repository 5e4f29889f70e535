package factory

import (
	"math/rand/v2"

	"github.com/automoto/ratchase/archetypes"
	"github.com/automoto/ratchase/components"
	cfg "github.com/automoto/ratchase/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGameState spawns the score singleton, carrying over a saved record.
func CreateGameState(ecs *ecs.ECS, highScore int) *donburi.Entry {
	game := archetypes.GameState.Spawn(ecs)
	components.GameState.SetValue(game, NewGameState(highScore))
	return game
}

// NewGameState returns the state of a fresh run.
func NewGameState(highScore int) components.GameStateData {
	return components.GameStateData{
		Level:        cfg.Capture.StartLevel,
		Score:        0,
		HighScore:    max(highScore, 0),
		RatSpeed:     cfg.Rat.StartSpeed,
		RatsPerLevel: cfg.Capture.RatsPerLevel,
		Phase:        components.PhaseRoaming,
	}
}

// CreateRandom spawns the world's random source.
func CreateRandom(ecs *ecs.ECS, seed uint64) *rand.Rand {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	entry := ecs.World.Entry(ecs.World.Create(components.Random))
	components.Random.SetValue(entry, components.RandomData{Rand: rng})
	return rng
}
