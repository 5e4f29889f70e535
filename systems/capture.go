package systems

import (
	"github.com/automoto/ratchase/components"
	cfg "github.com/automoto/ratchase/config"
	"github.com/automoto/ratchase/shared/gamemath"
	"github.com/automoto/ratchase/systems/factory"
	"github.com/automoto/ratchase/tags"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCapture checks whether the predator reached the rat.
// This system should run AFTER UpdatePlayer.
func UpdateCapture(ecs *ecs.ECS) {
	game := GetOrCreateGameState(ecs)
	if game.Phase != components.PhaseRoaming {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	ratEntry, ok := tags.Rat.First(ecs.World)
	if !ok {
		return
	}

	if IsRatCaught(components.Actor.Get(playerEntry).Position, components.Actor.Get(ratEntry).Position) {
		CaptureRat(ecs, ratEntry)
	}
}

// IsRatCaught reports whether the two positions are within capture distance on the ground plane.
func IsRatCaught(player, rat mgl64.Vec3) bool {
	return gamemath.PlanarDistance(player.X(), player.Z(), rat.X(), rat.Z()) < cfg.Capture.Distance
}

// RecordCapture scores one rat, raising the record and the level when due.
func RecordCapture(game *components.GameStateData) (leveledUp, newRecord bool) {
	game.Score++
	if game.Score > game.HighScore {
		game.HighScore = game.Score
		newRecord = true
	}
	if game.RatsPerLevel > 0 && game.Score%game.RatsPerLevel == 0 {
		game.Level++
		game.RatSpeed += cfg.Rat.LevelSpeedIncrement
		leveledUp = true
	}
	return leveledUp, newRecord
}

// RatsLeft returns how many more rats are needed for the next level.
func RatsLeft(game *components.GameStateData) int {
	if game.RatsPerLevel <= 0 {
		return 0
	}
	return max(0, game.RatsPerLevel-game.Score%game.RatsPerLevel)
}

// CaptureRat scores the capture, removes the rat and schedules the next one.
func CaptureRat(ecs *ecs.ECS, ratEntry *donburi.Entry) {
	game := GetOrCreateGameState(ecs)
	game.Phase = components.PhaseCaptured

	leveledUp, newRecord := RecordCapture(game)
	log.Info("Rat caught", "score", game.Score, "level", game.Level)
	if newRecord {
		SaveHighScore(ecs, game.HighScore)
	}
	if leveledUp {
		log.Info("Level up", "level", game.Level, "ratSpeed", game.RatSpeed)
		ShowLevelUp(ecs, game.Level)
	}

	if ratEntry.Valid() {
		ecs.World.Remove(ratEntry.Entity())
	}
	Notify(ecs, cfg.Notice.RatCaught, 0)

	game.Phase = components.PhaseRespawning
	Schedule(ecs, "rat-respawn", cfg.Capture.RespawnDelay, respawnRat)
}

func respawnRat(ecs *ecs.ECS) {
	game := GetOrCreateGameState(ecs)
	if game.Phase != components.PhaseRespawning {
		return
	}
	factory.SpawnRat(ecs, getRandom(ecs), game.RatSpeed)
	game.Phase = components.PhaseRoaming
	Notify(ecs, cfg.Notice.NewRat, cfg.Notice.NewRatTime)
}

// GetOrCreateGameState returns the singleton GameState component, creating if needed.
func GetOrCreateGameState(ecs *ecs.ECS) *components.GameStateData {
	entry, ok := components.GameState.First(ecs.World)
	if !ok {
		entry = factory.CreateGameState(ecs, 0)
	}
	return components.GameState.Get(entry)
}
