package systems

import (
	"github.com/automoto/ratchase/components"
	cfg "github.com/automoto/ratchase/config"
	"github.com/automoto/ratchase/systems/factory"
	"github.com/automoto/ratchase/tags"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	decs "github.com/yohamta/donburi/ecs"
)

// RestartGame puts the run back to its starting state, keeping the record.
// Pending respawns and notice reverts are cancelled first so nothing from
// the old run fires into the new one.
func RestartGame(ecs *decs.ECS) {
	ClearSchedule(ecs)

	game := GetOrCreateGameState(ecs)
	*game = factory.NewGameState(game.HighScore)

	if entry, ok := tags.Player.First(ecs.World); ok {
		actor := components.Actor.Get(entry)
		actor.Position = mgl64.Vec3{}
		actor.Velocity = mgl64.Vec3{}
		*components.Player.Get(entry) = components.PlayerData{}
	}

	if camera := getCamera(ecs); camera != nil {
		camera.RotationX = 0
		camera.RotationY = 0
	}

	var rats []*donburi.Entry
	tags.Rat.Each(ecs.World, func(entry *donburi.Entry) {
		rats = append(rats, entry)
	})
	for _, entry := range rats {
		ecs.World.Remove(entry.Entity())
	}
	factory.SpawnRat(ecs, getRandom(ecs), game.RatSpeed)

	overlay := getOrCreateOverlay(ecs)
	*overlay = components.OverlayData{}

	Notify(ecs, cfg.Notice.Default, 0)
	ScheduleStartupRescue(ecs)

	log.Info("Game restarted", "highScore", game.HighScore)
}

// ScheduleStartupRescue frees the predator shortly after a run starts in case
// it begins inside an obstacle.
func ScheduleStartupRescue(ecs *decs.ECS) {
	Schedule(ecs, "startup-rescue", cfg.Capture.RescueDelay, func(e *decs.ECS) {
		RescuePlayerIfStuck(e)
	})
}
