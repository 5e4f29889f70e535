package scenes

import (
	"sync"
	"time"

	"github.com/automoto/ratchase/components"
	cfg "github.com/automoto/ratchase/config"
	"github.com/automoto/ratchase/systems"
	"github.com/automoto/ratchase/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ChaseScene owns the chase world: one predator, one rat at a time and a
// field of obstacles.
type ChaseScene struct {
	ecs   *ecs.ECS
	store components.ScoreStore
	seed  uint64
	once  sync.Once
}

// NewChaseScene creates the scene. store may be nil to disable saving.
// A zero seed picks one from the clock.
func NewChaseScene(store components.ScoreStore, seed uint64) *ChaseScene {
	return &ChaseScene{store: store, seed: seed}
}

func (cs *ChaseScene) Update() error {
	cs.once.Do(cs.configure)
	cs.ecs.Update()

	if systems.GetOrCreatePause(cs.ecs).ExitRequested {
		return ebiten.Termination
	}
	return nil
}

func (cs *ChaseScene) Draw(screen *ebiten.Image) {
	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

func (cs *ChaseScene) configure() {
	seed := cs.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause checks
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateActions))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSchedule))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateRat))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCapture))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateOverlay))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateNotice))

	// Add renderers
	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawNotice)
	e.AddRenderer(cfg.Default, systems.DrawOverlay)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	cs.ecs = e
	PopulateWorld(e, cs.store, seed)
}

// PopulateWorld creates every entity of a fresh run.
func PopulateWorld(e *ecs.ECS, store components.ScoreStore, seed uint64) {
	rng := factory.CreateRandom(e, seed)

	if store != nil {
		systems.AttachScoreStore(e, store)
	}
	highScore := systems.LoadHighScore(store)
	factory.CreateGameState(e, highScore)

	index := components.Collision.Get(factory.CreateCollisionIndex(e)).Index
	factory.PlaceObstacles(e, index, rng)

	player := factory.CreatePlayer(e, mgl64.Vec3{})
	factory.CreateCamera(e, components.Actor.Get(player).Position)
	factory.SpawnRat(e, rng, cfg.Rat.StartSpeed)

	systems.Notify(e, cfg.Notice.Default, 0)
	systems.ScheduleStartupRescue(e)

	log.Info("Chase started", "seed", seed, "obstacles", index.Len(), "highScore", highScore)
}
