package systems

import (
	"testing"

	"github.com/automoto/ratchase/components"
	cfg "github.com/automoto/ratchase/config"
	"github.com/automoto/ratchase/systems/factory"
	"github.com/automoto/ratchase/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func countRats(e *ecs.ECS) int {
	n := 0
	tags.Rat.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func TestIsRatCaught(t *testing.T) {
	tests := []struct {
		name string
		rat  mgl64.Vec3
		want bool
	}{
		{"inside", mgl64.Vec3{1.99, 0, 0}, true},
		{"exactly at distance", mgl64.Vec3{2, 0, 0}, false},
		{"height ignored", mgl64.Vec3{1, 10, 1}, true},
		{"far", mgl64.Vec3{3, 0, 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRatCaught(mgl64.Vec3{}, tt.rat); got != tt.want {
				t.Fatalf("IsRatCaught(%v) = %v, want %v", tt.rat, got, tt.want)
			}
		})
	}
}

func TestRecordCaptureLevelsUpEveryFiveRats(t *testing.T) {
	game := factory.NewGameState(0)

	for i := 1; i <= 5; i++ {
		leveledUp, newRecord := RecordCapture(&game)
		if !newRecord {
			t.Fatalf("capture %d: expected a new record", i)
		}
		if leveledUp != (i == 5) {
			t.Fatalf("capture %d: leveledUp = %v", i, leveledUp)
		}
	}
	if game.Level != cfg.Capture.StartLevel+1 {
		t.Fatalf("level = %d, want %d", game.Level, cfg.Capture.StartLevel+1)
	}
	if !almostEqual(game.RatSpeed, cfg.Rat.StartSpeed+cfg.Rat.LevelSpeedIncrement) {
		t.Fatalf("rat speed = %f", game.RatSpeed)
	}
	if game.HighScore != 5 {
		t.Fatalf("high score = %d, want 5", game.HighScore)
	}
}

func TestRecordCaptureKeepsHigherRecord(t *testing.T) {
	game := factory.NewGameState(10)
	if _, newRecord := RecordCapture(&game); newRecord {
		t.Fatalf("score 1 should not beat a record of 10")
	}
	if game.HighScore != 10 || game.Score != 1 {
		t.Fatalf("got score=%d high=%d", game.Score, game.HighScore)
	}
}

func TestRatsLeft(t *testing.T) {
	game := factory.NewGameState(0)
	for score, want := range map[int]int{0: 5, 3: 2, 4: 1, 5: 5, 7: 3} {
		game.Score = score
		if got := RatsLeft(&game); got != want {
			t.Errorf("RatsLeft(score=%d) = %d, want %d", score, got, want)
		}
	}
}

func TestCaptureRespawnsAfterDelay(t *testing.T) {
	e := newTestWorld()
	store := newMemStore()
	AttachScoreStore(e, store)
	factory.CreatePlayer(e, mgl64.Vec3{})
	spawnRatAt(e, mgl64.Vec3{1, 0, 1})

	tick(e, frame, UpdateSchedule, UpdateCapture)

	game := GetOrCreateGameState(e)
	if game.Score != 1 || game.Phase != components.PhaseRespawning {
		t.Fatalf("after capture: score=%d phase=%v", game.Score, game.Phase)
	}
	if countRats(e) != 0 {
		t.Fatalf("caught rat still on the field")
	}
	if CurrentNotice(e) != cfg.Notice.RatCaught {
		t.Fatalf("notice = %q", CurrentNotice(e))
	}
	if LoadHighScore(store) != 1 {
		t.Fatalf("record not persisted, store has %q", store.items[highScoreKey])
	}

	// Not yet.
	tick(e, 0.5, UpdateSchedule, UpdateCapture)
	if countRats(e) != 0 {
		t.Fatalf("rat respawned early")
	}

	for i := 0; i < 12; i++ {
		tick(e, 0.05, UpdateSchedule, UpdateCapture)
	}
	if countRats(e) != 1 {
		t.Fatalf("rats on field = %d, want 1", countRats(e))
	}
	if game := GetOrCreateGameState(e); game.Phase != components.PhaseRoaming {
		t.Fatalf("phase = %v, want roaming", game.Phase)
	}
	if CurrentNotice(e) != cfg.Notice.NewRat {
		t.Fatalf("notice = %q, want %q", CurrentNotice(e), cfg.Notice.NewRat)
	}
}

func TestCaptureShowsLevelUpBanner(t *testing.T) {
	e := newTestWorld()
	factory.CreatePlayer(e, mgl64.Vec3{})
	rat := spawnRatAt(e, mgl64.Vec3{0.5, 0, 0})
	GetOrCreateGameState(e).Score = 4

	CaptureRat(e, rat)

	overlay := getOrCreateOverlay(e)
	if overlay.Text != "Level 3!" || overlay.Alpha != 1 {
		t.Fatalf("overlay = %q alpha %f", overlay.Text, overlay.Alpha)
	}

	for i := 0; i < 25; i++ {
		tick(e, 0.05, UpdateOverlay)
	}
	if overlay := getOrCreateOverlay(e); overlay.Text != "" || overlay.Alpha != 0 {
		t.Fatalf("banner still visible after fading: %+v", overlay)
	}
}

func TestUpdateCaptureIgnoresDistantRat(t *testing.T) {
	e := newTestWorld()
	factory.CreatePlayer(e, mgl64.Vec3{})
	spawnRatAt(e, mgl64.Vec3{10, 0, 10})

	tick(e, frame, UpdateCapture)

	if GetOrCreateGameState(e).Score != 0 || countRats(e) != 1 {
		t.Fatalf("distant rat was captured")
	}
}

func TestRestartCancelsPendingRespawn(t *testing.T) {
	e := newTestWorld()
	factory.CreatePlayer(e, mgl64.Vec3{5, 0, 5})
	factory.CreateCamera(e, mgl64.Vec3{})
	spawnRatAt(e, mgl64.Vec3{5.5, 0, 5})

	tick(e, frame, UpdateCapture)
	if GetOrCreateGameState(e).Phase != components.PhaseRespawning {
		t.Fatalf("capture did not happen")
	}

	RestartGame(e)

	game := GetOrCreateGameState(e)
	if game.Score != 0 || game.Level != cfg.Capture.StartLevel || game.HighScore != 1 {
		t.Fatalf("after restart: %+v", game)
	}
	if countRats(e) != 1 {
		t.Fatalf("rats after restart = %d, want 1", countRats(e))
	}
	playerEntry, _ := tags.Player.First(e.World)
	if p := components.Actor.Get(playerEntry).Position; p != (mgl64.Vec3{}) {
		t.Fatalf("predator not reset: %v", p)
	}

	for i := 0; i < 60; i++ {
		tick(e, 0.05, UpdateSchedule)
	}
	if countRats(e) != 1 {
		t.Fatalf("stale respawn fired: %d rats", countRats(e))
	}
	if PendingEvents(e) != 0 {
		t.Fatalf("pending events = %d, want 0", PendingEvents(e))
	}
}
