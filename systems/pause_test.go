package systems

import (
	"testing"

	"github.com/automoto/ratchase/components"
	cfg "github.com/automoto/ratchase/config"
	"github.com/automoto/ratchase/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

func TestUpdatePauseTogglesAndNavigates(t *testing.T) {
	e := newTestWorld()

	press(e, cfg.ActionPause)
	UpdatePause(e)
	pause := GetOrCreatePause(e)
	if !pause.IsPaused || pause.SelectedOption != components.MenuResume {
		t.Fatalf("after pause key: %+v", *pause)
	}

	// Up from the first entry wraps to the last.
	press(e, cfg.ActionMenuUp)
	UpdatePause(e)
	if pause.SelectedOption != components.MenuExit {
		t.Fatalf("selected = %d, want exit", pause.SelectedOption)
	}

	press(e, cfg.ActionMenuDown)
	UpdatePause(e)
	if pause.SelectedOption != components.MenuResume {
		t.Fatalf("selected = %d, want resume", pause.SelectedOption)
	}

	press(e, cfg.ActionMenuSelect)
	UpdatePause(e)
	if pause.IsPaused {
		t.Fatalf("resume did not unpause")
	}
}

func TestSelectPauseOptionExit(t *testing.T) {
	e := newTestWorld()
	SelectPauseOption(e, components.MenuExit)
	if !GetOrCreatePause(e).ExitRequested {
		t.Fatalf("exit not requested")
	}
}

func TestSelectPauseOptionRestart(t *testing.T) {
	e := newTestWorld()
	factory.CreatePlayer(e, mgl64.Vec3{7, 0, 7})
	game := GetOrCreateGameState(e)
	game.Score = 3
	game.HighScore = 9
	GetOrCreatePause(e).IsPaused = true

	SelectPauseOption(e, components.MenuRestart)

	if GetOrCreatePause(e).IsPaused {
		t.Fatalf("restart left the game paused")
	}
	game = GetOrCreateGameState(e)
	if game.Score != 0 || game.HighScore != 9 {
		t.Fatalf("after restart: score=%d high=%d", game.Score, game.HighScore)
	}
}

func TestWithPauseCheck(t *testing.T) {
	e := newTestWorld()
	calls := 0
	system := WithPauseCheck(func(*ecs.ECS) { calls++ })

	system(e)
	GetOrCreatePause(e).IsPaused = true
	system(e)

	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}
