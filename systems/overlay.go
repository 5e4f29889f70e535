package systems

import (
	"fmt"

	"github.com/automoto/ratchase/components"
	cfg "github.com/automoto/ratchase/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// ShowLevelUp puts the level banner on screen and starts its fade out.
func ShowLevelUp(ecs *ecs.ECS, level int) {
	overlay := getOrCreateOverlay(ecs)
	overlay.Text = fmt.Sprintf(cfg.Notice.LevelUp, level)
	overlay.Alpha = 1
	overlay.Fade = gween.New(1, 0, float32(cfg.Capture.LevelUpFade), ease.Linear)
}

func UpdateOverlay(ecs *ecs.ECS) {
	overlay := getOrCreateOverlay(ecs)
	if overlay.Fade == nil {
		return
	}
	alpha, done := overlay.Fade.Update(float32(getOrCreateClock(ecs).Delta))
	overlay.Alpha = float64(alpha)
	if done {
		overlay.Alpha = 0
		overlay.Text = ""
		overlay.Fade = nil
	}
}

func getOrCreateOverlay(ecs *ecs.ECS) *components.OverlayData {
	entry, ok := components.Overlay.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Overlay))
	}
	return components.Overlay.Get(entry)
}
