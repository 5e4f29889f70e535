package systems

import (
	"github.com/automoto/ratchase/components"
	cfg "github.com/automoto/ratchase/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	decs "github.com/yohamta/donburi/ecs"
)

// Notify replaces the status line. With revertAfter > 0 the default text
// comes back after that many seconds, unless another notice replaced it first.
func Notify(ecs *decs.ECS, text string, revertAfter float64) {
	notice := getOrCreateNotice(ecs)
	setNotice(notice, text)

	if revertAfter <= 0 {
		return
	}
	generation := notice.Generation
	Schedule(ecs, "notice-revert", revertAfter, func(e *decs.ECS) {
		n := getOrCreateNotice(e)
		if n.Generation != generation {
			return
		}
		setNotice(n, cfg.Notice.Default)
	})
}

// CurrentNotice returns the text on the status line.
func CurrentNotice(ecs *decs.ECS) string {
	return getOrCreateNotice(ecs).Text
}

// UpdateNotice fades the status line in after a change.
func UpdateNotice(ecs *decs.ECS) {
	notice := getOrCreateNotice(ecs)
	if notice.Fade == nil {
		return
	}
	dt := getOrCreateClock(ecs).Delta
	alpha, done := notice.Fade.Update(float32(dt))
	notice.Alpha = float64(alpha)
	if done {
		notice.Alpha = 1
		notice.Fade = nil
	}
}

func setNotice(notice *components.NoticeData, text string) {
	notice.Text = text
	notice.Generation++
	notice.Alpha = 0
	notice.Fade = gween.New(0, 1, float32(cfg.Notice.FadeIn), ease.OutQuad)
}

func getOrCreateNotice(ecs *decs.ECS) *components.NoticeData {
	entry, ok := components.Notice.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Notice))
		components.Notice.SetValue(entry, components.NoticeData{
			Text:  cfg.Notice.Default,
			Alpha: 1,
		})
	}
	return components.Notice.Get(entry)
}
