package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/ratchase/config"
	"github.com/automoto/ratchase/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders level, score, record and rats left in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	game := GetOrCreateGameState(ecs)
	face := fonts.Regular.Get()

	lines := [...]string{
		fmt.Sprintf("Level: %d", game.Level),
		fmt.Sprintf("Score: %d", game.Score),
		fmt.Sprintf("Record: %d", game.HighScore),
		fmt.Sprintf("Rats left: %d", RatsLeft(game)),
	}

	width := 0
	for _, line := range lines {
		width = max(width, text.BoundString(face, line).Dx()) //nolint:staticcheck // TODO: migrate to text/v2
	}

	pad := cfg.HUD.Padding
	vector.FillRect(screen,
		float32(cfg.HUD.Margin), float32(cfg.HUD.Margin),
		float32(float64(width)+pad*2), float32(float64(len(lines))*cfg.HUD.LineHeight+pad*2),
		cfg.HUD.PanelColor, false)

	for i, line := range lines {
		y := cfg.HUD.Margin + pad + float64(i+1)*cfg.HUD.LineHeight - 6
		text.Draw(screen, line, face, int(cfg.HUD.Margin+pad), int(y), cfg.HUD.TextColor)
	}
}

// DrawNotice renders the status line at the bottom center.
func DrawNotice(ecs *ecs.ECS, screen *ebiten.Image) {
	notice := getOrCreateNotice(ecs)
	if notice.Text == "" {
		return
	}
	face := fonts.Regular.Get()
	bounds := text.BoundString(face, notice.Text) //nolint:staticcheck // TODO: migrate to text/v2

	pad := cfg.HUD.Padding
	boxW := float64(bounds.Dx()) + pad*2
	boxH := float64(bounds.Dy()) + pad*2
	boxX := (float64(screen.Bounds().Dx()) - boxW) / 2
	boxY := float64(screen.Bounds().Dy()) - cfg.HUD.NoticeBottom - boxH

	vector.FillRect(screen, float32(boxX), float32(boxY), float32(boxW), float32(boxH),
		fade(cfg.HUD.PanelColor, notice.Alpha), false)
	text.Draw(screen, notice.Text, face, int(boxX+pad), int(boxY+pad)+bounds.Dy(), fade(cfg.HUD.TextColor, notice.Alpha))
}

// DrawOverlay renders the level-up banner while it fades.
func DrawOverlay(ecs *ecs.ECS, screen *ebiten.Image) {
	overlay := getOrCreateOverlay(ecs)
	if overlay.Text == "" || overlay.Alpha <= 0 {
		return
	}
	face := fonts.Title.Get()
	bounds := text.BoundString(face, overlay.Text) //nolint:staticcheck // TODO: migrate to text/v2
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	y := (screen.Bounds().Dy() + bounds.Dy()) / 2

	// Drop shadow, then the banner
	text.Draw(screen, overlay.Text, face, x+2, y+2, fade(cfg.HalfBlack, overlay.Alpha))
	text.Draw(screen, overlay.Text, face, x, y, fade(cfg.HUD.OverlayColor, overlay.Alpha))
}

// fade scales a color's alpha by a in [0, 1].
func fade(c color.RGBA, a float64) color.NRGBA {
	a = max(0, min(1, a))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * a)}
}
