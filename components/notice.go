package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// NoticeData is the status line shown at the bottom of the screen.
type NoticeData struct {
	Text       string
	Generation uint64 // bumped on every change; stale reverts are ignored
	Alpha      float64
	Fade       *gween.Tween
}

var Notice = donburi.NewComponentType[NoticeData]()

// OverlayData is the large centered banner shown on level up.
type OverlayData struct {
	Text  string
	Alpha float64
	Fade  *gween.Tween
}

var Overlay = donburi.NewComponentType[OverlayData]()
