package components

import (
	cfg "github.com/automoto/ratchase/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// Pointer deltas gathered this frame
	DragX, DragY float64
	Wheel        float64 // positive zooms out

	dragging         bool
	cursorX, cursorY int
}

// TrackCursor records a cursor sample and accumulates drag deltas while held.
func (in *InputData) TrackCursor(x, y int, held bool) {
	in.DragX, in.DragY = 0, 0
	if held && in.dragging {
		in.DragX = float64(x - in.cursorX)
		in.DragY = float64(y - in.cursorY)
	}
	in.dragging = held
	in.cursorX, in.cursorY = x, y
}

var Input = donburi.NewComponentType[InputData]()
